package models

import (
	"time"
)

// College defines the college model based on the 'colleges' table.
// A college is the tenant boundary: users, posts, events and donations are
// scoped to exactly one college.
type College struct {
	ID                 int64         `json:"id" db:"id" example:"1"`
	Name               string        `json:"name" db:"name" example:"Tech University"`
	Address            *string       `json:"address,omitempty" db:"address"`
	ContactPersonName  *string       `json:"contactPersonName,omitempty" db:"contact_person_name"`
	ContactEmail       *string       `json:"contactEmail,omitempty" db:"contact_email"`
	ContactPhone       *string       `json:"contactPhone,omitempty" db:"contact_phone"`
	RegistrationStatus CollegeStatus `json:"registrationStatus" db:"registration_status" example:"APPROVED"`
	CreatedAt          time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time     `json:"updatedAt" db:"updated_at"`
}
