package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                int64      `json:"id" db:"id" example:"1"`
	CollegeID         *int64     `json:"collegeId,omitempty" db:"college_id" example:"1"` // NULL only for SUPERADMIN accounts
	Name              string     `json:"name" db:"name" example:"Jane Doe"`
	Email             string     `json:"email" db:"email" example:"jane@tech.edu"`
	PasswordHash      string     `json:"-" db:"password_hash"` // Hashed password (excluded from JSON)
	RoleType          RoleType   `json:"role" db:"role" example:"ALUMNUS"`
	Status            UserStatus `json:"status" db:"status" example:"ACTIVE"`
	ProfileHeadline   *string    `json:"profileHeadline,omitempty" db:"profile_headline" example:"Software engineer, class of 2018"`
	ProfileLocation   *string    `json:"profileLocation,omitempty" db:"profile_location" example:"Bangalore"`
	ProfileAbout      *string    `json:"profileAbout,omitempty" db:"profile_about"`
	ProfilePictureURL *string    `json:"profilePictureUrl,omitempty" db:"profile_picture_url" example:"uploads/avatar.jpg"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
