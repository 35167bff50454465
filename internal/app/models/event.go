package models

import (
	"time"
)

// Event defines the event model based on the 'events' table
type Event struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	CollegeID   int64     `json:"collegeId" db:"college_id" example:"1"`
	CreatedBy   int64     `json:"createdBy" db:"created_by" example:"7"`
	Title       string    `json:"title" db:"title" example:"Annual Alumni Meet"`
	Description *string   `json:"description,omitempty" db:"description"`
	EventDate   time.Time `json:"eventDate" db:"event_date" example:"2026-03-15T18:00:00Z"`
	Location    *string   `json:"location,omitempty" db:"location" example:"Main Auditorium"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
