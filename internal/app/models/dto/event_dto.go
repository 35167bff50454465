package dto

import (
	"time"

	"github.com/sujeet/alumnisphere/internal/app/models"
)

// CreateEventRequest represents an event creation request. It binds from
// multipart form data so an image can ride along.
type CreateEventRequest struct {
	Title       string    `json:"title" form:"title" binding:"required,min=2,max=200" example:"Annual Alumni Meet"`
	Description *string   `json:"description,omitempty" form:"description" binding:"omitempty,max=5000"`
	EventDate   time.Time `json:"eventDate" form:"eventDate" time_format:"2006-01-02T15:04:05Z07:00" binding:"required" example:"2026-03-15T18:00:00Z"`
	Location    *string   `json:"location,omitempty" form:"location" binding:"omitempty,max=200"`
}

// UpdateEventRequest represents an event update request
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,min=2,max=200"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=5000"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	Location    *string    `json:"location,omitempty" binding:"omitempty,max=200"`
}

// EventResponse is the actor-relative event projection. IsAttending is always
// false for anonymous callers.
type EventResponse struct {
	ID             int64        `json:"id" example:"1"`
	CollegeID      int64        `json:"collegeId" example:"1"`
	CreatedBy      *UserSummary `json:"createdBy,omitempty"`
	Title          string       `json:"title"`
	Description    *string      `json:"description,omitempty"`
	EventDate      time.Time    `json:"eventDate"`
	Location       *string      `json:"location,omitempty"`
	ImageURL       *string      `json:"imageUrl,omitempty"`
	AttendeesCount int64        `json:"attendeesCount" example:"25"`
	IsAttending    bool         `json:"isAttending" example:"false"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// EventListResponse is a paginated page of events
type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}

// AttendeeResponse represents an event attendee
type AttendeeResponse struct {
	User     UserSummary `json:"user"`
	JoinedAt time.Time   `json:"joinedAt"`
}

// NewEventResponse builds the actor-relative view of an event
func NewEventResponse(event *models.Event, creator *models.User, attendees int64, attending bool) EventResponse {
	resp := EventResponse{
		ID:             event.ID,
		CollegeID:      event.CollegeID,
		Title:          event.Title,
		Description:    event.Description,
		EventDate:      event.EventDate,
		Location:       event.Location,
		ImageURL:       event.ImageURL,
		AttendeesCount: attendees,
		IsAttending:    attending,
		CreatedAt:      event.CreatedAt,
	}
	if creator != nil {
		summary := NewUserSummary(creator)
		resp.CreatedBy = &summary
	}
	return resp
}
