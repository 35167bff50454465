package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	appauth "github.com/sujeet/alumnisphere/internal/app/auth"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/repositories"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
	"github.com/sujeet/alumnisphere/internal/pkg/filestorage"
	"github.com/sujeet/alumnisphere/internal/pkg/helpers"
	"github.com/sujeet/alumnisphere/internal/pkg/validation"
)

// EventService handles college events and attendance. Event listings and
// detail views are public; joining requires membership of the event's college.
type EventService struct {
	eventRepo    *repositories.EventRepository
	attendeeRepo *repositories.EventAttendeeRepository
	userRepo     *repositories.UserRepository
	collegeRepo  *repositories.CollegeRepository
	authz        *appauth.AuthorizationService
	fileStorage  filestorage.FileStorage
	logger       zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo *repositories.EventRepository,
	attendeeRepo *repositories.EventAttendeeRepository,
	userRepo *repositories.UserRepository,
	collegeRepo *repositories.CollegeRepository,
	authz *appauth.AuthorizationService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		userRepo:     userRepo,
		collegeRepo:  collegeRepo,
		authz:        authz,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

// Create publishes an event in the caller's college
func (s *EventService) Create(ctx context.Context, principal *appauth.Principal, req *dto.CreateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error) {
	collegeID, err := requireMemberCollege(principal)
	if err != nil {
		return nil, err
	}

	title := validation.SanitizeContent(req.Title)
	if title == "" {
		return nil, apperrors.NewInvalidArgumentError("event title cannot be empty")
	}

	var imageURL *string
	if image != nil {
		savedPath, err := s.fileStorage.SaveFile(image)
		if err != nil {
			return nil, apperrors.NewStorageFailureError("failed to store event image")
		}
		imageURL = &savedPath
	}

	event := &models.Event{
		CollegeID: collegeID,
		CreatedBy: principal.UserID,
		Title:     title,
		EventDate: req.EventDate,
		Location:  req.Location,
		ImageURL:  imageURL,
	}
	if req.Description != nil {
		description := validation.SanitizeContent(*req.Description)
		event.Description = &description
	}

	eventID, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		if imageURL != nil {
			_ = s.fileStorage.DeleteFile(*imageURL)
		}
		return nil, fmt.Errorf("event creation error: %w", err)
	}
	event.ID = eventID

	created, err := s.eventRepo.GetByID(ctx, eventID)
	if err == nil && created != nil {
		event = created
	}

	creator, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading creator: %w", err)
	}

	resp := dto.NewEventResponse(event, creator, 0, false)
	return &resp, nil
}

// List returns a page of a college's events ordered by event date. Anonymous
// callers must name the college; authenticated callers default to their own.
func (s *EventService) List(ctx context.Context, principal *appauth.Principal, collegeID int64, page, size int) (*dto.EventListResponse, error) {
	if collegeID == 0 {
		if principal == nil || principal.CollegeID == nil {
			return nil, apperrors.NewInvalidArgumentError("collegeId is required")
		}
		collegeID = *principal.CollegeID
	}

	college, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error looking up college: %w", err)
	}
	if college == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrCollegeNotFound, "college not found")
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	events, total, err := s.eventRepo.ListByCollege(ctx, collegeID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	responses, err := s.projectEvents(ctx, principal, events)
	if err != nil {
		return nil, err
	}

	return &dto.EventListResponse{
		Events:     responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Get returns one event. IsAttending is always false for anonymous callers.
func (s *EventService) Get(ctx context.Context, principal *appauth.Principal, eventID int64) (*dto.EventResponse, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	responses, err := s.projectEvents(ctx, principal, []*models.Event{event})
	if err != nil {
		return nil, err
	}

	return &responses[0], nil
}

// Update applies the non-nil fields of the request to an event
func (s *EventService) Update(ctx context.Context, principal *appauth.Principal, eventID int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanModifyEvent(principal, event); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := validation.SanitizeContent(*req.Title)
		if title == "" {
			return nil, apperrors.NewInvalidArgumentError("event title cannot be empty")
		}
		event.Title = title
	}
	if req.Description != nil {
		description := validation.SanitizeContent(*req.Description)
		event.Description = &description
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.Location != nil {
		event.Location = req.Location
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	return s.Get(ctx, principal, eventID)
}

// Delete removes an event along with its stored image. Attendance rows are
// removed by the database's cascade constraints.
func (s *EventService) Delete(ctx context.Context, principal *appauth.Principal, eventID int64) error {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.authz.CanModifyEvent(principal, event); err != nil {
		return err
	}

	if event.ImageURL != nil {
		if err := s.fileStorage.DeleteFile(*event.ImageURL); err != nil {
			s.logger.Warn().Err(err).Str("path", *event.ImageURL).Msg("Failed to delete event image")
		}
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	return nil
}

// Join records the caller's attendance. Joining twice has no extra effect.
func (s *EventService) Join(ctx context.Context, principal *appauth.Principal, eventID int64) error {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := canViewCollegeContent(principal, event.CollegeID); err != nil {
		return err
	}

	if err := s.attendeeRepo.Add(ctx, eventID, principal.UserID); err != nil {
		return fmt.Errorf("error joining event: %w", err)
	}

	return nil
}

// Leave removes the caller's attendance. Leaving an event never joined has no
// effect.
func (s *EventService) Leave(ctx context.Context, principal *appauth.Principal, eventID int64) error {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := canViewCollegeContent(principal, event.CollegeID); err != nil {
		return err
	}

	if err := s.attendeeRepo.Remove(ctx, eventID, principal.UserID); err != nil {
		return fmt.Errorf("error leaving event: %w", err)
	}

	return nil
}

// ListAttendees returns who is attending an event, earliest joiner first
func (s *EventService) ListAttendees(ctx context.Context, principal *appauth.Principal, eventID int64) ([]dto.AttendeeResponse, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := canViewCollegeContent(principal, event.CollegeID); err != nil {
		return nil, err
	}

	attendees, err := s.attendeeRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error listing attendees: %w", err)
	}

	userIDs := make([]int64, 0, len(attendees))
	for _, attendee := range attendees {
		userIDs = append(userIDs, attendee.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading attendees: %w", err)
	}

	responses := make([]dto.AttendeeResponse, 0, len(attendees))
	for _, attendee := range attendees {
		user, ok := users[attendee.UserID]
		if !ok {
			continue
		}
		responses = append(responses, dto.AttendeeResponse{
			User:     dto.NewUserSummary(user),
			JoinedAt: attendee.JoinedAt,
		})
	}

	return responses, nil
}

func (s *EventService) loadEvent(ctx context.Context, eventID int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error looking up event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrEventNotFound, "event not found")
	}
	return event, nil
}

// projectEvents builds actor-relative responses for a batch of events
func (s *EventService) projectEvents(ctx context.Context, principal *appauth.Principal, events []*models.Event) ([]dto.EventResponse, error) {
	eventIDs := make([]int64, 0, len(events))
	creatorIDs := make([]int64, 0, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
		creatorIDs = append(creatorIDs, event.CreatedBy)
	}

	counts, err := s.attendeeRepo.GetCountsByEventIDs(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("error counting attendees: %w", err)
	}

	attending := make(map[int64]bool)
	if principal != nil {
		attending, err = s.attendeeRepo.GetAttendingEventIDs(ctx, principal.UserID, eventIDs)
		if err != nil {
			return nil, fmt.Errorf("error loading attendance flags: %w", err)
		}
	}

	creators, err := s.userRepo.GetByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading creators: %w", err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, dto.NewEventResponse(
			event,
			creators[event.CreatedBy],
			counts[event.ID],
			attending[event.ID],
		))
	}

	return responses, nil
}
