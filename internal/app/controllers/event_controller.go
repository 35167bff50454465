package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/services"
	"github.com/sujeet/alumnisphere/internal/middleware"
	"github.com/sujeet/alumnisphere/internal/pkg/helpers"
)

// EventController handles event endpoints
type EventController struct {
	eventService *services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// Create handles POST /events. The request is multipart form data so an
// event can carry an optional image.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	image, err := ctx.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		image = nil
	}

	principal := middleware.GetPrincipal(ctx)
	event, err := c.eventService.Create(ctx.Request.Context(), principal, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(event, "Event created"))
}

// List handles GET /events. Anonymous callers must pass collegeId;
// authenticated callers default to their own college.
func (c *EventController) List(ctx *gin.Context) {
	var collegeID int64
	if raw := ctx.Query("collegeId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidArgument, "Invalid collegeId parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		collegeID = parsed
	}

	page, size := helpers.ParsePaginationParams(ctx)
	principal := middleware.GetPrincipal(ctx)
	events, err := c.eventService.List(ctx.Request.Context(), principal, collegeID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events, ""))
}

// Get handles GET /events/:id
func (c *EventController) Get(ctx *gin.Context) {
	eventID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	event, err := c.eventService.Get(ctx.Request.Context(), principal, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(event, ""))
}

// Update handles PUT /events/:id
func (c *EventController) Update(ctx *gin.Context) {
	eventID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	event, err := c.eventService.Update(ctx.Request.Context(), principal, eventID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(event, "Event updated"))
}

// Delete handles DELETE /events/:id
func (c *EventController) Delete(ctx *gin.Context) {
	eventID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.eventService.Delete(ctx.Request.Context(), principal, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Event deleted"))
}

// Join handles POST /events/:id/join
func (c *EventController) Join(ctx *gin.Context) {
	eventID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.eventService.Join(ctx.Request.Context(), principal, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Joined event"))
}

// Leave handles DELETE /events/:id/join
func (c *EventController) Leave(ctx *gin.Context) {
	eventID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.eventService.Leave(ctx.Request.Context(), principal, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Left event"))
}

// ListAttendees handles GET /events/:id/attendees
func (c *EventController) ListAttendees(ctx *gin.Context) {
	eventID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	attendees, err := c.eventService.ListAttendees(ctx.Request.Context(), principal, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(attendees, ""))
}
