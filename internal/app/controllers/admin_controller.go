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

// AdminController handles member moderation endpoints
type AdminController struct {
	adminService *services.AdminService
	eventService *services.EventService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, eventService *services.EventService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		eventService: eventService,
		logger:       logger,
	}
}

// ListUsers handles GET /admin/users
func (c *AdminController) ListUsers(ctx *gin.Context) {
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
	users, err := c.adminService.ListUsers(ctx.Request.Context(), principal, collegeID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(users, ""))
}

// CreateUser handles POST /admin/users
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.AdminCreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	user, err := c.adminService.CreateUser(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(user, "User created"))
}

// GetUser handles GET /admin/users/:id
func (c *AdminController) GetUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	user, err := c.adminService.GetUser(ctx.Request.Context(), principal, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user, ""))
}

// UpdateUserStatus handles PUT /admin/users/:id/status
func (c *AdminController) UpdateUserStatus(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	user, err := c.adminService.UpdateUserStatus(ctx.Request.Context(), principal, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user, "User status updated"))
}

// RemoveUser handles DELETE /admin/users/:id
func (c *AdminController) RemoveUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.adminService.RemoveUser(ctx.Request.Context(), principal, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "User removed"))
}

// DeleteEvent handles DELETE /admin/events/:id
func (c *AdminController) DeleteEvent(ctx *gin.Context) {
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
