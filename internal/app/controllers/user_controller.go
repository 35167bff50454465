package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/services"
	"github.com/sujeet/alumnisphere/internal/middleware"
)

// UserController handles profile and follow-graph endpoints
type UserController struct {
	userService   *services.UserService
	searchService *services.SearchService
	logger        zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, searchService *services.SearchService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:   userService,
		searchService: searchService,
		logger:        logger,
	}
}

// GetProfile handles GET /users/:id
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	profile, err := c.userService.GetProfile(ctx.Request.Context(), principal, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile, ""))
}

// UpdateProfile handles PUT /users/me
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	user, err := c.userService.UpdateProfile(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user, "Profile updated"))
}

// UpdateProfilePicture handles PUT /users/me/picture
func (c *UserController) UpdateProfilePicture(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("picture")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A picture file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	user, err := c.userService.UpdateProfilePicture(ctx.Request.Context(), principal, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user, "Profile picture updated"))
}

// Follow handles POST /users/:id/follow
func (c *UserController) Follow(ctx *gin.Context) {
	targetID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.userService.Follow(ctx.Request.Context(), principal, targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Following user"))
}

// Unfollow handles DELETE /users/:id/follow
func (c *UserController) Unfollow(ctx *gin.Context) {
	targetID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.userService.Unfollow(ctx.Request.Context(), principal, targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Unfollowed user"))
}

// ListFollowers handles GET /users/:id/followers
func (c *UserController) ListFollowers(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	followers, err := c.userService.ListFollowers(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(followers, ""))
}

// ListFollowing handles GET /users/:id/following
func (c *UserController) ListFollowing(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	following, err := c.userService.ListFollowing(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(following, ""))
}

// Search handles GET /search/users?q=term
func (c *UserController) Search(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)
	results, err := c.searchService.SearchUsers(ctx.Request.Context(), principal, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(results, ""))
}
