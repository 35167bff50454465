package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/services"
	"github.com/sujeet/alumnisphere/internal/middleware"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
)

// CollegeController handles college endpoints
type CollegeController struct {
	collegeService  *services.CollegeService
	donationService *services.DonationService
	logger          zerolog.Logger
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService, donationService *services.DonationService, logger zerolog.Logger) *CollegeController {
	return &CollegeController{
		collegeService:  collegeService,
		donationService: donationService,
		logger:          logger,
	}
}

// Register handles POST /colleges/register
func (c *CollegeController) Register(ctx *gin.Context) {
	var req dto.RegisterCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.collegeService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(result, "College registered"))
}

// List handles GET /colleges
func (c *CollegeController) List(ctx *gin.Context) {
	colleges, err := c.collegeService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(colleges, ""))
}

// Get handles GET /colleges/:id
func (c *CollegeController) Get(ctx *gin.Context) {
	collegeID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	college, err := c.collegeService.Get(ctx.Request.Context(), collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(college, ""))
}

// ListDonations handles GET /colleges/:id/donations
func (c *CollegeController) ListDonations(ctx *gin.Context) {
	collegeID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	donations, err := c.donationService.ListByCollege(ctx.Request.Context(), principal, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(donations, ""))
}

// pathID parses a positive integer path parameter, writing the error response
// itself when the value is malformed.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewInvalidArgumentError("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
