package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/services"
	"github.com/sujeet/alumnisphere/internal/middleware"
)

// DonationController handles donation endpoints
type DonationController struct {
	donationService *services.DonationService
	logger          zerolog.Logger
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService *services.DonationService, logger zerolog.Logger) *DonationController {
	return &DonationController{
		donationService: donationService,
		logger:          logger,
	}
}

// Create handles POST /donations
func (c *DonationController) Create(ctx *gin.Context) {
	var req dto.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	donation, err := c.donationService.Create(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(donation, "Donation created"))
}

// Confirm handles POST /donations/:id/confirm
func (c *DonationController) Confirm(ctx *gin.Context) {
	donationID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ConfirmDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	donation, err := c.donationService.Confirm(ctx.Request.Context(), principal, donationID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(donation, "Donation confirmed"))
}

// ListMine handles GET /donations/me
func (c *DonationController) ListMine(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)
	donations, err := c.donationService.ListMine(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(donations, ""))
}
