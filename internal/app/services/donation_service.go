package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/sujeet/alumnisphere/internal/app/auth"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/repositories"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
)

// DonationService handles donations towards colleges. Payment gateway
// identifiers are stored as opaque pass-through values; no gateway is called.
type DonationService struct {
	donationRepo *repositories.DonationRepository
	collegeRepo  *repositories.CollegeRepository
	authz        *appauth.AuthorizationService
	logger       zerolog.Logger
}

// NewDonationService creates a new DonationService
func NewDonationService(
	donationRepo *repositories.DonationRepository,
	collegeRepo *repositories.CollegeRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		collegeRepo:  collegeRepo,
		authz:        authz,
		logger:       logger,
	}
}

// Create starts a donation in CREATED status
func (s *DonationService) Create(ctx context.Context, principal *appauth.Principal, req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	if err := s.authz.RequireAuthenticated(principal); err != nil {
		return nil, err
	}

	college, err := s.collegeRepo.GetByID(ctx, req.CollegeID)
	if err != nil {
		return nil, fmt.Errorf("error looking up college: %w", err)
	}
	if college == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrCollegeNotFound, "college not found")
	}

	donation := &models.Donation{
		UserID:    principal.UserID,
		CollegeID: req.CollegeID,
		Amount:    req.Amount,
		Currency:  strings.ToUpper(req.Currency),
		Status:    models.DonationStatusCreated,
	}

	donationID, err := s.donationRepo.Create(ctx, donation)
	if err != nil {
		return nil, fmt.Errorf("donation creation error: %w", err)
	}
	donation.ID = donationID

	created, err := s.donationRepo.GetByID(ctx, donationID)
	if err == nil && created != nil {
		donation = created
	}

	s.logger.Info().Int64("donationId", donation.ID).Int64("collegeId", donation.CollegeID).Msg("Donation created")

	resp := dto.NewDonationResponse(donation)
	return &resp, nil
}

// Confirm records the payment gateway outcome on the caller's own donation.
// Only a donation still in CREATED status can be confirmed.
func (s *DonationService) Confirm(ctx context.Context, principal *appauth.Principal, donationID int64, req *dto.ConfirmDonationRequest) (*dto.DonationResponse, error) {
	if err := s.authz.RequireAuthenticated(principal); err != nil {
		return nil, err
	}

	donation, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("error looking up donation: %w", err)
	}
	if donation == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrDonationNotFound, "donation not found")
	}

	if donation.UserID != principal.UserID && !principal.IsSuperAdmin() {
		return nil, apperrors.NewForbiddenError("you can only confirm your own donations")
	}

	if donation.Status != models.DonationStatusCreated {
		return nil, apperrors.NewConflictError("donation has already been confirmed")
	}

	status, err := models.ParseDonationStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if status == models.DonationStatusCreated {
		return nil, apperrors.NewInvalidArgumentError("confirmation status must be SUCCESSFUL or FAILED")
	}

	donation.PaymentID = &req.PaymentID
	donation.OrderID = &req.OrderID
	donation.Signature = &req.Signature
	donation.Status = status

	if err := s.donationRepo.Confirm(ctx, donation); err != nil {
		return nil, fmt.Errorf("error confirming donation: %w", err)
	}

	resp := dto.NewDonationResponse(donation)
	return &resp, nil
}

// ListMine returns the caller's own donations, newest first
func (s *DonationService) ListMine(ctx context.Context, principal *appauth.Principal) ([]dto.DonationResponse, error) {
	if err := s.authz.RequireAuthenticated(principal); err != nil {
		return nil, err
	}

	donations, err := s.donationRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing donations: %w", err)
	}

	return projectDonations(donations), nil
}

// ListByCollege returns a college's donations. Only that college's admin or a
// super admin may view them.
func (s *DonationService) ListByCollege(ctx context.Context, principal *appauth.Principal, collegeID int64) ([]dto.DonationResponse, error) {
	if err := s.authz.CanViewCollegeDonations(principal, collegeID); err != nil {
		return nil, err
	}

	college, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error looking up college: %w", err)
	}
	if college == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrCollegeNotFound, "college not found")
	}

	donations, err := s.donationRepo.ListByCollege(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error listing donations: %w", err)
	}

	return projectDonations(donations), nil
}

func projectDonations(donations []*models.Donation) []dto.DonationResponse {
	responses := make([]dto.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		responses = append(responses, dto.NewDonationResponse(donation))
	}
	return responses
}
