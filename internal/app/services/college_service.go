package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/repositories"
	"github.com/sujeet/alumnisphere/internal/db"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
	"github.com/sujeet/alumnisphere/internal/pkg/auth"
	"github.com/sujeet/alumnisphere/internal/pkg/dberrors"
)

// CollegeService handles college registration and lookup
type CollegeService struct {
	pool        *pgxpool.Pool
	collegeRepo *repositories.CollegeRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewCollegeService creates a new CollegeService
func NewCollegeService(
	pool *pgxpool.Pool,
	collegeRepo *repositories.CollegeRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *CollegeService {
	return &CollegeService{
		pool:        pool,
		collegeRepo: collegeRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Register creates a college together with its initial admin account. Both
// rows are written in one transaction so a half-registered college cannot
// exist.
func (s *CollegeService) Register(ctx context.Context, req *dto.RegisterCollegeRequest) (*dto.RegisterCollegeResponse, error) {
	nameTaken, err := s.collegeRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking college name: %w", err)
	}
	if nameTaken {
		return nil, apperrors.NewCustomError(apperrors.ErrCollegeAlreadyExists, "a college with this name is already registered")
	}

	emailTaken, err := s.userRepo.EmailExists(ctx, req.AdminEmail)
	if err != nil {
		return nil, fmt.Errorf("error checking admin email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "this email is already in use")
	}

	hashedPassword, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	college := &models.College{
		Name:               req.Name,
		Address:            req.Address,
		ContactPersonName:  req.ContactPersonName,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		RegistrationStatus: models.CollegeStatusApproved,
	}

	var admin *models.User

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		collegeID, err := s.collegeRepo.WithTx(tx).Create(ctx, college)
		if err != nil {
			return fmt.Errorf("college creation error: %w", err)
		}
		college.ID = collegeID

		admin = &models.User{
			CollegeID:    &collegeID,
			Name:         req.AdminName,
			Email:        req.AdminEmail,
			PasswordHash: hashedPassword,
			RoleType:     models.RoleAdmin,
			Status:       models.UserStatusActive,
		}

		adminID, err := s.userRepo.WithTx(tx).Create(ctx, admin)
		if err != nil {
			return fmt.Errorf("admin creation error: %w", err)
		}
		admin.ID = adminID

		return nil
	})
	if err != nil {
		// A concurrent registration can slip past the pre-checks; report it
		// the same way the pre-checks do
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "college or admin email already registered")
		}
		return nil, err
	}

	s.logger.Info().Int64("collegeId", college.ID).Str("name", college.Name).Msg("College registered")

	return &dto.RegisterCollegeResponse{
		College: dto.NewCollegeResponse(college),
		Admin:   dto.NewUserResponse(admin),
	}, nil
}

// List returns all registered colleges
func (s *CollegeService) List(ctx context.Context) ([]*dto.CollegeResponse, error) {
	colleges, err := s.collegeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}

	responses := make([]*dto.CollegeResponse, 0, len(colleges))
	for _, college := range colleges {
		responses = append(responses, dto.NewCollegeResponse(college))
	}

	return responses, nil
}

// Get returns one college by ID
func (s *CollegeService) Get(ctx context.Context, id int64) (*dto.CollegeResponse, error) {
	college, err := s.collegeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up college: %w", err)
	}
	if college == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrCollegeNotFound, "college not found")
	}

	return dto.NewCollegeResponse(college), nil
}
