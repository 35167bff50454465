package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appauth "github.com/sujeet/alumnisphere/internal/app/auth"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/repositories"
	"github.com/sujeet/alumnisphere/internal/db"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
	pkgauth "github.com/sujeet/alumnisphere/internal/pkg/auth"
	"github.com/sujeet/alumnisphere/internal/pkg/dberrors"
	"github.com/sujeet/alumnisphere/internal/pkg/filestorage"
	"github.com/sujeet/alumnisphere/internal/pkg/helpers"
	"github.com/sujeet/alumnisphere/internal/pkg/validation"
)

// AdminService handles moderation of a college's members. Every operation is
// gated through CanManageUser: admins act within their own college, a super
// admin acts anywhere, and nobody moderates their own account here.
type AdminService struct {
	pool        *pgxpool.Pool
	repos       *repositories.Repositories
	authz       *appauth.AuthorizationService
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	pool *pgxpool.Pool,
	repos *repositories.Repositories,
	authz *appauth.AuthorizationService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		pool:        pool,
		repos:       repos,
		authz:       authz,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// ListUsers returns a page of a college's members. Admins list their own
// college; a super admin may name any college.
func (s *AdminService) ListUsers(ctx context.Context, principal *appauth.Principal, collegeID int64, page, size int) (*dto.PaginatedResponse, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !principal.IsAdmin() {
		return nil, apperrors.NewForbiddenError("admin role required")
	}

	if collegeID == 0 {
		if principal.CollegeID == nil {
			return nil, apperrors.NewInvalidArgumentError("collegeId is required")
		}
		collegeID = *principal.CollegeID
	}
	if !principal.IsSuperAdmin() && !principal.SameCollege(collegeID) {
		return nil, apperrors.NewForbiddenError("admins can only list users of their own college")
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, total, err := s.repos.UserRepository.ListByCollege(ctx, collegeID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}

	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// CreateUser onboards a member account. The role string is parsed through the
// closed enumeration; admins create into their own college, a super admin
// names the college in the request.
func (s *AdminService) CreateUser(ctx context.Context, principal *appauth.Principal, req *dto.AdminCreateUserRequest) (*dto.UserResponse, error) {
	role, err := models.ParseRoleType(req.Role)
	if err != nil {
		return nil, err
	}

	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}

	var collegeID int64
	switch {
	case req.CollegeID != nil && principal.IsSuperAdmin():
		collegeID = *req.CollegeID
	case principal.CollegeID != nil:
		collegeID = *principal.CollegeID
	default:
		return nil, apperrors.NewInvalidArgumentError("collegeId is required")
	}

	if err := s.authz.CanCreateUser(principal, role, collegeID); err != nil {
		return nil, err
	}

	college, err := s.repos.CollegeRepository.GetByID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error looking up college: %w", err)
	}
	if college == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrCollegeNotFound, "college not found")
	}

	name := validation.SanitizeContent(req.Name)
	if !validation.IsValidName(name) {
		return nil, apperrors.NewInvalidArgumentError("invalid name")
	}

	emailTaken, err := s.repos.UserRepository.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "this email is already in use")
	}

	hashedPassword, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		CollegeID:    &collegeID,
		Name:         name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		RoleType:     role,
		Status:       models.UserStatusActive,
	}

	userID, err := s.repos.UserRepository.Create(ctx, user)
	if err != nil {
		// A concurrent creation can slip past the pre-check
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "this email is already in use")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = userID

	s.logger.Info().
		Int64("userId", userID).
		Int64("collegeId", collegeID).
		Str("role", string(role)).
		Int64("createdBy", principal.UserID).
		Msg("User created")

	return dto.NewUserResponse(user), nil
}

// GetUser returns one user under admin scoping rules
func (s *AdminService) GetUser(ctx context.Context, principal *appauth.Principal, userID int64) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !principal.IsAdmin() {
		return nil, apperrors.NewForbiddenError("admin role required")
	}
	if !principal.IsSuperAdmin() {
		if user.CollegeID == nil || !principal.SameCollege(*user.CollegeID) {
			return nil, apperrors.NewForbiddenError("admins can only view users of their own college")
		}
	}

	return dto.NewUserResponse(user), nil
}

// UpdateUserStatus changes another user's account status. The status string
// is parsed through the closed enumeration before anything is written.
func (s *AdminService) UpdateUserStatus(ctx context.Context, principal *appauth.Principal, userID int64, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	status, err := models.ParseUserStatus(req.Status)
	if err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CanManageUser(principal, user); err != nil {
		return nil, err
	}

	if err := s.repos.UserRepository.UpdateStatus(ctx, userID, status); err != nil {
		return nil, fmt.Errorf("error updating user status: %w", err)
	}
	user.Status = status

	s.logger.Info().Int64("userId", userID).Str("status", string(status)).Msg("User status updated")

	return dto.NewUserResponse(user), nil
}

// RemoveUser deletes a user and everything they produced, in one transaction.
// The deletion order matters: edges and memberships go first, then authored
// content, then owned containers, then the user row. Stored images are
// removed best effort; a failed file delete never aborts the transaction.
func (s *AdminService) RemoveUser(ctx context.Context, principal *appauth.Principal, userID int64) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.authz.CanManageUser(principal, user); err != nil {
		return err
	}

	var orphanedFiles []string

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		follows := s.repos.UserFollowRepository.WithTx(tx)
		likes := s.repos.PostLikeRepository.WithTx(tx)
		attendance := s.repos.EventAttendeeRepository.WithTx(tx)
		comments := s.repos.CommentRepository.WithTx(tx)
		posts := s.repos.PostRepository.WithTx(tx)
		events := s.repos.EventRepository.WithTx(tx)
		donations := s.repos.DonationRepository.WithTx(tx)
		users := s.repos.UserRepository.WithTx(tx)

		if err := follows.DeleteAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting follows: %w", err)
		}

		if err := likes.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting likes: %w", err)
		}

		if err := attendance.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting event attendance: %w", err)
		}

		if err := comments.DeleteByAuthor(ctx, userID); err != nil {
			return fmt.Errorf("error deleting comments: %w", err)
		}

		authoredPosts, err := posts.ListByAuthor(ctx, userID)
		if err != nil {
			return fmt.Errorf("error listing authored posts: %w", err)
		}
		for _, post := range authoredPosts {
			if post.ImageURL != nil {
				orphanedFiles = append(orphanedFiles, *post.ImageURL)
			}
			if err := posts.Delete(ctx, post.ID); err != nil {
				return fmt.Errorf("error deleting post %d: %w", post.ID, err)
			}
		}

		createdEvents, err := events.ListByCreator(ctx, userID)
		if err != nil {
			return fmt.Errorf("error listing created events: %w", err)
		}
		for _, event := range createdEvents {
			if event.ImageURL != nil {
				orphanedFiles = append(orphanedFiles, *event.ImageURL)
			}
			if err := events.Delete(ctx, event.ID); err != nil {
				return fmt.Errorf("error deleting event %d: %w", event.ID, err)
			}
		}

		if err := donations.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting donations: %w", err)
		}

		if user.ProfilePictureURL != nil {
			orphanedFiles = append(orphanedFiles, *user.ProfilePictureURL)
		}
		if err := users.Delete(ctx, userID); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Files are cleaned up only after the commit so a rollback never leaves
	// rows pointing at deleted files.
	for _, path := range orphanedFiles {
		if err := s.fileStorage.DeleteFile(path); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Failed to delete orphaned file")
		}
	}

	s.logger.Info().Int64("userId", userID).Int64("removedBy", principal.UserID).Msg("User removed")

	return nil
}

func (s *AdminService) loadUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repos.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "user not found")
	}
	return user, nil
}
