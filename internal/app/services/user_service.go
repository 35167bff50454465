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
	"github.com/sujeet/alumnisphere/internal/pkg/validation"
)

// UserService handles profiles and the follow graph
type UserService struct {
	userRepo    *repositories.UserRepository
	followRepo  *repositories.UserFollowRepository
	authz       *appauth.AuthorizationService
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	followRepo *repositories.UserFollowRepository,
	authz *appauth.AuthorizationService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		followRepo:  followRepo,
		authz:       authz,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetProfile returns a user's profile with follower counts. The
// followedByCurrentUser flag is relative to the caller and always false for
// anonymous callers.
func (s *UserService) GetProfile(ctx context.Context, principal *appauth.Principal, userID int64) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "user not found")
	}

	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting followers: %w", err)
	}

	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting following: %w", err)
	}

	followed := false
	if principal != nil && principal.UserID != userID {
		followed, err = s.followRepo.Exists(ctx, principal.UserID, userID)
		if err != nil {
			return nil, fmt.Errorf("error checking follow edge: %w", err)
		}
	}

	return dto.NewUserProfileResponse(user, followers, following, followed), nil
}

// UpdateProfile applies the non-nil fields of the request to the caller's own
// profile. Free-text fields are sanitized before storage.
func (s *UserService) UpdateProfile(ctx context.Context, principal *appauth.Principal, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := s.authz.RequireAuthenticated(principal); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "user not found")
	}

	if req.Name != nil {
		name := validation.SanitizeContent(*req.Name)
		if !validation.IsValidName(name) {
			return nil, apperrors.NewInvalidArgumentError("invalid name")
		}
		user.Name = name
	}
	if req.ProfileHeadline != nil {
		headline := validation.SanitizeContent(*req.ProfileHeadline)
		user.ProfileHeadline = &headline
	}
	if req.ProfileLocation != nil {
		location := validation.SanitizeContent(*req.ProfileLocation)
		user.ProfileLocation = &location
	}
	if req.ProfileAbout != nil {
		about := validation.SanitizeContent(*req.ProfileAbout)
		user.ProfileAbout = &about
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return dto.NewUserResponse(user), nil
}

// UpdateProfilePicture stores a new profile picture for the caller and
// removes the previous one. Removal of the old file is best effort.
func (s *UserService) UpdateProfilePicture(ctx context.Context, principal *appauth.Principal, fileHeader *multipart.FileHeader) (*dto.UserResponse, error) {
	if err := s.authz.RequireAuthenticated(principal); err != nil {
		return nil, err
	}
	if fileHeader == nil {
		return nil, apperrors.NewInvalidArgumentError("no file uploaded")
	}

	user, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "user not found")
	}

	savedPath, err := s.fileStorage.SaveFile(fileHeader)
	if err != nil {
		return nil, apperrors.NewStorageFailureError("failed to store profile picture")
	}

	oldPicture := user.ProfilePictureURL
	user.ProfilePictureURL = &savedPath

	if err := s.userRepo.UpdateProfilePicture(ctx, user.ID, user.ProfilePictureURL); err != nil {
		_ = s.fileStorage.DeleteFile(savedPath)
		return nil, fmt.Errorf("error updating profile picture: %w", err)
	}

	if oldPicture != nil {
		if err := s.fileStorage.DeleteFile(*oldPicture); err != nil {
			s.logger.Warn().Err(err).Str("path", *oldPicture).Msg("Failed to delete old profile picture")
		}
	}

	return dto.NewUserResponse(user), nil
}

// Follow creates a follow edge from the caller to the target user. Following
// an already-followed user succeeds without effect.
func (s *UserService) Follow(ctx context.Context, principal *appauth.Principal, targetUserID int64) error {
	if err := s.authz.ValidateFollow(principal, targetUserID); err != nil {
		return err
	}

	target, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("error looking up user: %w", err)
	}
	if target == nil {
		return apperrors.NewCustomError(apperrors.ErrUserNotFound, "user not found")
	}

	if err := s.followRepo.Add(ctx, principal.UserID, targetUserID); err != nil {
		return fmt.Errorf("error creating follow: %w", err)
	}

	return nil
}

// Unfollow removes the follow edge from the caller to the target user.
// Unfollowing a user who was never followed succeeds without effect.
func (s *UserService) Unfollow(ctx context.Context, principal *appauth.Principal, targetUserID int64) error {
	if err := s.authz.ValidateFollow(principal, targetUserID); err != nil {
		return err
	}

	target, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("error looking up user: %w", err)
	}
	if target == nil {
		return apperrors.NewCustomError(apperrors.ErrUserNotFound, "user not found")
	}

	if err := s.followRepo.Remove(ctx, principal.UserID, targetUserID); err != nil {
		return fmt.Errorf("error removing follow: %w", err)
	}

	return nil
}

// ListFollowers returns the users following the given user
func (s *UserService) ListFollowers(ctx context.Context, userID int64) ([]dto.UserSummary, error) {
	ids, err := s.followRepo.ListFollowerIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing followers: %w", err)
	}
	return s.summariesForIDs(ctx, ids)
}

// ListFollowing returns the users the given user follows
func (s *UserService) ListFollowing(ctx context.Context, userID int64) ([]dto.UserSummary, error) {
	ids, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing following: %w", err)
	}
	return s.summariesForIDs(ctx, ids)
}

func (s *UserService) summariesForIDs(ctx context.Context, ids []int64) ([]dto.UserSummary, error) {
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading users: %w", err)
	}

	summaries := make([]dto.UserSummary, 0, len(ids))
	for _, id := range ids {
		if user, ok := users[id]; ok {
			summaries = append(summaries, dto.NewUserSummary(user))
		}
	}

	return summaries, nil
}

// requireMemberCollege extracts the caller's college. Operations that write
// college-scoped content need a college; a super admin has none.
func requireMemberCollege(principal *appauth.Principal) (int64, error) {
	if principal == nil {
		return 0, apperrors.ErrUnauthorized
	}
	if principal.CollegeID == nil {
		return 0, apperrors.NewForbiddenError("this operation requires a college membership")
	}
	return *principal.CollegeID, nil
}

// canViewCollegeContent gates college-scoped reads. Members see their own
// college's content; a super admin sees everything.
func canViewCollegeContent(principal *appauth.Principal, collegeID int64) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	if principal.Role == models.RoleSuperAdmin {
		return nil
	}
	if !principal.SameCollege(collegeID) {
		return apperrors.NewForbiddenError("content belongs to another college")
	}
	return nil
}
