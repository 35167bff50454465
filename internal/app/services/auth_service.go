package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/repositories"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
	"github.com/sujeet/alumnisphere/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.RefreshTokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.RefreshTokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user by email and password. Failed lookups and wrong
// passwords produce the same error so the response does not reveal which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountInactive, "this account is not active")
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new token pair. The old
// token is revoked so it cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, expiresAt, err := s.tokenRepo.GetByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if expiresAt.Before(time.Now()) {
		_ = s.tokenRepo.Revoke(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrTokenInvalid
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountInactive, "this account is not active")
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking refresh token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes the caller's refresh token. Logout is idempotent: an unknown
// or already revoked token is treated as success. A token that belongs to a
// different user is rejected without revealing whose it is.
func (s *AuthService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	ownerID, _, err := s.tokenRepo.GetByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenInvalid) {
			return nil
		}
		return err
	}

	if ownerID != userID {
		return apperrors.ErrTokenInvalid
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}

	s.logger.Debug().Int64("userId", userID).Msg("Refresh token revoked")

	return nil
}

// Me returns the authenticated user's own account
func (s *AuthService) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "user not found")
	}

	return dto.NewUserResponse(user), nil
}

// generateTokenResponse creates and persists a token pair for the user
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.tokenRepo.Create(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	s.logger.Debug().Int64("userId", user.ID).Msg("Issued token pair")

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
		User:             dto.NewUserResponse(user),
	}, nil
}
