package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/sujeet/alumnisphere/internal/app/auth"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/repositories"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
)

// SearchService finds users within the caller's own college
type SearchService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(userRepo *repositories.UserRepository, logger zerolog.Logger) *SearchService {
	return &SearchService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SearchUsers matches the term against name and email of the caller's
// college members, excluding the caller themselves. A caller without a
// college (a super admin) gets an empty result rather than a cross-college
// search.
func (s *SearchService) SearchUsers(ctx context.Context, principal *appauth.Principal, term string) ([]dto.UserSummary, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperrors.NewInvalidArgumentError("search term cannot be empty")
	}

	if principal.CollegeID == nil {
		return []dto.UserSummary{}, nil
	}

	users, err := s.userRepo.SearchInCollege(ctx, *principal.CollegeID, term, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, dto.NewUserSummary(user))
	}

	return summaries, nil
}
