package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appauth "github.com/sujeet/alumnisphere/internal/app/auth"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/repositories"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
	"github.com/sujeet/alumnisphere/internal/pkg/helpers"
	"github.com/sujeet/alumnisphere/internal/pkg/validation"
)

// CommentService handles comments on posts
type CommentService struct {
	commentRepo *repositories.CommentRepository
	postRepo    *repositories.PostRepository
	userRepo    *repositories.UserRepository
	authz       *appauth.AuthorizationService
	logger      zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo *repositories.CommentRepository,
	postRepo *repositories.PostRepository,
	userRepo *repositories.UserRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		authz:       authz,
		logger:      logger,
	}
}

// Create adds a comment to a post in the caller's college
func (s *CommentService) Create(ctx context.Context, principal *appauth.Principal, postID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := s.loadParentPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := canViewCollegeContent(principal, post.CollegeID); err != nil {
		return nil, err
	}

	content := validation.SanitizeContent(req.Content)
	if content == "" {
		return nil, apperrors.NewInvalidArgumentError("comment content cannot be empty")
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: principal.UserID,
		Content:  content,
	}

	commentID, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("comment creation error: %w", err)
	}
	comment.ID = commentID

	created, err := s.commentRepo.GetByID(ctx, commentID)
	if err == nil && created != nil {
		comment = created
	}

	author, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading author: %w", err)
	}

	resp := dto.NewCommentResponse(comment, author)
	return &resp, nil
}

// List returns a page of a post's comments, oldest first
func (s *CommentService) List(ctx context.Context, principal *appauth.Principal, postID int64, page, size int) (*dto.CommentListResponse, error) {
	post, err := s.loadParentPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := canViewCollegeContent(principal, post.CollegeID); err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	comments, total, err := s.commentRepo.ListByPost(ctx, postID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}

	authorIDs := make([]int64, 0, len(comments))
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.AuthorID)
	}
	authors, err := s.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading authors: %w", err)
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewCommentResponse(comment, authors[comment.AuthorID]))
	}

	return &dto.CommentListResponse{
		Comments:   responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Delete removes a comment. The comment author, the parent post's author, and
// an admin of the post's college may delete it.
func (s *CommentService) Delete(ctx context.Context, principal *appauth.Principal, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("error looking up comment: %w", err)
	}
	if comment == nil {
		return apperrors.NewCustomError(apperrors.ErrCommentNotFound, "comment not found")
	}

	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return fmt.Errorf("error looking up parent post: %w", err)
	}

	if err := s.authz.CanDeleteComment(principal, comment, post); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}

	return nil
}

func (s *CommentService) loadParentPost(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error looking up post: %w", err)
	}
	if post == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrPostNotFound, "post not found")
	}
	return post, nil
}
