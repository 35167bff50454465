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
	"github.com/sujeet/alumnisphere/internal/pkg/helpers"
	"github.com/sujeet/alumnisphere/internal/pkg/validation"
)

// PostService handles the college feed
type PostService struct {
	postRepo    *repositories.PostRepository
	likeRepo    *repositories.PostLikeRepository
	commentRepo *repositories.CommentRepository
	userRepo    *repositories.UserRepository
	authz       *appauth.AuthorizationService
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo *repositories.PostRepository,
	likeRepo *repositories.PostLikeRepository,
	commentRepo *repositories.CommentRepository,
	userRepo *repositories.UserRepository,
	authz *appauth.AuthorizationService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		authz:       authz,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Create publishes a post in the caller's college. A post needs text content,
// an image, or both; the college is denormalized from the caller.
func (s *PostService) Create(ctx context.Context, principal *appauth.Principal, req *dto.CreatePostRequest, image *multipart.FileHeader) (*dto.PostResponse, error) {
	collegeID, err := requireMemberCollege(principal)
	if err != nil {
		return nil, err
	}

	content := validation.SanitizeContent(req.Content)
	if content == "" && image == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrEmptyPost, "a post needs text content or an image")
	}

	var imageURL *string
	if image != nil {
		savedPath, err := s.fileStorage.SaveFile(image)
		if err != nil {
			return nil, apperrors.NewStorageFailureError("failed to store post image")
		}
		imageURL = &savedPath
	}

	post := &models.Post{
		CollegeID: collegeID,
		AuthorID:  principal.UserID,
		ImageURL:  imageURL,
	}
	if content != "" {
		post.Content = &content
	}

	postID, err := s.postRepo.Create(ctx, post)
	if err != nil {
		if imageURL != nil {
			_ = s.fileStorage.DeleteFile(*imageURL)
		}
		return nil, fmt.Errorf("post creation error: %w", err)
	}
	post.ID = postID

	created, err := s.postRepo.GetByID(ctx, postID)
	if err == nil && created != nil {
		post = created
	}

	author, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading author: %w", err)
	}

	resp := dto.NewPostResponse(post, author, 0, 0, false)
	return &resp, nil
}

// List returns a page of the caller's college feed, newest first, with
// actor-relative like flags.
func (s *PostService) List(ctx context.Context, principal *appauth.Principal, page, size int) (*dto.PostListResponse, error) {
	collegeID, err := requireMemberCollege(principal)
	if err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.postRepo.ListByCollege(ctx, collegeID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	responses, err := s.projectPosts(ctx, principal, posts)
	if err != nil {
		return nil, err
	}

	return &dto.PostListResponse{
		Posts:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Get returns one post with actor-relative derived fields
func (s *PostService) Get(ctx context.Context, principal *appauth.Principal, postID int64) (*dto.PostResponse, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := canViewCollegeContent(principal, post.CollegeID); err != nil {
		return nil, err
	}

	responses, err := s.projectPosts(ctx, principal, []*models.Post{post})
	if err != nil {
		return nil, err
	}

	return &responses[0], nil
}

// Update edits the text content of the caller's own post
func (s *PostService) Update(ctx context.Context, principal *appauth.Principal, postID int64, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanModifyPost(principal, post); err != nil {
		return nil, err
	}

	content := validation.SanitizeContent(req.Content)
	if content == "" && post.ImageURL == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrEmptyPost, "a post needs text content or an image")
	}

	if content == "" {
		post.Content = nil
	} else {
		post.Content = &content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	return s.Get(ctx, principal, postID)
}

// Delete removes a post along with its stored image. Comments and likes are
// removed by the database's cascade constraints.
func (s *PostService) Delete(ctx context.Context, principal *appauth.Principal, postID int64) error {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.authz.CanModifyPost(principal, post); err != nil {
		return err
	}

	if post.ImageURL != nil {
		if err := s.fileStorage.DeleteFile(*post.ImageURL); err != nil {
			s.logger.Warn().Err(err).Str("path", *post.ImageURL).Msg("Failed to delete post image")
		}
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	return nil
}

// Like records the caller's like on a post. Liking twice has no extra effect.
func (s *PostService) Like(ctx context.Context, principal *appauth.Principal, postID int64) error {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := canViewCollegeContent(principal, post.CollegeID); err != nil {
		return err
	}

	if err := s.likeRepo.Add(ctx, postID, principal.UserID); err != nil {
		return fmt.Errorf("error liking post: %w", err)
	}

	return nil
}

// Unlike removes the caller's like from a post. Unliking a post that was
// never liked has no effect.
func (s *PostService) Unlike(ctx context.Context, principal *appauth.Principal, postID int64) error {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := canViewCollegeContent(principal, post.CollegeID); err != nil {
		return err
	}

	if err := s.likeRepo.Remove(ctx, postID, principal.UserID); err != nil {
		return fmt.Errorf("error unliking post: %w", err)
	}

	return nil
}

func (s *PostService) loadPost(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error looking up post: %w", err)
	}
	if post == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrPostNotFound, "post not found")
	}
	return post, nil
}

// projectPosts builds actor-relative responses for a batch of posts using
// grouped count queries rather than per-post lookups.
func (s *PostService) projectPosts(ctx context.Context, principal *appauth.Principal, posts []*models.Post) ([]dto.PostResponse, error) {
	postIDs := make([]int64, 0, len(posts))
	authorIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		authorIDs = append(authorIDs, post.AuthorID)
	}

	likeCounts, err := s.likeRepo.GetCountsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("error counting likes: %w", err)
	}

	commentCounts, err := s.commentRepo.GetCountsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("error counting comments: %w", err)
	}

	liked := make(map[int64]bool)
	if principal != nil {
		liked, err = s.likeRepo.GetLikedPostIDs(ctx, principal.UserID, postIDs)
		if err != nil {
			return nil, fmt.Errorf("error loading like flags: %w", err)
		}
	}

	authors, err := s.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading authors: %w", err)
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.NewPostResponse(
			post,
			authors[post.AuthorID],
			likeCounts[post.ID],
			commentCounts[post.ID],
			liked[post.ID],
		))
	}

	return responses, nil
}
