package dto

import (
	"time"

	"github.com/sujeet/alumnisphere/internal/app/models"
)

// CreatePostRequest represents a post creation request. Content may be empty
// only when an image is attached; the service enforces it.
type CreatePostRequest struct {
	Content string `json:"content" binding:"omitempty,max=5000"`
}

// UpdatePostRequest represents a post content update
type UpdatePostRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// PostResponse is the actor-relative post projection. LikedByCurrentUser is
// always false for anonymous callers.
type PostResponse struct {
	ID                 int64        `json:"id" example:"1"`
	CollegeID          int64        `json:"collegeId" example:"1"`
	Author             *UserSummary `json:"author,omitempty"`
	Content            *string      `json:"content,omitempty"`
	ImageURL           *string      `json:"imageUrl,omitempty"`
	LikesCount         int64        `json:"likesCount" example:"3"`
	CommentsCount      int64        `json:"commentsCount" example:"2"`
	LikedByCurrentUser bool         `json:"likedByCurrentUser" example:"false"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// PostListResponse is a paginated page of posts
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewPostResponse builds the actor-relative view of a post
func NewPostResponse(post *models.Post, author *models.User, likes, comments int64, liked bool) PostResponse {
	resp := PostResponse{
		ID:                 post.ID,
		CollegeID:          post.CollegeID,
		Content:            post.Content,
		ImageURL:           post.ImageURL,
		LikesCount:         likes,
		CommentsCount:      comments,
		LikedByCurrentUser: liked,
		CreatedAt:          post.CreatedAt,
		UpdatedAt:          post.UpdatedAt,
	}
	if author != nil {
		summary := NewUserSummary(author)
		resp.Author = &summary
	}
	return resp
}
