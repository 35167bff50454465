package dto

import (
	"time"

	"github.com/sujeet/alumnisphere/internal/app/models"
)

// CreateCommentRequest represents a comment creation request
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID        int64        `json:"id" example:"1"`
	PostID    int64        `json:"postId" example:"1"`
	Author    *UserSummary `json:"author,omitempty"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
}

// CommentListResponse is a paginated page of comments
type CommentListResponse struct {
	Comments   []CommentResponse `json:"comments"`
	Pagination PaginationInfo    `json:"pagination"`
}

// NewCommentResponse maps a comment entity to its API projection
func NewCommentResponse(comment *models.Comment, author *models.User) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if author != nil {
		summary := NewUserSummary(author)
		resp.Author = &summary
	}
	return resp
}
