package models

import (
	"time"
)

// Post defines the post model based on the 'posts' table. The college is
// denormalized from the author's college at creation time.
type Post struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	CollegeID int64     `json:"collegeId" db:"college_id" example:"1"`
	AuthorID  int64     `json:"authorId" db:"author_id" example:"7"`
	Content   *string   `json:"content,omitempty" db:"content"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url" example:"uploads/post.jpg"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Comment defines the comment model based on the 'comments' table
type Comment struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	PostID    int64     `json:"postId" db:"post_id" example:"1"`
	AuthorID  int64     `json:"authorId" db:"author_id" example:"7"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
