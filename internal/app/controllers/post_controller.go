package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/app/services"
	"github.com/sujeet/alumnisphere/internal/middleware"
	"github.com/sujeet/alumnisphere/internal/pkg/helpers"
)

// PostController handles feed endpoints
type PostController struct {
	postService    *services.PostService
	commentService *services.CommentService
	logger         zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, commentService *services.CommentService, logger zerolog.Logger) *PostController {
	return &PostController{
		postService:    postService,
		commentService: commentService,
		logger:         logger,
	}
}

// Create handles POST /posts. The request is multipart form data so a post
// can carry an optional image next to its content field.
func (c *PostController) Create(ctx *gin.Context) {
	req := dto.CreatePostRequest{Content: ctx.PostForm("content")}

	// Image is optional; only a malformed multipart body is an error here
	image, err := ctx.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		image = nil
	}

	principal := middleware.GetPrincipal(ctx)
	post, err := c.postService.Create(ctx.Request.Context(), principal, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(post, "Post created"))
}

// List handles GET /posts
func (c *PostController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	principal := middleware.GetPrincipal(ctx)
	posts, err := c.postService.List(ctx.Request.Context(), principal, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(posts, ""))
}

// Get handles GET /posts/:id
func (c *PostController) Get(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	post, err := c.postService.Get(ctx.Request.Context(), principal, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post, ""))
}

// Update handles PUT /posts/:id
func (c *PostController) Update(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	post, err := c.postService.Update(ctx.Request.Context(), principal, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post, "Post updated"))
}

// Delete handles DELETE /posts/:id
func (c *PostController) Delete(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.postService.Delete(ctx.Request.Context(), principal, postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Post deleted"))
}

// Like handles POST /posts/:id/like
func (c *PostController) Like(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.postService.Like(ctx.Request.Context(), principal, postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Post liked"))
}

// Unlike handles DELETE /posts/:id/like
func (c *PostController) Unlike(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.postService.Unlike(ctx.Request.Context(), principal, postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Post unliked"))
}

// CreateComment handles POST /posts/:id/comments
func (c *PostController) CreateComment(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	principal := middleware.GetPrincipal(ctx)
	comment, err := c.commentService.Create(ctx.Request.Context(), principal, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(comment, "Comment created"))
}

// ListComments handles GET /posts/:id/comments
func (c *PostController) ListComments(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	principal := middleware.GetPrincipal(ctx)
	comments, err := c.commentService.List(ctx.Request.Context(), principal, postID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(comments, ""))
}

// DeleteComment handles DELETE /comments/:id
func (c *PostController) DeleteComment(ctx *gin.Context) {
	commentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	principal := middleware.GetPrincipal(ctx)
	if err := c.commentService.Delete(ctx.Request.Context(), principal, commentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Comment deleted"))
}
