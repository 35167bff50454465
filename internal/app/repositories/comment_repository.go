package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/db"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db db.Querier
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(q db.Querier) *CommentRepository {
	return &CommentRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *CommentRepository) WithTx(tx pgx.Tx) *CommentRepository {
	return &CommentRepository{db: tx}
}

var commentColumns = []string{
	"id", "post_id", "author_id", "content", "created_at", "updated_at",
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create inserts a comment and returns its generated ID
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query := squirrel.Insert("comments").
		Columns("post_id", "author_id", "content").
		Values(comment.PostID, comment.AuthorID, comment.Content).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves a comment by ID, returning nil when it does not exist
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := squirrel.Select(commentColumns...).
		From("comments").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	comment, err := scanComment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return comment, nil
}

// ListByPost retrieves a page of a post's comments, oldest first, plus the
// total count for pagination.
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64, offset uint64, limit int) ([]*models.Comment, int64, error) {
	query := squirrel.Select(commentColumns...).
		From("comments").
		Where("post_id = ?", postID).
		OrderBy("created_at ASC", "id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	total, err := r.CountByPost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// CountByPost returns the number of comments on a post
func (r *CommentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("comments").
		Where("post_id = ?", postID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}

// GetCountsByPostIDs returns comment counts keyed by post ID for a batch of
// posts. Posts with no comments are absent from the map.
func (r *CommentRepository) GetCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}

	query := squirrel.Select("post_id", "COUNT(*)").
		From("comments").
		Where(squirrel.Eq{"post_id": postIDs}).
		GroupBy("post_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID, count int64
		if err := rows.Scan(&postID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[postID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("comments").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// DeleteByAuthor removes every comment authored by a user, including comments
// on other users' posts.
func (r *CommentRepository) DeleteByAuthor(ctx context.Context, authorID int64) error {
	query := squirrel.Delete("comments").
		Where("author_id = ?", authorID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}
