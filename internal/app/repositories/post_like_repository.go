package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sujeet/alumnisphere/internal/db"
)

// PostLikeRepository handles database operations for post likes
type PostLikeRepository struct {
	db db.Querier
}

// NewPostLikeRepository creates a new PostLikeRepository
func NewPostLikeRepository(q db.Querier) *PostLikeRepository {
	return &PostLikeRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostLikeRepository) WithTx(tx pgx.Tx) *PostLikeRepository {
	return &PostLikeRepository{db: tx}
}

// Add records a like. Liking an already-liked post is a no-op.
func (r *PostLikeRepository) Add(ctx context.Context, postID, userID int64) error {
	query := squirrel.Insert("post_likes").
		Columns("post_id", "user_id").
		Values(postID, userID).
		Suffix("ON CONFLICT (post_id, user_id) DO NOTHING").
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

// Remove deletes a like. Unliking a post that was never liked is a no-op.
func (r *PostLikeRepository) Remove(ctx context.Context, postID, userID int64) error {
	query := squirrel.Delete("post_likes").
		Where("post_id = ?", postID).
		Where("user_id = ?", userID).
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

// Exists checks whether the user has liked the post
func (r *PostLikeRepository) Exists(ctx context.Context, postID, userID int64) (bool, error) {
	query := squirrel.Select("1").
		From("post_likes").
		Where("post_id = ?", postID).
		Where("user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// CountByPost returns the number of likes on a post
func (r *PostLikeRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("post_likes").
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

// GetCountsByPostIDs returns like counts keyed by post ID for a batch of
// posts. Posts with no likes are absent from the map.
func (r *PostLikeRepository) GetCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}

	query := squirrel.Select("post_id", "COUNT(*)").
		From("post_likes").
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

// GetLikedPostIDs filters the given post IDs down to those the user has liked
func (r *PostLikeRepository) GetLikedPostIDs(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool)
	if len(postIDs) == 0 {
		return liked, nil
	}

	query := squirrel.Select("post_id").
		From("post_likes").
		Where("user_id = ?", userID).
		Where(squirrel.Eq{"post_id": postIDs}).
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
		var postID int64
		if err := rows.Scan(&postID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		liked[postID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return liked, nil
}

// DeleteByUser removes every like placed by a user
func (r *PostLikeRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := squirrel.Delete("post_likes").
		Where("user_id = ?", userID).
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
