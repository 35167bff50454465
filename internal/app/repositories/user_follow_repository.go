package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sujeet/alumnisphere/internal/db"
)

// UserFollowRepository handles database operations for follow edges
type UserFollowRepository struct {
	db db.Querier
}

// NewUserFollowRepository creates a new UserFollowRepository
func NewUserFollowRepository(q db.Querier) *UserFollowRepository {
	return &UserFollowRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *UserFollowRepository) WithTx(tx pgx.Tx) *UserFollowRepository {
	return &UserFollowRepository{db: tx}
}

// Add records a follow edge. Following an already-followed user is a no-op.
func (r *UserFollowRepository) Add(ctx context.Context, followerID, followingID int64) error {
	query := squirrel.Insert("user_follows").
		Columns("follower_id", "following_id").
		Values(followerID, followingID).
		Suffix("ON CONFLICT (follower_id, following_id) DO NOTHING").
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

// Remove deletes a follow edge. Unfollowing a user never followed is a no-op.
func (r *UserFollowRepository) Remove(ctx context.Context, followerID, followingID int64) error {
	query := squirrel.Delete("user_follows").
		Where("follower_id = ?", followerID).
		Where("following_id = ?", followingID).
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

// Exists checks whether follower follows following
func (r *UserFollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	query := squirrel.Select("1").
		From("user_follows").
		Where("follower_id = ?", followerID).
		Where("following_id = ?", followingID).
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

// CountFollowers returns how many users follow the given user
func (r *UserFollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, squirrel.Eq{"following_id": userID})
}

// CountFollowing returns how many users the given user follows
func (r *UserFollowRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, squirrel.Eq{"follower_id": userID})
}

func (r *UserFollowRepository) count(ctx context.Context, pred squirrel.Eq) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("user_follows").
		Where(pred).
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

// ListFollowerIDs returns the IDs of users following the given user
func (r *UserFollowRepository) ListFollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.listIDs(ctx, "follower_id", squirrel.Eq{"following_id": userID})
}

// ListFollowingIDs returns the IDs of users the given user follows
func (r *UserFollowRepository) ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.listIDs(ctx, "following_id", squirrel.Eq{"follower_id": userID})
}

func (r *UserFollowRepository) listIDs(ctx context.Context, column string, pred squirrel.Eq) ([]int64, error) {
	query := squirrel.Select(column).
		From("user_follows").
		Where(pred).
		OrderBy("created_at DESC").
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

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ids, nil
}

// DeleteAllForUser removes every follow edge touching the user, in both
// directions.
func (r *UserFollowRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	query := squirrel.Delete("user_follows").
		Where(squirrel.Or{
			squirrel.Eq{"follower_id": userID},
			squirrel.Eq{"following_id": userID},
		}).
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
