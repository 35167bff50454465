package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sujeet/alumnisphere/internal/db"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
)

// RefreshTokenRepository handles database operations for refresh tokens.
// Tokens are opaque UUIDs; validity is tracked server-side.
type RefreshTokenRepository struct {
	db db.Querier
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository
func NewRefreshTokenRepository(q db.Querier) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RefreshTokenRepository) WithTx(tx pgx.Tx) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: tx}
}

// Create stores a refresh token for a user
func (r *RefreshTokenRepository) Create(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	query := squirrel.Insert("refresh_tokens").
		Columns("token", "user_id", "expires_at").
		Values(token, userID, expiresAt).
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

// GetByValue looks up a refresh token and returns its owner and expiry.
// Unknown and revoked tokens both report as invalid.
func (r *RefreshTokenRepository) GetByValue(ctx context.Context, token string) (userID int64, expiresAt time.Time, err error) {
	query := squirrel.Select("user_id", "expires_at", "revoked").
		From("refresh_tokens").
		Where("token = ?", token).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("error building SQL: %w", err)
	}

	var revoked bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&userID, &expiresAt, &revoked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, time.Time{}, apperrors.ErrTokenInvalid
		}
		return 0, time.Time{}, fmt.Errorf("error executing query: %w", err)
	}

	if revoked {
		return 0, time.Time{}, apperrors.ErrTokenInvalid
	}

	return userID, expiresAt, nil
}

// Revoke marks a refresh token as unusable
func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	query := squirrel.Update("refresh_tokens").
		Set("revoked", true).
		Where("token = ?", token).
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

// DeleteByUser removes every refresh token issued to a user
func (r *RefreshTokenRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := squirrel.Delete("refresh_tokens").
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

// DeleteExpired prunes tokens whose expiry has passed
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	query := squirrel.Delete("refresh_tokens").
		Where("expires_at < NOW()").
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
