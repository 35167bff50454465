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

// DonationRepository handles database operations for donations
type DonationRepository struct {
	db db.Querier
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(q db.Querier) *DonationRepository {
	return &DonationRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *DonationRepository) WithTx(tx pgx.Tx) *DonationRepository {
	return &DonationRepository{db: tx}
}

var donationColumns = []string{
	"id", "user_id", "college_id", "amount", "currency", "payment_id",
	"order_id", "signature", "status", "donated_at", "updated_at",
}

func scanDonation(row pgx.Row) (*models.Donation, error) {
	var donation models.Donation
	err := row.Scan(
		&donation.ID,
		&donation.UserID,
		&donation.CollegeID,
		&donation.Amount,
		&donation.Currency,
		&donation.PaymentID,
		&donation.OrderID,
		&donation.Signature,
		&donation.Status,
		&donation.DonatedAt,
		&donation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// Create inserts a donation in CREATED status and returns its generated ID
func (r *DonationRepository) Create(ctx context.Context, donation *models.Donation) (int64, error) {
	query := squirrel.Insert("donations").
		Columns("user_id", "college_id", "amount", "currency", "status").
		Values(donation.UserID, donation.CollegeID, donation.Amount, donation.Currency, donation.Status).
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

// GetByID retrieves a donation by ID, returning nil when it does not exist
func (r *DonationRepository) GetByID(ctx context.Context, id int64) (*models.Donation, error) {
	query := squirrel.Select(donationColumns...).
		From("donations").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	donation, err := scanDonation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return donation, nil
}

// Confirm records the payment gateway outcome on a donation
func (r *DonationRepository) Confirm(ctx context.Context, donation *models.Donation) error {
	query := squirrel.Update("donations").
		Set("payment_id", donation.PaymentID).
		Set("order_id", donation.OrderID).
		Set("signature", donation.Signature).
		Set("status", donation.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", donation.ID).
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

// ListByUser retrieves a user's donations, newest first
func (r *DonationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Donation, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListByCollege retrieves a college's donations, newest first
func (r *DonationRepository) ListByCollege(ctx context.Context, collegeID int64) ([]*models.Donation, error) {
	return r.list(ctx, squirrel.Eq{"college_id": collegeID})
}

func (r *DonationRepository) list(ctx context.Context, pred squirrel.Eq) ([]*models.Donation, error) {
	query := squirrel.Select(donationColumns...).
		From("donations").
		Where(pred).
		OrderBy("donated_at DESC", "id DESC").
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

	var donations []*models.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return donations, nil
}

// DeleteByUser removes every donation made by a user
func (r *DonationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := squirrel.Delete("donations").
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
