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

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db db.Querier
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(q db.Querier) *CollegeRepository {
	return &CollegeRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *CollegeRepository) WithTx(tx pgx.Tx) *CollegeRepository {
	return &CollegeRepository{db: tx}
}

var collegeColumns = []string{
	"id", "name", "address", "contact_person_name", "contact_email",
	"contact_phone", "registration_status", "created_at", "updated_at",
}

func scanCollege(row pgx.Row) (*models.College, error) {
	var college models.College
	err := row.Scan(
		&college.ID,
		&college.Name,
		&college.Address,
		&college.ContactPersonName,
		&college.ContactEmail,
		&college.ContactPhone,
		&college.RegistrationStatus,
		&college.CreatedAt,
		&college.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// Create inserts a college and returns its generated ID
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) (int64, error) {
	query := squirrel.Insert("colleges").
		Columns("name", "address", "contact_person_name", "contact_email", "contact_phone", "registration_status").
		Values(college.Name, college.Address, college.ContactPersonName, college.ContactEmail, college.ContactPhone, college.RegistrationStatus).
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

// GetByID retrieves a college by ID, returning nil when it does not exist
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	query := squirrel.Select(collegeColumns...).
		From("colleges").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	college, err := scanCollege(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return college, nil
}

// ExistsByName checks whether a college with the given name is registered
func (r *CollegeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := squirrel.Select("1").
		From("colleges").
		Where("LOWER(name) = LOWER(?)", name).
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

// List retrieves all colleges ordered by name
func (r *CollegeRepository) List(ctx context.Context) ([]*models.College, error) {
	query := squirrel.Select(collegeColumns...).
		From("colleges").
		OrderBy("name ASC").
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

	var colleges []*models.College
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		colleges = append(colleges, college)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return colleges, nil
}

// UpdateStatus changes a college's registration status
func (r *CollegeRepository) UpdateStatus(ctx context.Context, id int64, status models.CollegeStatus) error {
	query := squirrel.Update("colleges").
		Set("registration_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
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
