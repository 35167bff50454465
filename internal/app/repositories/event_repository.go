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

// EventRepository handles database operations for events
type EventRepository struct {
	db db.Querier
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(q db.Querier) *EventRepository {
	return &EventRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *EventRepository) WithTx(tx pgx.Tx) *EventRepository {
	return &EventRepository{db: tx}
}

var eventColumns = []string{
	"id", "college_id", "created_by", "title", "description", "event_date",
	"location", "image_url", "created_at", "updated_at",
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.CollegeID,
		&event.CreatedBy,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.Location,
		&event.ImageURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts an event and returns its generated ID
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := squirrel.Insert("events").
		Columns("college_id", "created_by", "title", "description", "event_date", "location", "image_url").
		Values(event.CollegeID, event.CreatedBy, event.Title, event.Description, event.EventDate, event.Location, event.ImageURL).
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

// GetByID retrieves an event by ID, returning nil when it does not exist
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return event, nil
}

// ListByCollege retrieves a page of a college's events ordered by event date,
// soonest first, plus the total count for pagination.
func (r *EventRepository) ListByCollege(ctx context.Context, collegeID int64, offset uint64, limit int) ([]*models.Event, int64, error) {
	query := squirrel.Select(eventColumns...).
		From("events").
		Where("college_id = ?", collegeID).
		OrderBy("event_date ASC", "id ASC").
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

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	countQuery := squirrel.Select("COUNT(*)").
		From("events").
		Where("college_id = ?", collegeID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}

	return events, total, nil
}

// ListByCreator retrieves all events created by a user
func (r *EventRepository) ListByCreator(ctx context.Context, userID int64) ([]*models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events").
		Where("created_by = ?", userID).
		OrderBy("event_date ASC", "id ASC").
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

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

// Update applies changes to an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := squirrel.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("event_date", event.EventDate).
		Set("location", event.Location).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", event.ID).
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

// Delete removes an event. Its attendee rows go with it via ON DELETE CASCADE.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("events").
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
