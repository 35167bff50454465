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

// EventAttendeeRepository handles database operations for event attendance
type EventAttendeeRepository struct {
	db db.Querier
}

// NewEventAttendeeRepository creates a new EventAttendeeRepository
func NewEventAttendeeRepository(q db.Querier) *EventAttendeeRepository {
	return &EventAttendeeRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *EventAttendeeRepository) WithTx(tx pgx.Tx) *EventAttendeeRepository {
	return &EventAttendeeRepository{db: tx}
}

// Add records attendance. Joining an event already joined is a no-op.
func (r *EventAttendeeRepository) Add(ctx context.Context, eventID, userID int64) error {
	query := squirrel.Insert("event_attendees").
		Columns("event_id", "user_id").
		Values(eventID, userID).
		Suffix("ON CONFLICT (event_id, user_id) DO NOTHING").
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

// Remove deletes attendance. Leaving an event never joined is a no-op.
func (r *EventAttendeeRepository) Remove(ctx context.Context, eventID, userID int64) error {
	query := squirrel.Delete("event_attendees").
		Where("event_id = ?", eventID).
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

// Exists checks whether the user is attending the event
func (r *EventAttendeeRepository) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	query := squirrel.Select("1").
		From("event_attendees").
		Where("event_id = ?", eventID).
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

// CountByEvent returns the number of attendees of an event
func (r *EventAttendeeRepository) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("event_attendees").
		Where("event_id = ?", eventID).
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

// GetCountsByEventIDs returns attendee counts keyed by event ID for a batch
// of events. Events with no attendees are absent from the map.
func (r *EventAttendeeRepository) GetCountsByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(eventIDs) == 0 {
		return counts, nil
	}

	query := squirrel.Select("event_id", "COUNT(*)").
		From("event_attendees").
		Where(squirrel.Eq{"event_id": eventIDs}).
		GroupBy("event_id").
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
		var eventID, count int64
		if err := rows.Scan(&eventID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[eventID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}

// GetAttendingEventIDs filters the given event IDs down to those the user has
// joined.
func (r *EventAttendeeRepository) GetAttendingEventIDs(ctx context.Context, userID int64, eventIDs []int64) (map[int64]bool, error) {
	attending := make(map[int64]bool)
	if len(eventIDs) == 0 {
		return attending, nil
	}

	query := squirrel.Select("event_id").
		From("event_attendees").
		Where("user_id = ?", userID).
		Where(squirrel.Eq{"event_id": eventIDs}).
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
		var eventID int64
		if err := rows.Scan(&eventID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		attending[eventID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return attending, nil
}

// ListByEvent retrieves the attendance rows of an event, earliest joiner first
func (r *EventAttendeeRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.EventAttendee, error) {
	query := squirrel.Select("event_id", "user_id", "joined_at").
		From("event_attendees").
		Where("event_id = ?", eventID).
		OrderBy("joined_at ASC").
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

	var attendees []*models.EventAttendee
	for rows.Next() {
		var attendee models.EventAttendee
		if err := rows.Scan(&attendee.EventID, &attendee.UserID, &attendee.JoinedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		attendees = append(attendees, &attendee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return attendees, nil
}

// DeleteByUser removes a user's attendance from every event
func (r *EventAttendeeRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := squirrel.Delete("event_attendees").
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
