package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expocheck/expocheck/internal/domain"
)

// EventRepository handles database operations for events.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// GetByID retrieves an event by ID.
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query, args, err := psql.
		Select("id", "name", "date", "details", "organizer_company_id", "is_active", "created_at").
		From("events").
		Where(sq.Eq{"id": eventID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for event %s: %w", eventID, err)
	}

	var event domain.Event
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Details,
		&event.OrganizerCompanyID,
		&event.IsActive,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("query event: %w", err)
	}

	return &event, nil
}
