package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expocheck/expocheck/internal/domain"
)

// activityColumns is the shared list of columns for activity queries.
var activityColumns = []string{"id", "staff_id", "description", "timestamp"}

// ActivityRepository handles database operations for the append-only staff
// activity log. There is no update or delete: state changes are represented
// by appending new entries.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// scanActivities scans rows into a slice of Activity structs.
func scanActivities(rows pgx.Rows) ([]*domain.Activity, error) {
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		var activity domain.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.StaffID,
			&activity.Description,
			&activity.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, &activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return activities, nil
}

// ListByStaff retrieves the full activity log for one staff member, newest
// first. Task reconciliation relies on this ordering for its
// most-recent-assignment-wins semantics; callers must not re-sort.
func (r *ActivityRepository) ListByStaff(ctx context.Context, staffID string) ([]*domain.Activity, error) {
	query, args, err := psql.
		Select(activityColumns...).
		From("staff_activities").
		Where(sq.Eq{"staff_id": staffID}).
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByStaff query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}

	return scanActivities(rows)
}

// ListByStaffIDs retrieves the union of activity logs for a set of staff
// members, newest first. Same ordering contract as ListByStaff.
func (r *ActivityRepository) ListByStaffIDs(ctx context.Context, staffIDs []string) ([]*domain.Activity, error) {
	if len(staffIDs) == 0 {
		return []*domain.Activity{}, nil
	}

	query, args, err := psql.
		Select(activityColumns...).
		From("staff_activities").
		Where(sq.Eq{"staff_id": staffIDs}).
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByStaffIDs query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}

	return scanActivities(rows)
}

// Append inserts a new activity record and returns it with the
// store-assigned ID.
func (r *ActivityRepository) Append(ctx context.Context, staffID, description string, timestamp time.Time) (*domain.Activity, error) {
	query, args, err := psql.
		Insert("staff_activities").
		Columns("staff_id", "description", "timestamp").
		Values(staffID, description, timestamp).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Append query: %w", err)
	}

	activity := &domain.Activity{
		StaffID:     staffID,
		Description: description,
		Timestamp:   timestamp,
	}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&activity.ID); err != nil {
		return nil, fmt.Errorf("append activity: %w", err)
	}

	return activity, nil
}
