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

// staffColumns is the shared list of columns for staff queries.
var staffColumns = []string{
	"id", "organizer_company_id", "name", "personal_code", "phone",
	"department_id", "role", "created_at",
}

// StaffRepository handles database operations for staff members.
type StaffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

// scanStaff scans a single row into a Staff struct.
func scanStaff(row pgx.Row) (*domain.Staff, error) {
	var staff domain.Staff
	err := row.Scan(
		&staff.ID,
		&staff.OrganizerCompanyID,
		&staff.Name,
		&staff.PersonalCode,
		&staff.Phone,
		&staff.DepartmentID,
		&staff.Role,
		&staff.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, fmt.Errorf("scan staff: %w", err)
	}
	return &staff, nil
}

// GetByID retrieves a staff member by ID.
func (r *StaffRepository) GetByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query, args, err := psql.
		Select(staffColumns...).
		From("staff").
		Where(sq.Eq{"id": staffID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for staff: %w", err)
	}

	return scanStaff(r.pool.QueryRow(ctx, query, args...))
}

// GetByPersonalCode retrieves a staff member by their check-in code.
// Returns ErrPersonalCodeNotFound when no staff carries the code.
func (r *StaffRepository) GetByPersonalCode(ctx context.Context, personalCode string) (*domain.Staff, error) {
	query, args, err := psql.
		Select(staffColumns...).
		From("staff").
		Where(sq.Eq{"personal_code": personalCode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByPersonalCode query: %w", err)
	}

	staff, err := scanStaff(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			return nil, domain.ErrPersonalCodeNotFound
		}
		return nil, err
	}
	return staff, nil
}

// ListByEvent retrieves the staff roster for an event, resolved through the
// event's organizer company.
func (r *StaffRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Staff, error) {
	qualified := make([]string, len(staffColumns))
	for i, col := range staffColumns {
		qualified[i] = "s." + col
	}

	query, args, err := psql.
		Select(qualified...).
		From("staff s").
		Join("events e ON e.organizer_company_id = s.organizer_company_id").
		Where(sq.Eq{"e.id": eventID}).
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByEvent query for staff: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query staff roster: %w", err)
	}
	defer rows.Close()

	var roster []*domain.Staff
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		roster = append(roster, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return roster, nil
}
