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

// companyColumns is the shared list of columns for participant company queries.
var companyColumns = []string{
	"id", "event_id", "name", "booth_code", "responsible", "contact",
	"button_ids", "created_at",
}

// CompanyRepository handles database operations for participant companies.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// scanCompany scans a single row into a ParticipantCompany struct.
func scanCompany(row pgx.Row) (*domain.ParticipantCompany, error) {
	var company domain.ParticipantCompany
	err := row.Scan(
		&company.ID,
		&company.EventID,
		&company.Name,
		&company.BoothCode,
		&company.Responsible,
		&company.Contact,
		&company.ButtonIDs,
		&company.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return &company, nil
}

// GetByBoothCode retrieves a participant company by its booth code.
// Returns ErrBoothCodeNotFound when no company has the code.
func (r *CompanyRepository) GetByBoothCode(ctx context.Context, boothCode string) (*domain.ParticipantCompany, error) {
	query, args, err := psql.
		Select(companyColumns...).
		From("participant_companies").
		Where(sq.Eq{"booth_code": boothCode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByBoothCode query: %w", err)
	}

	company, err := scanCompany(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return nil, domain.ErrBoothCodeNotFound
		}
		return nil, err
	}
	return company, nil
}

// ListByEvent retrieves all participant companies for an event.
func (r *CompanyRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipantCompany, error) {
	query, args, err := psql.
		Select(companyColumns...).
		From("participant_companies").
		Where(sq.Eq{"event_id": eventID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByEvent query for companies: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var companies []*domain.ParticipantCompany
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return companies, nil
}
