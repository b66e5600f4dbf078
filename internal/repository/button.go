package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expocheck/expocheck/internal/domain"
)

// ButtonRepository handles database operations for report button configs.
type ButtonRepository struct {
	pool *pgxpool.Pool
}

// NewButtonRepository creates a new ButtonRepository.
func NewButtonRepository(pool *pgxpool.Pool) *ButtonRepository {
	return &ButtonRepository{pool: pool}
}

// ListByIDs retrieves the button configs for the given IDs. Missing IDs are
// silently skipped; a booth referencing a deleted config just shows fewer
// buttons.
func (r *ButtonRepository) ListByIDs(ctx context.Context, buttonIDs []string) ([]*domain.ReportButton, error) {
	if len(buttonIDs) == 0 {
		return []*domain.ReportButton{}, nil
	}

	query, args, err := psql.
		Select("id", "label", "question", "type", "options", "follow_up", "department_id", "created_at").
		From("report_button_configs").
		Where(sq.Eq{"id": buttonIDs}).
		OrderBy("label ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByIDs query for buttons: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query buttons: %w", err)
	}
	defer rows.Close()

	var buttons []*domain.ReportButton
	for rows.Next() {
		var button domain.ReportButton
		err := rows.Scan(
			&button.ID,
			&button.Label,
			&button.Question,
			&button.Type,
			&button.Options,
			&button.FollowUp,
			&button.DepartmentID,
			&button.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan button: %w", err)
		}
		buttons = append(buttons, &button)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return buttons, nil
}
