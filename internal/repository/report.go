package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expocheck/expocheck/internal/domain"
)

// reportColumns is the shared list of columns for report queries.
var reportColumns = []string{
	"id", "event_id", "booth_code", "staff_name", "report_label", "response", "timestamp",
}

// ReportRepository handles database operations for submitted reports.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Create inserts a new report row and fills in the store-assigned ID.
func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	query, args, err := psql.
		Insert("reports").
		Columns("event_id", "booth_code", "staff_name", "report_label", "response", "timestamp").
		Values(report.EventID, report.BoothCode, report.StaffName, report.ReportLabel, report.Response, report.Timestamp).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for report: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&report.ID); err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	return nil
}

// ListByEvent retrieves all reports for an event, newest first.
func (r *ReportRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Report, error) {
	query, args, err := psql.
		Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"event_id": eventID}).
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByEvent query for reports: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		var report domain.Report
		err := rows.Scan(
			&report.ID,
			&report.EventID,
			&report.BoothCode,
			&report.StaffName,
			&report.ReportLabel,
			&report.Response,
			&report.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return reports, nil
}

// RankingEntry holds one label with its report count.
type RankingEntry struct {
	Label string
	Count int
}

// scanRanking scans (label, count) rows produced by the ranking queries.
func scanRanking(rows pgx.Rows) ([]RankingEntry, error) {
	defer rows.Close()

	var entries []RankingEntry
	for rows.Next() {
		var entry RankingEntry
		if err := rows.Scan(&entry.Label, &entry.Count); err != nil {
			return nil, fmt.Errorf("scan ranking entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ranking rows: %w", err)
	}
	return entries, nil
}

// VisitsByBooth counts reports per booth code for an event, most visited
// first.
func (r *ReportRepository) VisitsByBooth(ctx context.Context, eventID string) ([]RankingEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT booth_code, COUNT(*)
		FROM reports
		WHERE event_id = $1
		GROUP BY booth_code
		ORDER BY COUNT(*) DESC, booth_code ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query visits by booth: %w", err)
	}

	return scanRanking(rows)
}

// OccurrencesByLabel counts reports per report label for an event, skipping
// internal "__marker__" labels.
func (r *ReportRepository) OccurrencesByLabel(ctx context.Context, eventID string) ([]RankingEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT report_label, COUNT(*)
		FROM reports
		WHERE event_id = $1
		  AND NOT (report_label LIKE '\_\_%' AND report_label LIKE '%\_\_')
		GROUP BY report_label
		ORDER BY COUNT(*) DESC, report_label ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query occurrences by label: %w", err)
	}

	return scanRanking(rows)
}

// CompletionsByStaff counts reports per staff name for an event, most active
// first.
func (r *ReportRepository) CompletionsByStaff(ctx context.Context, eventID string) ([]RankingEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT staff_name, COUNT(*)
		FROM reports
		WHERE event_id = $1
		GROUP BY staff_name
		ORDER BY COUNT(*) DESC, staff_name ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query completions by staff: %w", err)
	}

	return scanRanking(rows)
}
