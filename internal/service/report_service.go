package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/expocheck/expocheck/internal/domain"
	"github.com/expocheck/expocheck/internal/repository"
)

// RankingBy selects which grouping a ranking query uses.
type RankingBy string

const (
	RankingByBooth RankingBy = "booth"
	RankingByLabel RankingBy = "label"
	RankingByStaff RankingBy = "staff"
)

// ErrInvalidRankingBy is returned for an unknown ranking grouping.
var ErrInvalidRankingBy = errors.New("invalid ranking grouping")

// ReportService handles report submission and ranking aggregation.
type ReportService struct {
	reportRepo  *repository.ReportRepository
	companyRepo *repository.CompanyRepository
	buttonRepo  *repository.ButtonRepository
	activities  ActivityStore
}

// NewReportService creates a new ReportService.
func NewReportService(
	reportRepo *repository.ReportRepository,
	companyRepo *repository.CompanyRepository,
	buttonRepo *repository.ButtonRepository,
	activities ActivityStore,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		companyRepo: companyRepo,
		buttonRepo:  buttonRepo,
		activities:  activities,
	}
}

// SubmitReportParams holds the inputs for a report submission.
type SubmitReportParams struct {
	EventID     string
	BoothCode   string
	StaffID     string
	StaffName   string
	ReportLabel string
	Response    string
}

// SubmitReport persists the report and then logs a generic activity for the
// submitting staff member. The activity append is best effort: the report is
// the primary record and its insert already succeeded.
func (s *ReportService) SubmitReport(ctx context.Context, p SubmitReportParams) (*domain.Report, error) {
	report := &domain.Report{
		EventID:     p.EventID,
		BoothCode:   p.BoothCode,
		StaffName:   p.StaffName,
		ReportLabel: p.ReportLabel,
		Response:    p.Response,
		Timestamp:   time.Now(),
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	if p.StaffID != "" {
		description := fmt.Sprintf("Registrou '%s' para %s", p.ReportLabel, p.BoothCode)
		if _, err := s.activities.Append(ctx, p.StaffID, description, time.Now()); err != nil {
			slog.Error("failed to log report activity",
				"staff_id", p.StaffID,
				"report_id", report.ID,
				"error", err,
			)
		}
	}

	return report, nil
}

// ButtonsForBooth returns the report buttons configured for a booth.
func (s *ReportService) ButtonsForBooth(ctx context.Context, boothCode string) ([]*domain.ReportButton, error) {
	company, err := s.companyRepo.GetByBoothCode(ctx, boothCode)
	if err != nil {
		return nil, err
	}

	return s.buttonRepo.ListByIDs(ctx, company.ButtonIDs)
}

// ReportsByEvent lists all reports submitted for an event.
func (s *ReportService) ReportsByEvent(ctx context.Context, eventID string) ([]*domain.Report, error) {
	return s.reportRepo.ListByEvent(ctx, eventID)
}

// Ranking aggregates report counts for an event. Booth rankings resolve
// booth codes to company names where possible.
func (s *ReportService) Ranking(ctx context.Context, eventID string, by RankingBy) ([]repository.RankingEntry, error) {
	switch by {
	case RankingByBooth:
		entries, err := s.reportRepo.VisitsByBooth(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return s.resolveBoothNames(ctx, eventID, entries), nil
	case RankingByLabel:
		return s.reportRepo.OccurrencesByLabel(ctx, eventID)
	case RankingByStaff:
		return s.reportRepo.CompletionsByStaff(ctx, eventID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRankingBy, by)
	}
}

// resolveBoothNames swaps booth codes for company names in ranking labels.
// A failed company lookup leaves the raw codes in place.
func (s *ReportService) resolveBoothNames(ctx context.Context, eventID string, entries []repository.RankingEntry) []repository.RankingEntry {
	companies, err := s.companyRepo.ListByEvent(ctx, eventID)
	if err != nil {
		slog.Error("failed to resolve booth names for ranking",
			"event_id", eventID,
			"error", err,
		)
		return entries
	}

	names := make(map[string]string, len(companies))
	for _, company := range companies {
		names[company.BoothCode] = company.Name
	}

	for i, entry := range entries {
		if name, ok := names[entry.Label]; ok {
			entries[i].Label = name
		}
	}
	return entries
}
