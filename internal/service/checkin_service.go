package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/expocheck/expocheck/internal/domain"
	"github.com/expocheck/expocheck/internal/repository"
	"github.com/expocheck/expocheck/internal/webhook"
)

// CheckinResult bundles everything a booth session needs after a successful
// check-in.
type CheckinResult struct {
	Staff   *domain.Staff
	Event   *domain.Event
	Company *domain.ParticipantCompany
}

// CheckinService validates booth check-ins and forwards sales check-ins.
type CheckinService struct {
	companyRepo *repository.CompanyRepository
	staffRepo   *repository.StaffRepository
	eventRepo   *repository.EventRepository
	activities  ActivityStore
	salesHook   *webhook.Client
}

// NewCheckinService creates a new CheckinService.
func NewCheckinService(
	companyRepo *repository.CompanyRepository,
	staffRepo *repository.StaffRepository,
	eventRepo *repository.EventRepository,
	activities ActivityStore,
	salesHook *webhook.Client,
) *CheckinService {
	return &CheckinService{
		companyRepo: companyRepo,
		staffRepo:   staffRepo,
		eventRepo:   eventRepo,
		activities:  activities,
		salesHook:   salesHook,
	}
}

// ValidateCheckin resolves a booth code and personal code into a check-in
// session. Codes are matched case-insensitively by upper-casing the input.
func (s *CheckinService) ValidateCheckin(ctx context.Context, boothCode, personalCode string) (*CheckinResult, error) {
	company, err := s.companyRepo.GetByBoothCode(ctx, strings.ToUpper(boothCode))
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.GetByPersonalCode(ctx, strings.ToUpper(personalCode))
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, company.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsActive {
		return nil, domain.ErrEventInactive
	}

	if event.OrganizerCompanyID != staff.OrganizerCompanyID {
		return nil, domain.ErrEventMismatch
	}

	return &CheckinResult{Staff: staff, Event: event, Company: company}, nil
}

// SalesCheckinParams holds the inputs for a sales check-in.
type SalesCheckinParams struct {
	StaffID     string
	CompanyName string
	BoothCode   string
	Payload     map[string]any
}

// SalesCheckin forwards the payload to the configured sales webhook and then
// logs an activity for the staff member. The webhook is the primary action:
// its failure fails the command. The activity append is best effort; a
// failure there is logged and swallowed because the webhook already
// succeeded.
func (s *CheckinService) SalesCheckin(ctx context.Context, p SalesCheckinParams) error {
	if err := s.salesHook.Send(ctx, p.Payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWebhookFailed, err)
	}

	description := fmt.Sprintf("Realizou Check-in de Vendas para %s (%s)", p.CompanyName, p.BoothCode)
	if _, err := s.activities.Append(ctx, p.StaffID, description, time.Now()); err != nil {
		slog.Error("failed to log sales check-in activity",
			"staff_id", p.StaffID,
			"error", err,
		)
	}

	return nil
}
