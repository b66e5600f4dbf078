package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/expocheck/expocheck/internal/domain"
)

// ActivityStore is the append-only activity log the task engine reads from
// and writes to. List methods must return activities newest first.
type ActivityStore interface {
	ListByStaff(ctx context.Context, staffID string) ([]*domain.Activity, error)
	ListByStaffIDs(ctx context.Context, staffIDs []string) ([]*domain.Activity, error)
	Append(ctx context.Context, staffID, description string, timestamp time.Time) (*domain.Activity, error)
}

// ReportStore persists submitted reports.
type ReportStore interface {
	Create(ctx context.Context, report *domain.Report) error
}

// StaffDirectory resolves the staff roster of an event.
type StaffDirectory interface {
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Staff, error)
}

// unknownStaffName is shown when an activity references a staff member that
// is no longer in the roster.
const unknownStaffName = "Desconhecido"

// TaskService derives task state from the activity log and executes the
// completion command. It holds no state of its own: every read recomputes
// the view from a fresh log snapshot.
type TaskService struct {
	activities ActivityStore
	reports    ReportStore
	staff      StaffDirectory
}

// NewTaskService creates a new TaskService.
func NewTaskService(activities ActivityStore, reports ReportStore, staff StaffDirectory) *TaskService {
	return &TaskService{
		activities: activities,
		reports:    reports,
		staff:      staff,
	}
}

// PendingTasksForStaff returns the outstanding tasks for one staff member,
// in first-seen assignment order. Staff names are not filled in; the caller
// already knows whose tasks it asked for.
//
// Reads fail soft: a store error yields an empty list and a log entry rather
// than an error, so the staff-facing task list stays usable through
// transient outages, at the cost of hiding tasks while the store is down.
func (s *TaskService) PendingTasksForStaff(ctx context.Context, staffID string) []*domain.AssignedTask {
	activities, err := s.activities.ListByStaff(ctx, staffID)
	if err != nil {
		slog.Error("failed to fetch activities for staff tasks",
			"staff_id", staffID,
			"error", err,
		)
		return []*domain.AssignedTask{}
	}

	pending := make([]*domain.AssignedTask, 0)
	for _, task := range Reconcile(activities) {
		if task.Status == domain.TaskStatusPending {
			pending = append(pending, task)
		}
	}
	return pending
}

// AssignedTasksByEvent returns every derived task for an event's staff
// roster, completed ones included, sorted newest first with staff names
// filled in. Same read-soft-fail policy as PendingTasksForStaff.
func (s *TaskService) AssignedTasksByEvent(ctx context.Context, eventID string) []*domain.AssignedTask {
	roster, err := s.staff.ListByEvent(ctx, eventID)
	if err != nil {
		slog.Error("failed to fetch staff roster for event tasks",
			"event_id", eventID,
			"error", err,
		)
		return []*domain.AssignedTask{}
	}
	if len(roster) == 0 {
		return []*domain.AssignedTask{}
	}

	names := make(map[string]string, len(roster))
	staffIDs := make([]string, 0, len(roster))
	for _, staff := range roster {
		names[staff.ID] = staff.Name
		staffIDs = append(staffIDs, staff.ID)
	}

	activities, err := s.activities.ListByStaffIDs(ctx, staffIDs)
	if err != nil {
		slog.Error("failed to fetch activities for event tasks",
			"event_id", eventID,
			"error", err,
		)
		return []*domain.AssignedTask{}
	}

	tasks := Reconcile(activities)
	for _, task := range tasks {
		if name, ok := names[task.StaffID]; ok {
			task.StaffName = name
		} else {
			task.StaffName = unknownStaffName
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Timestamp.After(tasks[j].Timestamp)
	})

	return tasks
}

// AssignTaskParams holds the inputs for assigning a task to a staff member.
type AssignTaskParams struct {
	StaffID     string
	ActionLabel string
	CompanyName string
	BoothCode   string
	Details     string
}

// AssignTask appends an assignment activity in the textual task protocol.
// Write failures surface to the caller.
func (s *TaskService) AssignTask(ctx context.Context, p AssignTaskParams) (*domain.Activity, error) {
	if p.ActionLabel == "" {
		return nil, domain.ErrEmptyActionLabel
	}
	if p.CompanyName == "" {
		return nil, domain.ErrEmptyCompanyName
	}

	description := domain.BuildAssignmentDescription(p.ActionLabel, p.CompanyName, p.BoothCode, p.Details)

	activity, err := s.activities.Append(ctx, p.StaffID, description, time.Now())
	if err != nil {
		return nil, fmt.Errorf("append assignment activity: %w", err)
	}

	slog.Info("task assigned",
		"staff_id", p.StaffID,
		"activity_id", activity.ID,
		"action_label", p.ActionLabel,
	)

	return activity, nil
}

// CompleteTaskParams holds the inputs for the completion command.
// Description is the original assignment description, prefix included.
type CompleteTaskParams struct {
	StaffID     string
	Description string
	EventID     string
	BoothCode   string
	StaffName   string
	ActionLabel string
}

// CompleteTask marks a task complete as a two-step write.
//
// Step 1 appends a completion activity (assignment prefix swapped, core text
// unchanged so the task key is preserved). If it fails the command fails and
// the task stays Pending.
//
// Step 2 appends the audit report. If it fails the error is surfaced as
// ErrReportNotRecorded, but step 1 is not rolled back: the task is durably
// Completed with the report missing. Callers must not blindly retry the
// whole command on that error; a retry appends a redundant completion with
// the same key.
func (s *TaskService) CompleteTask(ctx context.Context, p CompleteTaskParams) error {
	completion := domain.CompletionDescription(p.Description)

	activity, err := s.activities.Append(ctx, p.StaffID, completion, time.Now())
	if err != nil {
		return fmt.Errorf("append completion activity: %w", err)
	}

	response, ok := domain.ExtractTaskDetails(p.Description)
	if !ok {
		response = domain.DefaultTaskResponse
	}

	report := &domain.Report{
		EventID:     p.EventID,
		BoothCode:   p.BoothCode,
		StaffName:   p.StaffName,
		ReportLabel: "[TAREFA] " + p.ActionLabel,
		Response:    response,
		Timestamp:   time.Now(),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		slog.Error("task completion recorded but report write failed",
			"staff_id", p.StaffID,
			"activity_id", activity.ID,
			"error", err,
		)
		return fmt.Errorf("%w: %v", domain.ErrReportNotRecorded, err)
	}

	slog.Info("task completed",
		"staff_id", p.StaffID,
		"activity_id", activity.ID,
		"report_id", report.ID,
	)

	return nil
}
