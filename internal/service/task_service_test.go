package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expocheck/expocheck/internal/domain"
	"github.com/expocheck/expocheck/internal/service"
)

// fakeActivityStore is an in-memory ActivityStore. Activities append at the
// front so list calls return newest first, matching the store contract.
type fakeActivityStore struct {
	activities []*domain.Activity
	listErr    error
	appendErr  error
	nextID     int
}

func (f *fakeActivityStore) ListByStaff(_ context.Context, staffID string) ([]*domain.Activity, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Activity
	for _, activity := range f.activities {
		if activity.StaffID == staffID {
			out = append(out, activity)
		}
	}
	return out, nil
}

func (f *fakeActivityStore) ListByStaffIDs(_ context.Context, staffIDs []string) ([]*domain.Activity, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	wanted := make(map[string]struct{}, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = struct{}{}
	}
	var out []*domain.Activity
	for _, activity := range f.activities {
		if _, ok := wanted[activity.StaffID]; ok {
			out = append(out, activity)
		}
	}
	return out, nil
}

func (f *fakeActivityStore) Append(_ context.Context, staffID, description string, timestamp time.Time) (*domain.Activity, error) {
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	f.nextID++
	activity := &domain.Activity{
		ID:          fmt.Sprintf("act-%d", f.nextID),
		StaffID:     staffID,
		Description: description,
		Timestamp:   timestamp,
	}
	f.activities = append([]*domain.Activity{activity}, f.activities...)
	return activity, nil
}

type fakeReportStore struct {
	reports   []*domain.Report
	createErr error
}

func (f *fakeReportStore) Create(_ context.Context, report *domain.Report) error {
	if f.createErr != nil {
		return f.createErr
	}
	report.ID = fmt.Sprintf("report-%d", len(f.reports)+1)
	f.reports = append(f.reports, report)
	return nil
}

type fakeStaffDirectory struct {
	roster  []*domain.Staff
	listErr error
}

func (f *fakeStaffDirectory) ListByEvent(_ context.Context, _ string) ([]*domain.Staff, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.roster, nil
}

func newTaskService() (*service.TaskService, *fakeActivityStore, *fakeReportStore, *fakeStaffDirectory) {
	activities := &fakeActivityStore{}
	reports := &fakeReportStore{}
	staff := &fakeStaffDirectory{}
	return service.NewTaskService(activities, reports, staff), activities, reports, staff
}

func TestAssignTask_WireFormat(t *testing.T) {
	svc, activities, _, _ := newTaskService()
	ctx := context.Background()

	activity, err := svc.AssignTask(ctx, service.AssignTaskParams{
		StaffID:     "staff-1",
		ActionLabel: "Visita Técnica",
		CompanyName: "ACME Ltda",
		BoothCode:   "A-12",
		Details:     "levar o material",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Tarefa atribuída: Realizar 'Visita Técnica' na empresa 'ACME Ltda' [A-12] Descrição: levar o material",
		activity.Description,
	)
	require.Len(t, activities.activities, 1)
	assert.Equal(t, "staff-1", activities.activities[0].StaffID)
}

func TestAssignTask_Validation(t *testing.T) {
	svc, _, _, _ := newTaskService()
	ctx := context.Background()

	_, err := svc.AssignTask(ctx, service.AssignTaskParams{StaffID: "staff-1", CompanyName: "ACME"})
	assert.ErrorIs(t, err, domain.ErrEmptyActionLabel)

	_, err = svc.AssignTask(ctx, service.AssignTaskParams{StaffID: "staff-1", ActionLabel: "Visita"})
	assert.ErrorIs(t, err, domain.ErrEmptyCompanyName)
}

func TestAssignTask_AppendFailureSurfaces(t *testing.T) {
	svc, activities, _, _ := newTaskService()
	activities.appendErr = errors.New("connection refused")

	_, err := svc.AssignTask(context.Background(), service.AssignTaskParams{
		StaffID:     "staff-1",
		ActionLabel: "Visita",
		CompanyName: "ACME",
	})
	require.Error(t, err)
}

func TestPendingTasksForStaff(t *testing.T) {
	svc, _, _, _ := newTaskService()
	ctx := context.Background()

	_, err := svc.AssignTask(ctx, service.AssignTaskParams{
		StaffID: "staff-1", ActionLabel: "Primeira", CompanyName: "ACME", BoothCode: "A-1",
	})
	require.NoError(t, err)
	_, err = svc.AssignTask(ctx, service.AssignTaskParams{
		StaffID: "staff-1", ActionLabel: "Segunda", CompanyName: "Beta",
	})
	require.NoError(t, err)

	pending := svc.PendingTasksForStaff(ctx, "staff-1")
	require.Len(t, pending, 2)
	for _, task := range pending {
		assert.Equal(t, domain.TaskStatusPending, task.Status)
	}
}

func TestPendingTasksForStaff_ExcludesCompleted(t *testing.T) {
	svc, _, _, _ := newTaskService()
	ctx := context.Background()

	first, err := svc.AssignTask(ctx, service.AssignTaskParams{
		StaffID: "staff-1", ActionLabel: "Primeira", CompanyName: "ACME", BoothCode: "A-1",
	})
	require.NoError(t, err)
	_, err = svc.AssignTask(ctx, service.AssignTaskParams{
		StaffID: "staff-1", ActionLabel: "Segunda", CompanyName: "Beta",
	})
	require.NoError(t, err)

	err = svc.CompleteTask(ctx, service.CompleteTaskParams{
		StaffID:     "staff-1",
		Description: first.Description,
		EventID:     "event-1",
		BoothCode:   "A-1",
		StaffName:   "Ana",
		ActionLabel: "Primeira",
	})
	require.NoError(t, err)

	pending := svc.PendingTasksForStaff(ctx, "staff-1")
	require.Len(t, pending, 1)
	assert.Equal(t, "Segunda", pending[0].ActionLabel)
}

func TestPendingTasksForStaff_StoreFailureYieldsEmptyList(t *testing.T) {
	svc, activities, _, _ := newTaskService()
	activities.listErr = errors.New("connection refused")

	pending := svc.PendingTasksForStaff(context.Background(), "staff-1")
	require.NotNil(t, pending)
	assert.Empty(t, pending)
}

func TestCompleteTask_WritesActivityAndReport(t *testing.T) {
	svc, activities, reports, _ := newTaskService()
	ctx := context.Background()

	description := "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1] Descrição: levar o material"

	err := svc.CompleteTask(ctx, service.CompleteTaskParams{
		StaffID:     "staff-1",
		Description: description,
		EventID:     "event-1",
		BoothCode:   "A-1",
		StaffName:   "Ana",
		ActionLabel: "Visita",
	})
	require.NoError(t, err)

	require.Len(t, activities.activities, 1)
	assert.Equal(t,
		"Tarefa concluída: Realizar 'Visita' na empresa 'ACME' [A-1] Descrição: levar o material",
		activities.activities[0].Description,
	)

	require.Len(t, reports.reports, 1)
	report := reports.reports[0]
	assert.Equal(t, "event-1", report.EventID)
	assert.Equal(t, "A-1", report.BoothCode)
	assert.Equal(t, "Ana", report.StaffName)
	assert.Equal(t, "[TAREFA] Visita", report.ReportLabel)
	assert.Equal(t, "levar o material", report.Response)
}

func TestCompleteTask_DefaultResponseWithoutDetails(t *testing.T) {
	svc, _, reports, _ := newTaskService()

	err := svc.CompleteTask(context.Background(), service.CompleteTaskParams{
		StaffID:     "staff-1",
		Description: "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]",
		EventID:     "event-1",
		BoothCode:   "A-1",
		StaffName:   "Ana",
		ActionLabel: "Visita",
	})
	require.NoError(t, err)

	require.Len(t, reports.reports, 1)
	assert.Equal(t, domain.DefaultTaskResponse, reports.reports[0].Response)
}

func TestCompleteTask_ActivityFailureAbortsCommand(t *testing.T) {
	svc, activities, reports, _ := newTaskService()
	activities.appendErr = errors.New("connection refused")

	err := svc.CompleteTask(context.Background(), service.CompleteTaskParams{
		StaffID:     "staff-1",
		Description: "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]",
		EventID:     "event-1",
		BoothCode:   "A-1",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrReportNotRecorded)
	assert.Empty(t, reports.reports)
}

func TestCompleteTask_ReportFailureKeepsCompletion(t *testing.T) {
	svc, activities, reports, _ := newTaskService()
	reports.createErr = errors.New("insert failed")
	ctx := context.Background()

	description := "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]"

	err := svc.CompleteTask(ctx, service.CompleteTaskParams{
		StaffID:     "staff-1",
		Description: description,
		EventID:     "event-1",
		BoothCode:   "A-1",
		StaffName:   "Ana",
		ActionLabel: "Visita",
	})
	require.ErrorIs(t, err, domain.ErrReportNotRecorded)

	// The completion activity is durably written: the task no longer shows
	// as pending even though the report is missing.
	require.Len(t, activities.activities, 1)

	_, err = activities.Append(ctx, "staff-1", description, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	pending := svc.PendingTasksForStaff(ctx, "staff-1")
	assert.Empty(t, pending)
}

func TestAssignedTasksByEvent_FillsNamesAndSorts(t *testing.T) {
	svc, activities, _, staff := newTaskService()
	ctx := context.Background()

	staff.roster = []*domain.Staff{
		{ID: "staff-1", Name: "Ana"},
		{ID: "staff-2", Name: "Bruno"},
	}

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := activities.Append(ctx, "staff-1", "Tarefa atribuída: Realizar 'Primeira' na empresa 'ACME'", base)
	require.NoError(t, err)
	_, err = activities.Append(ctx, "staff-2", "Tarefa atribuída: Realizar 'Segunda' na empresa 'Beta'", base.Add(time.Hour))
	require.NoError(t, err)

	tasks := svc.AssignedTasksByEvent(ctx, "event-1")
	require.Len(t, tasks, 2)

	// Newest assignment first.
	assert.Equal(t, "Segunda", tasks[0].ActionLabel)
	assert.Equal(t, "Bruno", tasks[0].StaffName)
	assert.Equal(t, "Primeira", tasks[1].ActionLabel)
	assert.Equal(t, "Ana", tasks[1].StaffName)
}

func TestAssignedTasksByEvent_IncludesCompleted(t *testing.T) {
	svc, _, _, staff := newTaskService()
	ctx := context.Background()

	staff.roster = []*domain.Staff{{ID: "staff-1", Name: "Ana"}}

	assignment, err := svc.AssignTask(ctx, service.AssignTaskParams{
		StaffID: "staff-1", ActionLabel: "Visita", CompanyName: "ACME", BoothCode: "A-1",
	})
	require.NoError(t, err)

	err = svc.CompleteTask(ctx, service.CompleteTaskParams{
		StaffID:     "staff-1",
		Description: assignment.Description,
		EventID:     "event-1",
		BoothCode:   "A-1",
		StaffName:   "Ana",
		ActionLabel: "Visita",
	})
	require.NoError(t, err)

	tasks := svc.AssignedTasksByEvent(ctx, "event-1")
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.TaskStatusCompleted, tasks[0].Status)
}

func TestAssignedTasksByEvent_EmptyRoster(t *testing.T) {
	svc, _, _, _ := newTaskService()

	tasks := svc.AssignedTasksByEvent(context.Background(), "event-1")
	require.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestAssignedTasksByEvent_RosterFailureYieldsEmptyList(t *testing.T) {
	svc, _, _, staff := newTaskService()
	staff.listErr = errors.New("connection refused")

	tasks := svc.AssignedTasksByEvent(context.Background(), "event-1")
	require.NotNil(t, tasks)
	assert.Empty(t, tasks)
}
