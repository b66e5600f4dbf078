package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expocheck/expocheck/internal/domain"
	"github.com/expocheck/expocheck/internal/service"
)

var reconcileBase = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// act builds a log entry; offset counts minutes before the base time, so a
// larger offset means an older activity. Callers list activities newest
// first, matching the repository ordering contract.
func act(id, staffID, description string, offset int) *domain.Activity {
	return &domain.Activity{
		ID:          id,
		StaffID:     staffID,
		Description: description,
		Timestamp:   reconcileBase.Add(-time.Duration(offset) * time.Minute),
	}
}

func TestReconcile_SingleAssignment(t *testing.T) {
	tasks := service.Reconcile([]*domain.Activity{
		act("a1", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]", 0),
	})

	require.Len(t, tasks, 1)
	assert.Equal(t, "a1", tasks[0].ID)
	assert.Equal(t, "staff-1", tasks[0].StaffID)
	assert.Equal(t, "Visita", tasks[0].ActionLabel)
	assert.Equal(t, "ACME", tasks[0].CompanyName)
	require.NotNil(t, tasks[0].BoothCode)
	assert.Equal(t, "A-1", *tasks[0].BoothCode)
	assert.Equal(t, domain.TaskStatusPending, tasks[0].Status)
}

func TestReconcile_CompletionMarksTask(t *testing.T) {
	tasks := service.Reconcile([]*domain.Activity{
		act("a2", "staff-1", "Tarefa concluída: Realizar 'Visita' na empresa 'ACME' [A-1]", 0),
		act("a1", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]", 10),
	})

	require.Len(t, tasks, 1)
	assert.Equal(t, "a1", tasks[0].ID)
	assert.Equal(t, domain.TaskStatusCompleted, tasks[0].Status)
	// The derived task keeps the assignment's timestamp, not the completion's.
	assert.Equal(t, reconcileBase.Add(-10*time.Minute), tasks[0].Timestamp)
}

func TestReconcile_NewestAssignmentWins(t *testing.T) {
	// Two assignments with identical text: the newer one (first in the
	// snapshot) is the assignment-of-record.
	tasks := service.Reconcile([]*domain.Activity{
		act("a2", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]", 0),
		act("a1", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]", 60),
	})

	require.Len(t, tasks, 1)
	assert.Equal(t, "a2", tasks[0].ID)
	assert.Equal(t, reconcileBase, tasks[0].Timestamp)
}

func TestReconcile_CompletionPositionDoesNotMatter(t *testing.T) {
	// A completion older than a later re-assignment with the same text still
	// marks the task: completions are collected over the whole snapshot.
	tasks := service.Reconcile([]*domain.Activity{
		act("a3", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]", 0),
		act("a2", "staff-1", "Tarefa concluída: Realizar 'Visita' na empresa 'ACME' [A-1]", 30),
		act("a1", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]", 60),
	})

	require.Len(t, tasks, 1)
	assert.Equal(t, "a3", tasks[0].ID)
	assert.Equal(t, domain.TaskStatusCompleted, tasks[0].Status)
}

func TestReconcile_DistinctTasksPerStaff(t *testing.T) {
	// Same description for two staff members: two independent tasks, and
	// staff-2's completion does not leak onto staff-1.
	tasks := service.Reconcile([]*domain.Activity{
		act("a3", "staff-2", "Tarefa concluída: Realizar 'Visita' na empresa 'ACME' [A-1]", 0),
		act("a2", "staff-2", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]", 10),
		act("a1", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]", 20),
	})

	require.Len(t, tasks, 2)

	byStaff := map[string]domain.TaskStatus{}
	for _, task := range tasks {
		byStaff[task.StaffID] = task.Status
	}
	assert.Equal(t, domain.TaskStatusCompleted, byStaff["staff-2"])
	assert.Equal(t, domain.TaskStatusPending, byStaff["staff-1"])
}

func TestReconcile_UnparseableAssignmentDropped(t *testing.T) {
	tasks := service.Reconcile([]*domain.Activity{
		act("a2", "staff-1", "Tarefa atribuída: ajustar o estande quando puder", 0),
		act("a1", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME'", 10),
	})

	require.Len(t, tasks, 1)
	assert.Equal(t, "a1", tasks[0].ID)
}

func TestReconcile_UnrecognizedActivitiesIgnored(t *testing.T) {
	tasks := service.Reconcile([]*domain.Activity{
		act("a3", "staff-1", "Realizou Check-in de Vendas para ACME (A-1)", 0),
		act("a2", "staff-1", "Registrou 'Ocorrência' para A-1", 5),
		act("a1", "staff-1", "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME'", 10),
	})

	require.Len(t, tasks, 1)
	assert.Equal(t, "a1", tasks[0].ID)
}

func TestReconcile_OrphanCompletionYieldsNothing(t *testing.T) {
	tasks := service.Reconcile([]*domain.Activity{
		act("a1", "staff-1", "Tarefa concluída: Realizar 'Visita' na empresa 'ACME'", 0),
	})

	assert.Empty(t, tasks)
}

func TestReconcile_PreservesFirstSeenOrder(t *testing.T) {
	tasks := service.Reconcile([]*domain.Activity{
		act("a3", "staff-1", "Tarefa atribuída: Realizar 'Terceira' na empresa 'ACME'", 0),
		act("a2", "staff-1", "Tarefa atribuída: Realizar 'Segunda' na empresa 'ACME'", 10),
		act("a1", "staff-1", "Tarefa atribuída: Realizar 'Primeira' na empresa 'ACME'", 20),
	})

	require.Len(t, tasks, 3)
	assert.Equal(t, "Terceira", tasks[0].ActionLabel)
	assert.Equal(t, "Segunda", tasks[1].ActionLabel)
	assert.Equal(t, "Primeira", tasks[2].ActionLabel)
}

func TestReconcile_EmptyLog(t *testing.T) {
	assert.Empty(t, service.Reconcile(nil))
	assert.Empty(t, service.Reconcile([]*domain.Activity{}))
}
