package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expocheck/expocheck/internal/domain"
)

func TestActivityClassify(t *testing.T) {
	tests := []struct {
		name        string
		description string
		kind        domain.ActivityKind
		core        string
	}{
		{
			name:        "assigned",
			description: "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]",
			kind:        domain.ActivityAssigned,
			core:        "Realizar 'Visita' na empresa 'ACME' [A-1]",
		},
		{
			name:        "completed",
			description: "Tarefa concluída: Realizar 'Visita' na empresa 'ACME' [A-1]",
			kind:        domain.ActivityCompleted,
			core:        "Realizar 'Visita' na empresa 'ACME' [A-1]",
		},
		{
			name:        "unrecognized",
			description: "Realizou Check-in de Vendas para ACME (A-1)",
			kind:        domain.ActivityUnrecognized,
			core:        "Realizou Check-in de Vendas para ACME (A-1)",
		},
		{
			name:        "prefix requires trailing space",
			description: "Tarefa atribuída:Realizar 'Visita' na empresa 'ACME'",
			kind:        domain.ActivityUnrecognized,
			core:        "Tarefa atribuída:Realizar 'Visita' na empresa 'ACME'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity := &domain.Activity{Description: tt.description}

			kind, core := activity.Classify()
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.core, core)
		})
	}
}

func TestTaskKey(t *testing.T) {
	key := domain.TaskKey("staff-1", "Realizar 'Visita' na empresa 'ACME'")
	assert.Equal(t, "staff-1::Realizar 'Visita' na empresa 'ACME'", key)

	// Same core text under different staff must not collide.
	other := domain.TaskKey("staff-2", "Realizar 'Visita' na empresa 'ACME'")
	assert.NotEqual(t, key, other)
}

func TestExtractTaskDetails(t *testing.T) {
	details, ok := domain.ExtractTaskDetails(
		"Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1] Descrição: levar o material",
	)
	require.True(t, ok)
	assert.Equal(t, "levar o material", details)
}

func TestExtractTaskDetails_Multiline(t *testing.T) {
	details, ok := domain.ExtractTaskDetails(
		"Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' Descrição: primeira linha\nsegunda linha",
	)
	require.True(t, ok)
	assert.Equal(t, "primeira linha\nsegunda linha", details)
}

func TestExtractTaskDetails_Absent(t *testing.T) {
	_, ok := domain.ExtractTaskDetails("Tarefa atribuída: Realizar 'Visita' na empresa 'ACME'")
	assert.False(t, ok)
}

func TestCompletionDescription(t *testing.T) {
	assignment := "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]"

	completion := domain.CompletionDescription(assignment)
	assert.Equal(t, "Tarefa concluída: Realizar 'Visita' na empresa 'ACME' [A-1]", completion)

	// The core text is untouched so assignment and completion share a key.
	_, assignedCore := (&domain.Activity{Description: assignment}).Classify()
	_, completedCore := (&domain.Activity{Description: completion}).Classify()
	assert.Equal(t, assignedCore, completedCore)
}

func TestBuildAssignmentDescription(t *testing.T) {
	tests := []struct {
		name     string
		booth    string
		details  string
		expected string
	}{
		{
			name:     "full",
			booth:    "A-1",
			details:  "levar o material",
			expected: "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1] Descrição: levar o material",
		},
		{
			name:     "no details",
			booth:    "A-1",
			expected: "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' [A-1]",
		},
		{
			name:     "no booth",
			details:  "levar o material",
			expected: "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME' Descrição: levar o material",
		},
		{
			name:     "minimal",
			expected: "Tarefa atribuída: Realizar 'Visita' na empresa 'ACME'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.BuildAssignmentDescription("Visita", "ACME", tt.booth, tt.details)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildAssignmentDescription_RoundTrip(t *testing.T) {
	description := domain.BuildAssignmentDescription("Visita Técnica", "ACME Ltda", "A-12", "detalhes aqui")

	activity := &domain.Activity{Description: description}
	kind, core := activity.Classify()
	require.Equal(t, domain.ActivityAssigned, kind)

	fields, ok := domain.ParseTaskDescription(core)
	require.True(t, ok)
	assert.Equal(t, "Visita Técnica", fields.ActionLabel)
	assert.Equal(t, "ACME Ltda", fields.CompanyName)
	require.NotNil(t, fields.BoothCode)
	assert.Equal(t, "A-12", *fields.BoothCode)

	details, ok := domain.ExtractTaskDetails(description)
	require.True(t, ok)
	assert.Equal(t, "detalhes aqui", details)
}

func TestIsInternalLabel(t *testing.T) {
	assert.True(t, domain.IsInternalLabel("__checkin__"))
	assert.False(t, domain.IsInternalLabel("[TAREFA] Visita"))
	assert.False(t, domain.IsInternalLabel("__"))
	assert.False(t, domain.IsInternalLabel("__open"))
}
