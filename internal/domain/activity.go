package domain

import (
	"regexp"
	"strings"
	"time"
)

// Reserved description prefixes that turn a generic activity into a
// task-lifecycle event. These strings are part of the wire format shared
// with existing log data and must not change.
const (
	PrefixTaskAssigned  = "Tarefa atribuída: "
	PrefixTaskCompleted = "Tarefa concluída: "
)

// DefaultTaskResponse is the report body used when a completed task has no
// details suffix in its description.
const DefaultTaskResponse = "Tarefa Concluída."

// Activity is an immutable, append-only log entry scoped to a staff member.
// State changes are represented by appending a new activity, never by
// mutating or deleting an existing one.
type Activity struct {
	ID          string
	StaffID     string
	Description string
	Timestamp   time.Time
}

// ActivityKind is the tagged classification of an activity description.
type ActivityKind int

const (
	ActivityUnrecognized ActivityKind = iota
	ActivityAssigned
	ActivityCompleted
)

// Classify matches the description against the reserved prefixes exactly
// once and returns the kind together with the core description (prefix
// stripped). Downstream code works with the returned variant and never
// re-matches the raw string.
func (a *Activity) Classify() (ActivityKind, string) {
	switch {
	case strings.HasPrefix(a.Description, PrefixTaskCompleted):
		return ActivityCompleted, strings.TrimPrefix(a.Description, PrefixTaskCompleted)
	case strings.HasPrefix(a.Description, PrefixTaskAssigned):
		return ActivityAssigned, strings.TrimPrefix(a.Description, PrefixTaskAssigned)
	default:
		return ActivityUnrecognized, a.Description
	}
}

// TaskKey identifies the same logical task across its assignment and
// completion entries: staff ID plus the prefix-stripped description.
func TaskKey(staffID, core string) string {
	return staffID + "::" + core
}

var taskDetailsRe = regexp.MustCompile(`(?s)Descrição: (.*)$`)

// ExtractTaskDetails returns the free-form details suffix of a task
// description (the text after "Descrição: ", newlines included), if present.
func ExtractTaskDetails(description string) (string, bool) {
	m := taskDetailsRe.FindStringSubmatch(description)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CompletionDescription derives the completion entry for an assignment by
// swapping the prefix. The core text is left untouched so the task key is
// preserved.
func CompletionDescription(assignment string) string {
	return strings.Replace(assignment, "Tarefa atribuída:", "Tarefa concluída:", 1)
}

// BuildAssignmentDescription renders a task assignment in the textual
// protocol understood by the reconciliation engine.
func BuildAssignmentDescription(actionLabel, companyName, boothCode, details string) string {
	var b strings.Builder
	b.WriteString(PrefixTaskAssigned)
	b.WriteString("Realizar '")
	b.WriteString(actionLabel)
	b.WriteString("' na empresa '")
	b.WriteString(companyName)
	b.WriteString("'")
	if boothCode != "" {
		b.WriteString(" [")
		b.WriteString(boothCode)
		b.WriteString("]")
	}
	if details != "" {
		b.WriteString(" Descrição: ")
		b.WriteString(details)
	}
	return b.String()
}
