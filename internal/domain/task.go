package domain

import (
	"regexp"
	"strings"
	"time"
)

// TaskStatus is the derived status of an assigned task. It is computed from
// the activity log on every read and never persisted.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// Task description grammar, checked in order. The character classes stop at
// the first closing quote or bracket, so quotes and brackets embedded in
// action or company names are not supported. That matches the existing log
// data; see DESIGN.md before changing it.
var (
	taskWithBoothRe = regexp.MustCompile(`Realizar '([^']+)' na empresa '([^']+)' \[([^\]]+)\]`)
	taskRe          = regexp.MustCompile(`Realizar '([^']+)' na empresa '([^']+)'`)
)

// TaskFields is the structured identity parsed out of a task description.
type TaskFields struct {
	ActionLabel string
	CompanyName string
	BoothCode   *string
}

// ParseTaskDescription parses a core description (prefix already stripped)
// into structured task fields. It is a pure function: the second return is
// false when the text matches neither grammar form, and such descriptions
// never surface as tasks.
func ParseTaskDescription(core string) (TaskFields, bool) {
	if m := taskWithBoothRe.FindStringSubmatch(core); m != nil {
		code := strings.TrimSpace(m[3])
		return TaskFields{
			ActionLabel: strings.TrimSpace(m[1]),
			CompanyName: strings.TrimSpace(m[2]),
			BoothCode:   &code,
		}, true
	}
	if m := taskRe.FindStringSubmatch(core); m != nil {
		return TaskFields{
			ActionLabel: strings.TrimSpace(m[1]),
			CompanyName: strings.TrimSpace(m[2]),
		}, true
	}
	return TaskFields{}, false
}

// AssignedTask is a read-only view derived from the activity log. Its ID is
// the id of the assignment activity, and its timestamp is the assignment
// timestamp even after completion.
type AssignedTask struct {
	ID          string
	StaffID     string
	StaffName   string
	CompanyName string
	BoothCode   *string
	ActionLabel string
	Description string
	Timestamp   time.Time
	Status      TaskStatus
}
