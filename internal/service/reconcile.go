package service

import (
	"github.com/expocheck/expocheck/internal/domain"
)

// assignment is the assignment-of-record for one task key during a scan.
type assignment struct {
	activity *domain.Activity
	core     string
}

// Reconcile folds an activity log snapshot into the set of derived tasks.
//
// The input must be ordered newest first (the repository contract): the scan
// keeps the first assignment seen per key, so newest-first input makes the
// most recent assignment with a given text the assignment-of-record. A
// completion with a matching key marks the task Completed no matter where it
// sits in the sequence, because completions are collected for the whole
// snapshot before assignments are resolved.
//
// Assignments whose core description does not parse are dropped; activities
// without a recognized prefix are ignored entirely. The result preserves the
// insertion order of first-seen assignments.
func Reconcile(activities []*domain.Activity) []*domain.AssignedTask {
	completed := make(map[string]struct{})
	assigned := make(map[string]assignment)
	var order []string

	for _, activity := range activities {
		kind, core := activity.Classify()
		key := domain.TaskKey(activity.StaffID, core)

		switch kind {
		case domain.ActivityCompleted:
			completed[key] = struct{}{}
		case domain.ActivityAssigned:
			if _, seen := assigned[key]; !seen {
				assigned[key] = assignment{activity: activity, core: core}
				order = append(order, key)
			}
		}
	}

	tasks := make([]*domain.AssignedTask, 0, len(order))
	for _, key := range order {
		record := assigned[key]
		fields, ok := domain.ParseTaskDescription(record.core)
		if !ok {
			continue
		}

		status := domain.TaskStatusPending
		if _, done := completed[key]; done {
			status = domain.TaskStatusCompleted
		}

		tasks = append(tasks, &domain.AssignedTask{
			ID:          record.activity.ID,
			StaffID:     record.activity.StaffID,
			CompanyName: fields.CompanyName,
			BoothCode:   fields.BoothCode,
			ActionLabel: fields.ActionLabel,
			Description: record.activity.Description,
			Timestamp:   record.activity.Timestamp,
			Status:      status,
		})
	}

	return tasks
}
