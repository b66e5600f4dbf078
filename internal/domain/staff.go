package domain

import "time"

// Staff represents a booth staff member. Staff check in with their personal
// code and own the activity log entries keyed by their ID.
type Staff struct {
	ID                 string
	OrganizerCompanyID string
	Name               string
	PersonalCode       string
	Phone              *string
	DepartmentID       *string
	Role               *string
	CreatedAt          time.Time
}

// Department groups staff within an event.
type Department struct {
	ID      string
	EventID string
	Name    string
}
