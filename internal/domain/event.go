package domain

import "time"

// Event is a fair or exhibition run by one organizer company. Inactive
// events reject check-ins.
type Event struct {
	ID                 string
	Name               string
	Date               string
	Details            string
	OrganizerCompanyID string
	IsActive           bool
	CreatedAt          time.Time
}

// OrganizerCompany runs events and employs the staff roster.
type OrganizerCompany struct {
	ID                 string
	Name               string
	ResponsibleName    string
	ResponsibleContact string
}
