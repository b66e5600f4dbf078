package domain

import "time"

// ParticipantCompany is an exhibitor with a booth at an event. The booth
// code is the public identifier staff type in at check-in.
type ParticipantCompany struct {
	ID          string
	EventID     string
	Name        string
	BoothCode   string
	Responsible string
	Contact     string
	ButtonIDs   []string
	CreatedAt   time.Time
}
