package domain

import "time"

// User is an administrative account (master admin or event organizer).
// Authentication for the admin API uses the bearer token.
type User struct {
	ID        string
	Name      string
	Email     string
	Token     string
	IsMaster  bool
	EventID   *string
	CreatedAt time.Time
}
