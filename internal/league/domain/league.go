package domain

import "time"

// League is the owning container for invites and memberships.
type League struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
