package domain

import "time"

// Role is the per-league membership role.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanManageLeague reports whether the role may mint/revoke invites and
// manage members.
func (r Role) CanManageLeague() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Membership is the durable (league, user) relationship. A user belongs to
// a league at most once; team names are unique per league, case-insensitive,
// among non-nil values.
type Membership struct {
	LeagueID  string
	UserID    string
	Role      Role
	TeamName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
