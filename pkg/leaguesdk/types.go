package leaguesdk

import "time"

// League is a competition that users join by invite.
type League struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLeagueRequest creates a league owned by the caller.
type CreateLeagueRequest struct {
	Name string `json:"name"`
}

// Invite is the administrative view of an invite. Email is only visible to
// league owners and admins; it never appears in public previews.
type Invite struct {
	ID        string     `json:"id"`
	LeagueID  string     `json:"league_id"`
	Email     string     `json:"email,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UseCount  int        `json:"use_count"`
	State     string     `json:"state"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// MintInviteRequest mints a single invite.
// An empty Email produces an open (shareable) invite link.
type MintInviteRequest struct {
	// Email targets the invite at one address. Optional.
	Email string `json:"email,omitempty"`

	// ExpiresIn is the invite lifetime in seconds. 0 means no expiry.
	ExpiresIn int `json:"expires_in,omitempty"`

	// MaxUses caps redemptions. nil defaults to 1 for targeted invites and
	// unlimited for open invites.
	MaxUses *int `json:"max_uses,omitempty"`
}

// MintInviteResponse carries the invite plus the raw token. The token is
// shown exactly once; only its fingerprint is stored server-side.
type MintInviteResponse struct {
	Invite    Invite `json:"invite"`
	Token     string `json:"token"`
	AcceptURL string `json:"accept_url,omitempty"`
}

// BulkMintRequest mints targeted invites for a blob of addresses separated
// by commas, semicolons, newlines or whitespace.
type BulkMintRequest struct {
	Addresses string `json:"addresses"`

	// ExpiresIn is the lifetime in seconds applied to every minted invite.
	ExpiresIn int `json:"expires_in,omitempty"`
}

// BulkMintedInvite is one successfully minted invite from a bulk request.
type BulkMintedInvite struct {
	Email     string `json:"email"`
	InviteID  string `json:"invite_id"`
	Token     string `json:"token"`
	AcceptURL string `json:"accept_url,omitempty"`
}

// BulkMintResponse reports the outcome of a bulk mint. Skipped lists
// addresses that already had an open invite for the league.
type BulkMintResponse struct {
	Created []BulkMintedInvite `json:"created"`
	Skipped []string           `json:"skipped,omitempty"`
}

// InvitePreview is the public, unauthenticated projection of an invite.
// Targeted reports whether the invite is address-bound without revealing
// the address.
type InvitePreview struct {
	LeagueID   string     `json:"league_id"`
	LeagueName string     `json:"league_name"`
	Targeted   bool       `json:"targeted"`
	State      string     `json:"state"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// AcceptInviteRequest redeems an invite, optionally setting a team name in
// the same step.
type AcceptInviteRequest struct {
	TeamName string `json:"team_name,omitempty"`
}

// Membership is a user's row in a league.
type Membership struct {
	LeagueID string    `json:"league_id"`
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	TeamName *string   `json:"team_name,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}

// UpdateRoleRequest changes a member's role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// SetTeamNameRequest sets the caller's team name in a league.
type SetTeamNameRequest struct {
	TeamName string `json:"team_name"`
}

// TeamNameAvailability reports whether a name is free in a league.
type TeamNameAvailability struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// HealthResponse is the body of /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
