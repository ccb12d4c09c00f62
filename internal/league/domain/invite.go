package domain

import "time"

// InviteState is the derived lifecycle state of an invite. Only OPEN invites
// are stored as such; the terminal states fall out of the timestamp and
// counter fields.
type InviteState string

const (
	InviteStateOpen     InviteState = "open"
	InviteStateConsumed InviteState = "consumed"
	InviteStateExpired  InviteState = "expired"
	InviteStateRevoked  InviteState = "revoked"
)

// Invite is a tokenized capability granting a bounded number of league
// memberships. The raw token is never stored; only its fingerprint is.
type Invite struct {
	ID        string
	TokenHash string
	LeagueID  string
	CreatedBy string

	// Email is the normalized (lowercased) target address. Empty means an
	// open invite that any authenticated user may consume.
	Email string

	// MaxUses bounds consumption. Nil means unlimited (open links only);
	// targeted invites default to 1.
	MaxUses  *int
	UseCount int

	ExpiresAt  *time.Time // nil = never expires
	ConsumedAt *time.Time // set on the first consumption, immutable after
	ConsumedBy string
	RevokedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the invite has no target address.
func (i Invite) IsOpen() bool { return i.Email == "" }

// IsExpired evaluates expiry live against now; expiration is never stored.
func (i Invite) IsExpired(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}

// IsExhausted reports whether every allowed use has been consumed.
func (i Invite) IsExhausted() bool {
	return i.MaxUses != nil && i.UseCount >= *i.MaxUses
}

// State derives the lifecycle state. Precedence: an explicit revocation
// outranks everything, and a prior successful consumption outranks a
// passive expiry.
func (i Invite) State(now time.Time) InviteState {
	switch {
	case i.RevokedAt != nil:
		return InviteStateRevoked
	case i.IsExhausted():
		return InviteStateConsumed
	case i.IsExpired(now):
		return InviteStateExpired
	default:
		return InviteStateOpen
	}
}
