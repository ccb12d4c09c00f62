package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports that a conditional write matched no rows, i.e. the
	// guarded state transition was lost to a concurrent writer.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. Sub-repositories keep concerns tidy and stop
// callers from accidentally nesting transactions.
type Store interface {
	Leagues() Leagues
	Invites() Invites
	Memberships() Memberships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step writes that must be atomic
	// (e.g. invite consumption plus membership insert).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Leagues interface {
	// CreateLeague inserts a new league (id is provided by app via ULID).
	CreateLeague(ctx context.Context, l domain.League) error

	// GetLeagueByID returns a league by id.
	GetLeagueByID(ctx context.Context, id string) (domain.League, error)
}

type Invites interface {
	// CreateInvite writes a new invite (token_hash is a SHA-256 fingerprint
	// of the opaque invite token). A token_hash collision surfaces as
	// ErrAlreadyExists so the caller can retry with a fresh token.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByTokenHash returns an invite by fingerprint regardless of
	// state; lifecycle decisions belong to the service layer.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// GetInviteByID returns an invite by id.
	GetInviteByID(ctx context.Context, id string) (domain.Invite, error)

	// ListOpenInvitesForLeague returns invites that are not revoked, not
	// expired as of now, and not exhausted, ordered by creation time
	// ascending.
	ListOpenInvitesForLeague(ctx context.Context, leagueID string, now time.Time) ([]domain.Invite, error)

	// ListOpenEmailTargetsForLeague returns the set of normalized
	// (lowercased) email targets with an open invite in the league. Used by
	// the bulk orchestrator to skip duplicate invites.
	ListOpenEmailTargetsForLeague(ctx context.Context, leagueID string, now time.Time) (map[string]struct{}, error)

	// ConsumeInvite atomically increments use_count and stamps
	// consumed_at/consumed_by on the first use. The update is conditional on
	// the invite being un-revoked, un-expired as of now, and below max_uses;
	// if the condition no longer holds it returns ErrConflict and the
	// caller decides which lifecycle failure to report. This conditional
	// update is the single concurrency guard for double consumption.
	ConsumeInvite(ctx context.Context, id string, byUserID string, now time.Time) (domain.Invite, error)

	// RevokeInvite sets revoked_at. Revoking an already-revoked invite is a
	// no-op success.
	RevokeInvite(ctx context.Context, id string, now time.Time) (domain.Invite, error)

	// DeleteExpiredInvitesBefore removes invites whose expiry predates the
	// cutoff (housekeeping). Recently expired invites are kept so previews
	// can still render a friendly "expired" state.
	DeleteExpiredInvitesBefore(ctx context.Context, cutoff time.Time) error
}

type Memberships interface {
	// CreateMembership inserts a membership row. The (league_id, user_id)
	// primary key makes this the single source of truth for "at most one
	// membership per user per league": a duplicate insert returns
	// ErrAlreadyExists rather than a second row. A team-name uniqueness
	// violation also returns ErrAlreadyExists; callers that need to tell
	// them apart should check the name first.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembership returns the membership for (leagueID, userID).
	GetMembership(ctx context.Context, leagueID, userID string) (domain.Membership, error)

	// ListMembershipsForLeague returns all members ordered by join time.
	ListMembershipsForLeague(ctx context.Context, leagueID string) ([]domain.Membership, error)

	// IsTeamNameTaken reports whether another member of the league already
	// uses the name, case-insensitively. The excludeUserID's own row is
	// ignored so re-submitting a current name isn't blocked.
	IsTeamNameTaken(ctx context.Context, leagueID, name, excludeUserID string) (bool, error)

	// UpdateTeamName sets the member's team name and bumps updated_at. A
	// case-insensitive collision within the league returns ErrAlreadyExists.
	UpdateTeamName(ctx context.Context, leagueID, userID, name string) error

	// UpdateRole changes a member's role and bumps updated_at.
	UpdateRole(ctx context.Context, leagueID, userID string, role domain.Role) error

	// DeleteMembership removes a member from a league.
	DeleteMembership(ctx context.Context, leagueID, userID string) error
}
