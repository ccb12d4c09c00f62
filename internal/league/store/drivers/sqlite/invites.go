package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
)

type invitesRepo struct {
	db querier
}

const inviteColumns = `id, token_hash, league_id, created_by, email, max_uses,
	use_count, expires_at, consumed_at, consumed_by, revoked_at, created_at, updated_at`

// openInviteCond selects invites that are still consumable: not revoked, not
// expired as of the bound `?` timestamp, and not at capacity.
const openInviteCond = `revoked_at IS NULL
	AND (expires_at IS NULL OR expires_at > ?)
	AND (max_uses IS NULL OR use_count < max_uses)`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invites (
			id, token_hash, league_id, created_by, email, max_uses,
			use_count, expires_at, consumed_at, consumed_by, revoked_at,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, 0, ?, NULL, '', NULL, ?, ?)`,
		inv.ID, inv.TokenHash, inv.LeagueID, inv.CreatedBy, inv.Email,
		mapOptionalInt(inv.MaxUses), mapOptionalTime(inv.ExpiresAt),
		inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE token_hash = ?`, hash)
	return scanInvite(row)
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id)
	return scanInvite(row)
}

func (r *invitesRepo) ListOpenInvitesForLeague(
	ctx context.Context,
	leagueID string,
	now time.Time,
) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+inviteColumns+`
		FROM invites
		WHERE league_id = ? AND `+openInviteCond+`
		ORDER BY created_at ASC`,
		leagueID, now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		inv, err := scanInviteRows(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func (r *invitesRepo) ListOpenEmailTargetsForLeague(
	ctx context.Context,
	leagueID string,
	now time.Time,
) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT lower(email)
		FROM invites
		WHERE league_id = ? AND email != '' AND `+openInviteCond,
		leagueID, now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make(map[string]struct{})
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		targets[email] = struct{}{}
	}
	return targets, rows.Err()
}

// ConsumeInvite is the one true concurrency guard for double consumption: a
// single conditional UPDATE increments use_count only while the invite is
// still open, so two racing callers can never both pass the check.
func (r *invitesRepo) ConsumeInvite(
	ctx context.Context,
	id string,
	byUserID string,
	now time.Time,
) (domain.Invite, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invites
		SET use_count = use_count + 1,
			consumed_at = COALESCE(consumed_at, ?),
			consumed_by = CASE WHEN consumed_by = '' THEN ? ELSE consumed_by END,
			updated_at = ?
		WHERE id = ? AND `+openInviteCond,
		now, byUserID, now, id, now,
	)
	if err != nil {
		return domain.Invite{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Invite{}, err
	}
	if affected == 0 {
		// The guarded transition was lost; the caller re-reads the row to
		// decide which lifecycle failure to report.
		return domain.Invite{}, store.ErrConflict
	}

	return r.GetInviteByID(ctx, id)
}

func (r *invitesRepo) RevokeInvite(ctx context.Context, id string, now time.Time) (domain.Invite, error) {
	// Idempotent: only stamps revoked_at the first time.
	_, err := r.db.ExecContext(ctx, `
		UPDATE invites
		SET revoked_at = ?, updated_at = ?
		WHERE id = ? AND revoked_at IS NULL`,
		now, now, id,
	)
	if err != nil {
		return domain.Invite{}, err
	}
	return r.GetInviteByID(ctx, id)
}

func (r *invitesRepo) DeleteExpiredInvitesBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invites WHERE expires_at IS NOT NULL AND expires_at < ?`, cutoff)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInviteFrom(s rowScanner) (domain.Invite, error) {
	var (
		inv      domain.Invite
		maxUses  sql.NullInt64
		expires  sql.NullTime
		consumed sql.NullTime
		revoked  sql.NullTime
	)
	err := s.Scan(
		&inv.ID, &inv.TokenHash, &inv.LeagueID, &inv.CreatedBy, &inv.Email,
		&maxUses, &inv.UseCount, &expires, &consumed, &inv.ConsumedBy,
		&revoked, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invite{}, err
	}

	inv.MaxUses = mapNullIntPtr(maxUses)
	inv.ExpiresAt = mapNullTimePtr(expires)
	inv.ConsumedAt = mapNullTimePtr(consumed)
	inv.RevokedAt = mapNullTimePtr(revoked)
	return inv, nil
}

func scanInvite(row *sql.Row) (domain.Invite, error) {
	inv, err := scanInviteFrom(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func scanInviteRows(rows *sql.Rows) (domain.Invite, error) {
	return scanInviteFrom(rows)
}
