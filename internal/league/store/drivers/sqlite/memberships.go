package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
)

type membershipsRepo struct {
	db querier
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memberships (league_id, user_id, role, team_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.LeagueID, m.UserID, string(m.Role), mapOptionalString(m.TeamName),
		m.CreatedAt, m.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, leagueID, userID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT league_id, user_id, role, team_name, created_at, updated_at
		FROM memberships WHERE league_id = ? AND user_id = ?`,
		leagueID, userID,
	)
	m, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) ListMembershipsForLeague(ctx context.Context, leagueID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT league_id, user_id, role, team_name, created_at, updated_at
		FROM memberships WHERE league_id = ?
		ORDER BY created_at ASC`,
		leagueID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *membershipsRepo) IsTeamNameTaken(ctx context.Context, leagueID, name, excludeUserID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1)
		FROM memberships
		WHERE league_id = ? AND user_id != ?
		  AND team_name IS NOT NULL AND lower(team_name) = ?`,
		leagueID, excludeUserID, strings.ToLower(strings.TrimSpace(name)),
	)

	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *membershipsRepo) UpdateTeamName(ctx context.Context, leagueID, userID, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE memberships
		SET team_name = ?, updated_at = ?
		WHERE league_id = ? AND user_id = ?`,
		name, time.Now().UTC(), leagueID, userID,
	)
	if err != nil {
		// The partial unique index on lower(team_name) is the source of
		// truth for per-league name uniqueness.
		return mapConstraint(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *membershipsRepo) UpdateRole(ctx context.Context, leagueID, userID string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE memberships
		SET role = ?, updated_at = ?
		WHERE league_id = ? AND user_id = ?`,
		string(role), time.Now().UTC(), leagueID, userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, leagueID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM memberships WHERE league_id = ? AND user_id = ?`,
		leagueID, userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanMembership(s rowScanner) (domain.Membership, error) {
	var (
		m        domain.Membership
		role     string
		teamName sql.NullString
	)
	err := s.Scan(&m.LeagueID, &m.UserID, &role, &teamName, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Membership{}, err
	}
	m.Role = domain.Role(role)
	m.TeamName = mapNullStringPtr(teamName)
	return m, nil
}
