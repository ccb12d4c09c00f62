package sqlite

import (
	"context"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
)

type leaguesRepo struct {
	db querier
}

func (r *leaguesRepo) CreateLeague(ctx context.Context, l domain.League) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leagues (id, name, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.OwnerID, l.CreatedAt, l.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *leaguesRepo) GetLeagueByID(ctx context.Context, id string) (domain.League, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, owner_id, created_at, updated_at
		FROM leagues WHERE id = ?`,
		id,
	)

	var l domain.League
	err := row.Scan(&l.ID, &l.Name, &l.OwnerID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return domain.League{}, mapNotFound(err)
	}
	return l, nil
}
