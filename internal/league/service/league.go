package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
	"github.com/aussiebroadwan/leaguehub/pkg/idx"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"
)

var ErrInvalidLeagueName = errors.New("league name must be 1-100 characters")

const maxLeagueNameLength = 100

type LeagueService struct {
	Store store.Store
}

// CreateLeague creates a league and its owner membership atomically. The
// owner row is the root of the league's permission model, so it must exist
// from the instant the league does.
func (s *LeagueService) CreateLeague(ctx context.Context, name string, requester domain.Identity) (domain.League, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the name.
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxLeagueNameLength {
		return domain.League{}, ErrInvalidLeagueName
	}

	now := time.Now().UTC()
	league := domain.League{
		ID:        idx.New().String(),
		Name:      name,
		OwnerID:   requester.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 2. Write the league and owner membership in one transaction.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Leagues().CreateLeague(ctx, league); err != nil {
			log.Error("failed to create league",
				slog.String("league_id", league.ID),
				slog.Any("error", err),
			)
			return err
		}

		owner := domain.Membership{
			LeagueID:  league.ID,
			UserID:    requester.UserID,
			Role:      domain.RoleOwner,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Memberships().CreateMembership(ctx, owner); err != nil {
			log.Error("failed to create owner membership",
				slog.String("league_id", league.ID),
				slog.String("user_id", requester.UserID),
				slog.Any("error", err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return domain.League{}, err
	}

	log.Info("league created",
		slog.String("league_id", league.ID),
		slog.String("owner_id", requester.UserID),
	)
	return league, nil
}

// GetLeague returns a league by id.
func (s *LeagueService) GetLeague(ctx context.Context, id string) (domain.League, error) {
	league, err := s.Store.Leagues().GetLeagueByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.League{}, ErrLeagueNotFound
		}
		return domain.League{}, err
	}
	return league, nil
}
