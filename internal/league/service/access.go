package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
)

var (
	ErrLeagueNotFound = errors.New("league not found")
	ErrNotAMember     = errors.New("not a member of this league")
	ErrForbidden      = errors.New("requires league owner or admin role")
)

// requireMember resolves the requester's membership in the league.
// Distinguishes "league doesn't exist" from "you're not in it".
func requireMember(ctx context.Context, st store.Store, leagueID, userID string) (domain.Membership, error) {
	m, err := st.Memberships().GetMembership(ctx, leagueID, userID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Membership{}, err
	}

	if _, lerr := st.Leagues().GetLeagueByID(ctx, leagueID); lerr != nil {
		if errors.Is(lerr, store.ErrNotFound) {
			return domain.Membership{}, ErrLeagueNotFound
		}
		return domain.Membership{}, lerr
	}
	return domain.Membership{}, ErrNotAMember
}

// requireManager resolves the requester's membership and checks it can
// manage the league (mint/revoke invites, manage members).
func requireManager(ctx context.Context, st store.Store, leagueID, userID string) (domain.Membership, error) {
	m, err := requireMember(ctx, st, leagueID, userID)
	if err != nil {
		return domain.Membership{}, err
	}
	if !m.Role.CanManageLeague() {
		return domain.Membership{}, ErrForbidden
	}
	return m, nil
}
