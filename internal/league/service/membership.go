package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"
)

var (
	ErrInvalidTeamName   = errors.New("team name must be 1-64 characters")
	ErrTeamNameTaken     = errors.New("team name already taken in this league")
	ErrInvalidRole       = errors.New("invalid role")
	ErrCannotModifyOwner = errors.New("the league owner cannot be modified or removed")
	ErrMemberNotFound    = errors.New("member not found")
)

const maxTeamNameLength = 64

// MembershipService manages league rosters: listing, roles, removal and
// self-service team names.
type MembershipService struct {
	Store store.Store
}

// ListMembers lists a league's members, oldest first. Requester must be a
// member.
func (s *MembershipService) ListMembers(ctx context.Context, leagueID string, requester domain.Identity) ([]domain.Membership, error) {
	if _, err := requireMember(ctx, s.Store, leagueID, requester.UserID); err != nil {
		return nil, err
	}
	return s.Store.Memberships().ListMembershipsForLeague(ctx, leagueID)
}

// SetTeamName claims a team name for the requester's own membership.
// Names are unique per league, case-insensitively; resubmitting the current
// name succeeds.
func (s *MembershipService) SetTeamName(
	ctx context.Context,
	leagueID string,
	name string,
	requester domain.Identity,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxTeamNameLength {
		return domain.Membership{}, ErrInvalidTeamName
	}

	// 2. Requester must be a member.
	if _, err := requireMember(ctx, s.Store, leagueID, requester.UserID); err != nil {
		return domain.Membership{}, err
	}

	// 3. Check-then-set. The partial unique index backstops the check, so a
	// concurrent claim of the same name loses with ErrAlreadyExists.
	taken, err := s.Store.Memberships().IsTeamNameTaken(ctx, leagueID, name, requester.UserID)
	if err != nil {
		return domain.Membership{}, err
	}
	if taken {
		return domain.Membership{}, ErrTeamNameTaken
	}

	if err := s.Store.Memberships().UpdateTeamName(ctx, leagueID, requester.UserID, name); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Membership{}, ErrTeamNameTaken
		}
		log.Error("failed to update team name",
			slog.String("league_id", leagueID),
			slog.String("user_id", requester.UserID),
			slog.Any("error", err),
		)
		return domain.Membership{}, err
	}

	log.Info("team name set",
		slog.String("league_id", leagueID),
		slog.String("user_id", requester.UserID),
	)
	return s.Store.Memberships().GetMembership(ctx, leagueID, requester.UserID)
}

// IsTeamNameAvailable reports whether a name is free in the league,
// ignoring the requester's own current name. Requester must be a member.
func (s *MembershipService) IsTeamNameAvailable(
	ctx context.Context,
	leagueID string,
	name string,
	requester domain.Identity,
) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxTeamNameLength {
		return false, ErrInvalidTeamName
	}

	if _, err := requireMember(ctx, s.Store, leagueID, requester.UserID); err != nil {
		return false, err
	}

	taken, err := s.Store.Memberships().IsTeamNameTaken(ctx, leagueID, name, requester.UserID)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// UpdateRole changes a member's role between admin and member. Requester
// must be owner or admin. The owner role itself is never granted or taken
// away here; ownership transfer is out of scope.
func (s *MembershipService) UpdateRole(
	ctx context.Context,
	leagueID string,
	targetUserID string,
	role domain.Role,
	requester domain.Identity,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	if !role.Valid() || role == domain.RoleOwner {
		return domain.Membership{}, ErrInvalidRole
	}

	if _, err := requireManager(ctx, s.Store, leagueID, requester.UserID); err != nil {
		return domain.Membership{}, err
	}

	target, err := s.Store.Memberships().GetMembership(ctx, leagueID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrMemberNotFound
		}
		return domain.Membership{}, err
	}
	if target.Role == domain.RoleOwner {
		return domain.Membership{}, ErrCannotModifyOwner
	}

	if err := s.Store.Memberships().UpdateRole(ctx, leagueID, targetUserID, role); err != nil {
		log.Error("failed to update role",
			slog.String("league_id", leagueID),
			slog.String("user_id", targetUserID),
			slog.Any("error", err),
		)
		return domain.Membership{}, err
	}

	log.Info("member role updated",
		slog.String("league_id", leagueID),
		slog.String("user_id", targetUserID),
		slog.String("role", string(role)),
	)
	return s.Store.Memberships().GetMembership(ctx, leagueID, targetUserID)
}

// RemoveMember removes a member from the league. Requester must be owner or
// admin; the owner can never be removed.
func (s *MembershipService) RemoveMember(
	ctx context.Context,
	leagueID string,
	targetUserID string,
	requester domain.Identity,
) error {
	log := slogx.FromContext(ctx)

	if _, err := requireManager(ctx, s.Store, leagueID, requester.UserID); err != nil {
		return err
	}

	target, err := s.Store.Memberships().GetMembership(ctx, leagueID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	if target.Role == domain.RoleOwner {
		return ErrCannotModifyOwner
	}

	if err := s.Store.Memberships().DeleteMembership(ctx, leagueID, targetUserID); err != nil {
		log.Error("failed to remove member",
			slog.String("league_id", leagueID),
			slog.String("user_id", targetUserID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member removed",
		slog.String("league_id", leagueID),
		slog.String("user_id", targetUserID),
	)
	return nil
}
