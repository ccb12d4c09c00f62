package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
	"github.com/aussiebroadwan/leaguehub/pkg/cryptox"
	"github.com/aussiebroadwan/leaguehub/pkg/idx"
	"github.com/aussiebroadwan/leaguehub/pkg/mailx"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"
)

var (
	ErrInvalidInviteRequest = errors.New("invalid invite request")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteRevoked        = errors.New("invite has been revoked")
	ErrInviteConsumed       = errors.New("invite has already been consumed")
	ErrInviteExpired        = errors.New("invite has expired")
	ErrWrongAccount         = errors.New("invite was issued for a different email address")
)

// errRedeemAlreadyMember aborts the redemption transaction when the caller
// turns out to already hold a membership. The rollback un-consumes the
// invite; the caller then reports the existing membership as success.
var errRedeemAlreadyMember = errors.New("already a member")

// tokenRetryLimit bounds retries on a token fingerprint collision. With
// 256-bit tokens a single retry is already absurdly generous.
const tokenRetryLimit = 3

// InviteService is the invite lifecycle engine: minting, previewing,
// redeeming and revoking tokenized league invites.
type InviteService struct {
	Store store.Store

	// AcceptBaseURL is prepended to minted tokens to form shareable accept
	// links, e.g. "https://league.example.com/invites".
	AcceptBaseURL string

	// Mailer delivers invite notifications to targeted addresses. Optional;
	// delivery failures never fail the mint.
	Mailer mailx.Mailer
}

// InvitePreview is the public projection of an invite. It deliberately
// reveals whether the invite is targeted without revealing the address.
type InvitePreview struct {
	LeagueID   string
	LeagueName string
	Targeted   bool
	State      domain.InviteState
	ExpiresAt  *time.Time
}

// MintInvite creates a new invite for a league. An empty email mints an
// open invite anyone may consume; a non-empty email binds the invite to
// that address. A nil maxUses defaults to 1 for targeted invites and
// unlimited for open ones. The raw token is returned exactly once.
func (s *InviteService) MintInvite(
	ctx context.Context,
	leagueID string,
	email string,
	ttl time.Duration,
	maxUses *int,
	requester domain.Identity,
) (domain.Invite, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Requester must be owner or admin of the league.
	if _, err := requireManager(ctx, s.Store, leagueID, requester.UserID); err != nil {
		return domain.Invite{}, "", err
	}

	// 2. Normalize and validate the target address, if any.
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && !validEmailAddress(email) {
		log.Warn("invite mint rejected for malformed address",
			slog.String("league_id", leagueID),
		)
		return domain.Invite{}, "", ErrInvalidEmail
	}

	// 3. Validate bounds.
	if ttl < 0 {
		return domain.Invite{}, "", ErrInvalidInviteRequest
	}
	if maxUses != nil && *maxUses <= 0 {
		return domain.Invite{}, "", ErrInvalidInviteRequest
	}
	if maxUses == nil && email != "" {
		one := 1
		maxUses = &one // targeted invites are single-use unless asked otherwise
	}

	now := time.Now().UTC()
	var expiresAt *time.Time
	if ttl > 0 {
		t := now.Add(ttl)
		expiresAt = &t
	}

	// 4. Generate, fingerprint and store.
	invite, token, err := s.createWithFreshToken(ctx, domain.Invite{
		LeagueID:  leagueID,
		CreatedBy: requester.UserID,
		Email:     email,
		MaxUses:   maxUses,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Error("failed to create invite",
			slog.String("league_id", leagueID),
			slog.Any("error", err),
		)
		return domain.Invite{}, "", err
	}

	log.Info("invite minted",
		slog.String("invite_id", invite.ID),
		slog.String("league_id", leagueID),
		slog.Bool("targeted", email != ""),
	)

	// 5. Best-effort notification for targeted invites.
	if email != "" && s.Mailer != nil {
		s.sendInviteMail(ctx, leagueID, email, token)
	}

	return invite, token, nil
}

// createWithFreshToken fills in the invite's id, generates a token and
// stores its fingerprint. The UNIQUE index on the fingerprint backstops the
// generator; on a collision the token is regenerated.
func (s *InviteService) createWithFreshToken(ctx context.Context, invite domain.Invite) (domain.Invite, string, error) {
	for attempt := 0; ; attempt++ {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return domain.Invite{}, "", err
		}

		invite.ID = idx.New().String()
		invite.TokenHash = cryptox.FingerprintToken(token)

		err = s.Store.Invites().CreateInvite(ctx, invite)
		if err == nil {
			return invite, token, nil
		}
		if errors.Is(err, store.ErrAlreadyExists) && attempt < tokenRetryLimit {
			continue
		}
		return domain.Invite{}, "", err
	}
}

// PreviewInvite returns the public projection of an invite token. Terminal
// states render as state, not error, so a landing page can explain what
// happened to the link.
func (s *InviteService) PreviewInvite(ctx context.Context, token string) (InvitePreview, error) {
	log := slogx.FromContext(ctx)

	invite, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InvitePreview{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return InvitePreview{}, err
	}

	league, err := s.Store.Leagues().GetLeagueByID(ctx, invite.LeagueID)
	if err != nil {
		log.Error("failed to fetch league for preview",
			slog.String("league_id", invite.LeagueID),
			slog.Any("error", err),
		)
		return InvitePreview{}, err
	}

	return InvitePreview{
		LeagueID:   league.ID,
		LeagueName: league.Name,
		Targeted:   !invite.IsOpen(),
		State:      invite.State(time.Now().UTC()),
		ExpiresAt:  invite.ExpiresAt,
	}, nil
}

// RedeemInvite consumes an invite token and creates the caller's membership
// in one transaction. teamName is optional and claimed atomically with the
// join. Redeeming an invite for a league the caller already belongs to is
// an idempotent success and does not consume a use.
func (s *InviteService) RedeemInvite(
	ctx context.Context,
	token string,
	identity domain.Identity,
	teamName string,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	teamName = strings.TrimSpace(teamName)
	if teamName != "" && len(teamName) > maxTeamNameLength {
		return domain.Membership{}, ErrInvalidTeamName
	}

	now := time.Now().UTC()
	fingerprint := cryptox.FingerprintToken(token)

	// 1. Look up and gate the invite. Failure precedence is fixed: not
	// found, then revoked, then consumed, then expired, then wrong account.
	invite, err := s.Store.Invites().GetInviteByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("redemption attempted with unknown token")
			return domain.Membership{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.Membership{}, err
	}

	if err := gateInvite(invite, identity, now); err != nil {
		log.Warn("redemption rejected",
			slog.String("invite_id", invite.ID),
			slog.String("reason", err.Error()),
		)
		return domain.Membership{}, err
	}

	// 2. Idempotent path: existing members get their membership back without
	// burning a use.
	existing, err := s.Store.Memberships().GetMembership(ctx, invite.LeagueID, identity.UserID)
	if err == nil {
		log.Debug("redemption by existing member, no-op",
			slog.String("invite_id", invite.ID),
			slog.String("league_id", invite.LeagueID),
		)
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Membership{}, err
	}

	// 3. Consume and join atomically. The conditional use_count increment is
	// the only guard against concurrent double-spend; if the membership
	// insert fails the rollback returns the use.
	var membership domain.Membership
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Invites().ConsumeInvite(ctx, invite.ID, identity.UserID, now); err != nil {
			if errors.Is(err, store.ErrConflict) {
				// Lost the race or the state changed under us. Re-read and
				// report the precise lifecycle failure.
				return s.classifyConsumeConflict(ctx, tx, invite.ID, identity, now)
			}
			return err
		}

		if teamName != "" {
			taken, err := tx.Memberships().IsTeamNameTaken(ctx, invite.LeagueID, teamName, identity.UserID)
			if err != nil {
				return err
			}
			if taken {
				return ErrTeamNameTaken
			}
		}

		membership = domain.Membership{
			LeagueID:  invite.LeagueID,
			UserID:    identity.UserID,
			Role:      domain.RoleMember,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if teamName != "" {
			membership.TeamName = &teamName
		}

		if err := tx.Memberships().CreateMembership(ctx, membership); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return errRedeemAlreadyMember
			}
			return err
		}
		return nil
	})

	switch {
	case err == nil:
		log.Info("invite redeemed",
			slog.String("invite_id", invite.ID),
			slog.String("league_id", invite.LeagueID),
			slog.String("user_id", identity.UserID),
		)
		return membership, nil

	case errors.Is(err, errRedeemAlreadyMember):
		// Concurrent join between our pre-check and the insert. The rollback
		// un-consumed the invite; hand back the row that won.
		existing, gerr := s.Store.Memberships().GetMembership(ctx, invite.LeagueID, identity.UserID)
		if gerr != nil {
			return domain.Membership{}, gerr
		}
		return existing, nil

	default:
		return domain.Membership{}, err
	}
}

// classifyConsumeConflict re-reads an invite after a failed conditional
// consume and maps the current state onto the lifecycle failure precedence.
func (s *InviteService) classifyConsumeConflict(
	ctx context.Context,
	tx store.Tx,
	inviteID string,
	identity domain.Identity,
	now time.Time,
) error {
	invite, err := tx.Invites().GetInviteByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	if err := gateInvite(invite, identity, now); err != nil {
		return err
	}
	// State still looks open yet the guarded update matched nothing. Treat
	// as consumed; the competing writer just hasn't committed in our view.
	return ErrInviteConsumed
}

// gateInvite enforces the redemption failure precedence on a loaded invite.
func gateInvite(invite domain.Invite, identity domain.Identity, now time.Time) error {
	switch {
	case invite.RevokedAt != nil:
		return ErrInviteRevoked
	case invite.IsExhausted():
		return ErrInviteConsumed
	case invite.IsExpired(now):
		return ErrInviteExpired
	case !invite.IsOpen() && !identity.EmailMatches(invite.Email):
		return ErrWrongAccount
	}
	return nil
}

// RevokeInvite revokes an invite. Revoking an already-revoked invite is a
// no-op success so admin retries are safe.
func (s *InviteService) RevokeInvite(ctx context.Context, inviteID string, requester domain.Identity) error {
	log := slogx.FromContext(ctx)

	invite, err := s.Store.Invites().GetInviteByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return err
	}

	if _, err := requireManager(ctx, s.Store, invite.LeagueID, requester.UserID); err != nil {
		return err
	}

	if _, err := s.Store.Invites().RevokeInvite(ctx, inviteID, time.Now().UTC()); err != nil {
		log.Error("failed to revoke invite",
			slog.String("invite_id", inviteID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invite revoked",
		slog.String("invite_id", inviteID),
		slog.String("league_id", invite.LeagueID),
	)
	return nil
}

// ListOpenInvites returns a league's open invites, oldest first.
func (s *InviteService) ListOpenInvites(ctx context.Context, leagueID string, requester domain.Identity) ([]domain.Invite, error) {
	if _, err := requireManager(ctx, s.Store, leagueID, requester.UserID); err != nil {
		return nil, err
	}
	return s.Store.Invites().ListOpenInvitesForLeague(ctx, leagueID, time.Now().UTC())
}

// AcceptURL builds the shareable accept link for a raw token. Returns ""
// when no base URL is configured.
func (s *InviteService) AcceptURL(token string) string {
	if s.AcceptBaseURL == "" {
		return ""
	}
	return strings.TrimSuffix(s.AcceptBaseURL, "/") + "/" + url.PathEscape(token)
}

// sendInviteMail delivers a targeted invite notification. Best effort only.
func (s *InviteService) sendInviteMail(ctx context.Context, leagueID, email, token string) {
	log := slogx.FromContext(ctx)

	league, err := s.Store.Leagues().GetLeagueByID(ctx, leagueID)
	if err != nil {
		log.Warn("skipping invite mail, league lookup failed", slog.Any("error", err))
		return
	}

	body := fmt.Sprintf("You have been invited to join %s.", league.Name)
	if u := s.AcceptURL(token); u != "" {
		body += "\n\nAccept your invite: " + u
	}

	msg := mailx.Message{
		To:      email,
		Subject: fmt.Sprintf("Invitation to join %s", league.Name),
		Body:    body,
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		log.Warn("invite mail delivery failed",
			slog.String("league_id", leagueID),
			slog.Any("error", err),
		)
	}
}
