package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
	"github.com/aussiebroadwan/leaguehub/internal/league/store/drivers/sqlite"
	"github.com/aussiebroadwan/leaguehub/pkg/cryptox"
	"github.com/aussiebroadwan/leaguehub/pkg/idx"
	"github.com/stretchr/testify/require"
)

var (
	ownerIdentity = domain.Identity{UserID: "owner-1", Email: "owner@example.com"}
	aliceIdentity = domain.Identity{UserID: "alice-1", Email: "alice@example.com"}
	bobIdentity   = domain.Identity{UserID: "bob-1", Email: "bob@example.com"}
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedLeague(t *testing.T, st store.Store, owner domain.Identity) domain.League {
	t.Helper()

	svc := &LeagueService{Store: st}
	league, err := svc.CreateLeague(context.Background(), "Friday Tipping", owner)
	require.NoError(t, err)
	return league
}

// seedRawInvite writes an invite directly so tests can craft arbitrary
// lifecycle states. Returns the raw token.
func seedRawInvite(t *testing.T, st store.Store, invite domain.Invite) string {
	t.Helper()

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	now := time.Now().UTC()
	invite.ID = idx.New().String()
	invite.TokenHash = cryptox.FingerprintToken(token)
	invite.CreatedAt = now
	invite.UpdatedAt = now

	require.NoError(t, st.Invites().CreateInvite(context.Background(), invite))
	return token
}

func TestMintInvite_Permissions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	t.Run("non-member is rejected", func(t *testing.T) {
		_, _, err := svc.MintInvite(ctx, league.ID, "", 0, nil, aliceIdentity)
		require.ErrorIs(t, err, ErrNotAMember)
	})

	t.Run("unknown league is rejected", func(t *testing.T) {
		_, _, err := svc.MintInvite(ctx, "no-such-league", "", 0, nil, ownerIdentity)
		require.ErrorIs(t, err, ErrLeagueNotFound)
	})

	t.Run("plain member is rejected", func(t *testing.T) {
		require.NoError(t, st.Memberships().CreateMembership(ctx, domain.Membership{
			LeagueID: league.ID, UserID: aliceIdentity.UserID, Role: domain.RoleMember,
		}))

		_, _, err := svc.MintInvite(ctx, league.ID, "", 0, nil, aliceIdentity)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner can mint", func(t *testing.T) {
		invite, token, err := svc.MintInvite(ctx, league.ID, "", 0, nil, ownerIdentity)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, league.ID, invite.LeagueID)
	})
}

func TestMintInvite_Defaults(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	t.Run("targeted invites default to single use", func(t *testing.T) {
		invite, _, err := svc.MintInvite(ctx, league.ID, "Alice@Example.COM", time.Hour, nil, ownerIdentity)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", invite.Email, "address is normalized")
		require.NotNil(t, invite.MaxUses)
		require.Equal(t, 1, *invite.MaxUses)
		require.NotNil(t, invite.ExpiresAt)
	})

	t.Run("open invites default to unlimited uses", func(t *testing.T) {
		invite, _, err := svc.MintInvite(ctx, league.ID, "", 0, nil, ownerIdentity)
		require.NoError(t, err)
		require.Nil(t, invite.MaxUses)
		require.Nil(t, invite.ExpiresAt)
	})

	t.Run("malformed address is rejected", func(t *testing.T) {
		_, _, err := svc.MintInvite(ctx, league.ID, "not-an-email", 0, nil, ownerIdentity)
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("non-positive max uses is rejected", func(t *testing.T) {
		zero := 0
		_, _, err := svc.MintInvite(ctx, league.ID, "", 0, &zero, ownerIdentity)
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})
}

func TestPreviewInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.PreviewInvite(ctx, "no-such-token")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("targeted invite hides the address", func(t *testing.T) {
		_, token, err := svc.MintInvite(ctx, league.ID, "alice@example.com", time.Hour, nil, ownerIdentity)
		require.NoError(t, err)

		preview, err := svc.PreviewInvite(ctx, token)
		require.NoError(t, err)
		require.Equal(t, league.Name, preview.LeagueName)
		require.True(t, preview.Targeted)
		require.Equal(t, domain.InviteStateOpen, preview.State)
	})

	t.Run("terminal states render as state, not error", func(t *testing.T) {
		invite, token, err := svc.MintInvite(ctx, league.ID, "", 0, nil, ownerIdentity)
		require.NoError(t, err)
		require.NoError(t, svc.RevokeInvite(ctx, invite.ID, ownerIdentity))

		preview, err := svc.PreviewInvite(ctx, token)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStateRevoked, preview.State)
	})
}

func TestRedeemInvite_HappyPath(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	invite, token, err := svc.MintInvite(ctx, league.ID, "alice@example.com", time.Hour, nil, ownerIdentity)
	require.NoError(t, err)

	membership, err := svc.RedeemInvite(ctx, token, aliceIdentity, "The Rockets")
	require.NoError(t, err)
	require.Equal(t, domain.RoleMember, membership.Role)
	require.NotNil(t, membership.TeamName)
	require.Equal(t, "The Rockets", *membership.TeamName)

	consumed, err := st.Invites().GetInviteByID(ctx, invite.ID)
	require.NoError(t, err)
	require.Equal(t, 1, consumed.UseCount)
	require.NotNil(t, consumed.ConsumedAt)
	require.Equal(t, aliceIdentity.UserID, consumed.ConsumedBy)
}

func TestRedeemInvite_IdempotentForExistingMember(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	invite, token, err := svc.MintInvite(ctx, league.ID, "", 0, nil, ownerIdentity)
	require.NoError(t, err)

	first, err := svc.RedeemInvite(ctx, token, aliceIdentity, "")
	require.NoError(t, err)

	// Second redemption by the same user succeeds without burning a use.
	second, err := svc.RedeemInvite(ctx, token, aliceIdentity, "")
	require.NoError(t, err)
	require.Equal(t, first.UserID, second.UserID)

	after, err := st.Invites().GetInviteByID(ctx, invite.ID)
	require.NoError(t, err)
	require.Equal(t, 1, after.UseCount)
}

func TestRedeemInvite_WrongAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	_, token, err := svc.MintInvite(ctx, league.ID, "alice@example.com", time.Hour, nil, ownerIdentity)
	require.NoError(t, err)

	t.Run("different address is rejected", func(t *testing.T) {
		_, err := svc.RedeemInvite(ctx, token, bobIdentity, "")
		require.ErrorIs(t, err, ErrWrongAccount)
	})

	t.Run("address comparison is case-insensitive", func(t *testing.T) {
		shouting := domain.Identity{UserID: aliceIdentity.UserID, Email: "ALICE@EXAMPLE.COM"}
		_, err := svc.RedeemInvite(ctx, token, shouting, "")
		require.NoError(t, err)
	})
}

func TestRedeemInvite_FailurePrecedence(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	revoked := now.Add(-30 * time.Minute)
	one := 1

	t.Run("revoked beats expired", func(t *testing.T) {
		token := seedRawInvite(t, st, domain.Invite{
			LeagueID:  league.ID,
			CreatedBy: ownerIdentity.UserID,
			ExpiresAt: &past,
			RevokedAt: &revoked,
		})

		_, err := svc.RedeemInvite(ctx, token, aliceIdentity, "")
		require.ErrorIs(t, err, ErrInviteRevoked)
	})

	t.Run("consumed beats expired", func(t *testing.T) {
		token := seedRawInvite(t, st, domain.Invite{
			LeagueID:  league.ID,
			CreatedBy: ownerIdentity.UserID,
			MaxUses:   &one,
			UseCount:  1,
			ExpiresAt: &past,
		})

		_, err := svc.RedeemInvite(ctx, token, aliceIdentity, "")
		require.ErrorIs(t, err, ErrInviteConsumed)
	})

	t.Run("expired beats wrong account", func(t *testing.T) {
		token := seedRawInvite(t, st, domain.Invite{
			LeagueID:  league.ID,
			CreatedBy: ownerIdentity.UserID,
			Email:     "someoneelse@example.com",
			MaxUses:   &one,
			ExpiresAt: &past,
		})

		_, err := svc.RedeemInvite(ctx, token, aliceIdentity, "")
		require.ErrorIs(t, err, ErrInviteExpired)
	})
}

func TestRedeemInvite_MaxUsesExhaustion(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	three := 3
	invite, token, err := svc.MintInvite(ctx, league.ID, "", 0, &three, ownerIdentity)
	require.NoError(t, err)

	users := []domain.Identity{
		{UserID: "u1", Email: "u1@example.com"},
		{UserID: "u2", Email: "u2@example.com"},
		{UserID: "u3", Email: "u3@example.com"},
	}
	for _, u := range users {
		_, err := svc.RedeemInvite(ctx, token, u, "")
		require.NoError(t, err)
	}

	_, err = svc.RedeemInvite(ctx, token, domain.Identity{UserID: "u4", Email: "u4@example.com"}, "")
	require.ErrorIs(t, err, ErrInviteConsumed)

	after, err := st.Invites().GetInviteByID(ctx, invite.ID)
	require.NoError(t, err)
	require.Equal(t, 3, after.UseCount)
}

func TestRedeemInvite_ConcurrentSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	one := 1
	invite, token, err := svc.MintInvite(ctx, league.ID, "", 0, &one, ownerIdentity)
	require.NoError(t, err)

	const contenders = 8
	var wg sync.WaitGroup
	errs := make([]error, contenders)

	for i := range contenders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			identity := domain.Identity{
				UserID: "racer-" + string(rune('a'+i)),
				Email:  "racer@example.com",
			}
			_, errs[i] = svc.RedeemInvite(ctx, token, identity, "")
		}()
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, ErrInviteConsumed)
		}
	}
	require.Equal(t, 1, wins, "exactly one contender may consume a single-use invite")

	after, err := st.Invites().GetInviteByID(ctx, invite.ID)
	require.NoError(t, err)
	require.Equal(t, 1, after.UseCount)
}

func TestRedeemInvite_TeamNameConflictRollsBackConsumption(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	invite, token, err := svc.MintInvite(ctx, league.ID, "", 0, nil, ownerIdentity)
	require.NoError(t, err)

	_, err = svc.RedeemInvite(ctx, token, aliceIdentity, "Rockets")
	require.NoError(t, err)

	// Bob wants the same name, case differs. The join must fail whole, and
	// the failed attempt must not consume a use.
	before, err := st.Invites().GetInviteByID(ctx, invite.ID)
	require.NoError(t, err)

	_, err = svc.RedeemInvite(ctx, token, bobIdentity, "rockets")
	require.ErrorIs(t, err, ErrTeamNameTaken)

	after, err := st.Invites().GetInviteByID(ctx, invite.ID)
	require.NoError(t, err)
	require.Equal(t, before.UseCount, after.UseCount)

	_, err = st.Memberships().GetMembership(ctx, league.ID, bobIdentity.UserID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRevokeInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	invite, token, err := svc.MintInvite(ctx, league.ID, "", 0, nil, ownerIdentity)
	require.NoError(t, err)

	t.Run("non-manager cannot revoke", func(t *testing.T) {
		err := svc.RevokeInvite(ctx, invite.ID, aliceIdentity)
		require.ErrorIs(t, err, ErrNotAMember)
	})

	t.Run("revocation is idempotent", func(t *testing.T) {
		require.NoError(t, svc.RevokeInvite(ctx, invite.ID, ownerIdentity))
		require.NoError(t, svc.RevokeInvite(ctx, invite.ID, ownerIdentity))
	})

	t.Run("revoked invites cannot be redeemed", func(t *testing.T) {
		_, err := svc.RedeemInvite(ctx, token, aliceIdentity, "")
		require.ErrorIs(t, err, ErrInviteRevoked)
	})

	t.Run("unknown invite", func(t *testing.T) {
		err := svc.RevokeInvite(ctx, "no-such-invite", ownerIdentity)
		require.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestListOpenInvites(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st}

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	one := 1

	open, _, err := svc.MintInvite(ctx, league.ID, "open1@example.com", time.Hour, nil, ownerIdentity)
	require.NoError(t, err)

	// Revoked, expired and exhausted invites must not show up.
	revoked, _, err := svc.MintInvite(ctx, league.ID, "", 0, nil, ownerIdentity)
	require.NoError(t, err)
	require.NoError(t, svc.RevokeInvite(ctx, revoked.ID, ownerIdentity))

	seedRawInvite(t, st, domain.Invite{
		LeagueID: league.ID, CreatedBy: ownerIdentity.UserID, ExpiresAt: &past,
	})
	seedRawInvite(t, st, domain.Invite{
		LeagueID: league.ID, CreatedBy: ownerIdentity.UserID, MaxUses: &one, UseCount: 1,
	})

	invites, err := svc.ListOpenInvites(ctx, league.ID, ownerIdentity)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, open.ID, invites[0].ID)
}

func TestAcceptURL(t *testing.T) {
	svc := &InviteService{AcceptBaseURL: "https://league.example.com/invites/"}
	require.Equal(t, "https://league.example.com/invites/tok-123", svc.AcceptURL("tok-123"))

	blank := &InviteService{}
	require.Empty(t, blank.AcceptURL("tok-123"))
}
