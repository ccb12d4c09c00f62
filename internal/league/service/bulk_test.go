package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/stretchr/testify/require"
)

func TestParseAddressBlob(t *testing.T) {
	t.Parallel()

	t.Run("splits on every supported separator", func(t *testing.T) {
		blob := "a@x.com, b@y.com;c@z.com\nd@w.com\te@v.com f@u.com"
		got := parseAddressBlob(blob)
		require.Equal(t, []string{"a@x.com", "b@y.com", "c@z.com", "d@w.com", "e@v.com", "f@u.com"}, got)
	})

	t.Run("de-dups case-insensitively preserving first-seen order", func(t *testing.T) {
		blob := "B@y.com, a@x.com, A@X.COM, b@y.com"
		got := parseAddressBlob(blob)
		require.Equal(t, []string{"b@y.com", "a@x.com"}, got)
	})

	t.Run("drops empties", func(t *testing.T) {
		require.Empty(t, parseAddressBlob(" ,;\n\n ; "))
	})
}

func TestValidEmailAddress(t *testing.T) {
	t.Parallel()

	valid := []string{"alice@example.com", "a.b+tag@sub.example.co"}
	for _, addr := range valid {
		require.True(t, validEmailAddress(addr), addr)
	}

	invalid := []string{"", "plainword", "a@b", "a@.com", "a@b.", "Alice <alice@example.com>", "two@@example.com"}
	for _, addr := range invalid {
		require.False(t, validEmailAddress(addr), addr)
	}
}

func TestBulkMintInvites(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	league := seedLeague(t, st, ownerIdentity)
	svc := &InviteService{Store: st, AcceptBaseURL: "https://league.example.com/invites"}

	t.Run("requires manager", func(t *testing.T) {
		_, err := svc.BulkMintInvites(ctx, league.ID, "a@x.com", time.Hour, aliceIdentity)
		require.ErrorIs(t, err, ErrNotAMember)
	})

	t.Run("empty blob is rejected", func(t *testing.T) {
		_, err := svc.BulkMintInvites(ctx, league.ID, " , ;\n", time.Hour, ownerIdentity)
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("one bad address fails the whole batch", func(t *testing.T) {
		_, err := svc.BulkMintInvites(ctx, league.ID, "good@example.com, not-an-email", time.Hour, ownerIdentity)

		var invalidErr *InvalidAddressesError
		require.ErrorAs(t, err, &invalidErr)
		require.Equal(t, []string{"not-an-email"}, invalidErr.Addresses)

		// Fail-closed: the good address must not have been minted.
		invites, err := svc.ListOpenInvites(ctx, league.ID, ownerIdentity)
		require.NoError(t, err)
		require.Empty(t, invites)
	})

	t.Run("mints single-use targeted invites", func(t *testing.T) {
		report, err := svc.BulkMintInvites(ctx, league.ID, "A@x.com; b@y.com\na@X.com", time.Hour, ownerIdentity)
		require.NoError(t, err)
		require.Len(t, report.Created, 2, "duplicates collapse before minting")
		require.Empty(t, report.Skipped)

		require.Equal(t, "a@x.com", report.Created[0].Email)
		require.Equal(t, "b@y.com", report.Created[1].Email)
		for _, created := range report.Created {
			require.NotEmpty(t, created.Token)
			require.NotEmpty(t, created.InviteID)
			require.Contains(t, created.AcceptURL, created.Token)

			invite, err := st.Invites().GetInviteByID(ctx, created.InviteID)
			require.NoError(t, err)
			require.NotNil(t, invite.MaxUses)
			require.Equal(t, 1, *invite.MaxUses)
			require.NotNil(t, invite.ExpiresAt)
		}
	})

	t.Run("skips addresses with an open invite", func(t *testing.T) {
		report, err := svc.BulkMintInvites(ctx, league.ID, "a@x.com, fresh@example.com", time.Hour, ownerIdentity)
		require.NoError(t, err)
		require.Len(t, report.Created, 1)
		require.Equal(t, "fresh@example.com", report.Created[0].Email)
		require.Equal(t, []string{"a@x.com"}, report.Skipped)
	})

	t.Run("consumed invites do not block re-inviting", func(t *testing.T) {
		report, err := svc.BulkMintInvites(ctx, league.ID, "redeemed@example.com", time.Hour, ownerIdentity)
		require.NoError(t, err)
		require.Len(t, report.Created, 1)

		redeemer := domain.Identity{UserID: "redeemer-1", Email: "redeemed@example.com"}
		_, err = svc.RedeemInvite(ctx, report.Created[0].Token, redeemer, "")
		require.NoError(t, err)

		again, err := svc.BulkMintInvites(ctx, league.ID, "redeemed@example.com", time.Hour, ownerIdentity)
		require.NoError(t, err)
		require.Len(t, again.Created, 1)
		require.Empty(t, again.Skipped)
	})
}
