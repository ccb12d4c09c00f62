package league_test

import (
	"testing"

	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
	"github.com/stretchr/testify/require"
)

// TestOpenInviteLifecycle tests the complete shareable invite flow:
// 1. Create a league
// 2. Mint an open invite
// 3. Preview the invite without authentication
// 4. Accept the invite as a new user
// 5. Verify the roster contains both members
func TestOpenInviteLifecycle(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)
	owner := client.WithDebugIdentity(ownerUserID, ownerEmail)

	league := createLeague(t, owner, "Friday Night Tipping")

	t.Logf("League created (ID: %s)", league.ID)

	// Mint an open invite (no email, no expiry)
	minted, err := owner.MintInvite(t.Context(), league.ID, leaguesdk.MintInviteRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, minted.Token, "Raw token should be returned on mint")
	require.Equal(t, "open", minted.Invite.State)
	require.Empty(t, minted.Invite.Email, "Open invites carry no address")
	require.Nil(t, minted.Invite.MaxUses, "Open invites default to unlimited uses")
	require.Contains(t, minted.AcceptURL, minted.Token)

	t.Logf("Open invite minted (ID: %s)", minted.Invite.ID)

	// Anyone can preview the invite without authenticating
	preview, err := client.PreviewInvite(t.Context(), minted.Token)
	require.NoError(t, err)
	require.Equal(t, league.ID, preview.LeagueID)
	require.Equal(t, league.Name, preview.LeagueName)
	require.False(t, preview.Targeted)
	require.Equal(t, "open", preview.State)

	// A brand new user accepts the invite and picks a team name
	joiner := client.WithDebugIdentity("user-joiner", "joiner@example.com")
	membership, err := joiner.AcceptInvite(t.Context(), minted.Token, &leaguesdk.AcceptInviteRequest{
		TeamName: "The Underdogs",
	})
	require.NoError(t, err)
	require.Equal(t, league.ID, membership.LeagueID)
	require.Equal(t, "user-joiner", membership.UserID)
	require.Equal(t, "member", membership.Role)
	require.NotNil(t, membership.TeamName)
	require.Equal(t, "The Underdogs", *membership.TeamName)

	t.Logf("Invite accepted, joined as %s", membership.UserID)

	// Roster now holds the owner and the joiner
	members, err := owner.ListMembers(t.Context(), league.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

// TestTargetedInviteWrongAccount verifies that an email-bound invite can only
// be redeemed by the matching account, and that the address never leaks into
// the public preview.
func TestTargetedInviteWrongAccount(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)
	owner := client.WithDebugIdentity(ownerUserID, ownerEmail)

	league := createLeague(t, owner, "Office Footy Tips")

	minted, err := owner.MintInvite(t.Context(), league.ID, leaguesdk.MintInviteRequest{
		Email: "Alice@Example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", minted.Invite.Email, "Address should be normalized")
	require.NotNil(t, minted.Invite.MaxUses)
	require.Equal(t, 1, *minted.Invite.MaxUses, "Targeted invites default to single use")

	// Preview reveals the invite is targeted but not to whom
	preview, err := client.PreviewInvite(t.Context(), minted.Token)
	require.NoError(t, err)
	require.True(t, preview.Targeted)

	// The wrong account is turned away
	mallory := client.WithDebugIdentity("user-mallory", "mallory@example.com")
	_, err = mallory.AcceptInvite(t.Context(), minted.Token, nil)
	assertAPIError(t, err, leaguesdk.ErrorCodeWrongAccount)

	// The matching account joins, with a case-insensitive address match
	alice := client.WithDebugIdentity("user-alice", "ALICE@example.com")
	membership, err := alice.AcceptInvite(t.Context(), minted.Token, nil)
	require.NoError(t, err)
	require.Equal(t, "user-alice", membership.UserID)

	// The invite is now consumed for everyone else
	preview, err = client.PreviewInvite(t.Context(), minted.Token)
	require.NoError(t, err)
	require.Equal(t, "consumed", preview.State)
}

// TestAcceptInviteIdempotent verifies that redeeming an invite for a league
// the caller already belongs to succeeds without consuming a use.
func TestAcceptInviteIdempotent(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)
	owner := client.WithDebugIdentity(ownerUserID, ownerEmail)

	league := createLeague(t, owner, "Repeat Joiners")

	minted, err := owner.MintInvite(t.Context(), league.ID, leaguesdk.MintInviteRequest{})
	require.NoError(t, err)

	joiner := client.WithDebugIdentity("user-joiner", "joiner@example.com")

	first, err := joiner.AcceptInvite(t.Context(), minted.Token, &leaguesdk.AcceptInviteRequest{
		TeamName: "Here Again",
	})
	require.NoError(t, err)

	// Second accept returns the existing membership untouched
	second, err := joiner.AcceptInvite(t.Context(), minted.Token, &leaguesdk.AcceptInviteRequest{
		TeamName: "A Different Name",
	})
	require.NoError(t, err)
	require.Equal(t, first.UserID, second.UserID)
	require.NotNil(t, second.TeamName)
	require.Equal(t, "Here Again", *second.TeamName, "Re-accepting should not change the team name")
}

// TestRevokeInvite verifies revocation closes an invite for good and that
// revoking twice is harmless.
func TestRevokeInvite(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)
	owner := client.WithDebugIdentity(ownerUserID, ownerEmail)

	league := createLeague(t, owner, "Short Lived")

	minted, err := owner.MintInvite(t.Context(), league.ID, leaguesdk.MintInviteRequest{})
	require.NoError(t, err)

	require.NoError(t, owner.RevokeInvite(t.Context(), minted.Invite.ID))
	require.NoError(t, owner.RevokeInvite(t.Context(), minted.Invite.ID), "Revoking twice should succeed")

	// The public preview reflects the revocation
	preview, err := client.PreviewInvite(t.Context(), minted.Token)
	require.NoError(t, err)
	require.Equal(t, "revoked", preview.State)

	// Redemption is refused
	joiner := client.WithDebugIdentity("user-late", "late@example.com")
	_, err = joiner.AcceptInvite(t.Context(), minted.Token, nil)
	assertAPIError(t, err, leaguesdk.ErrorCodeInviteRevoked)

	// Revoked invites drop out of the open invite list
	invites, err := owner.ListOpenInvites(t.Context(), league.ID)
	require.NoError(t, err)
	require.Empty(t, invites)
}

// TestMintInvitePermissions verifies that only owners and admins can mint,
// and that plain members are refused.
func TestMintInvitePermissions(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)
	owner := client.WithDebugIdentity(ownerUserID, ownerEmail)

	league := createLeague(t, owner, "Locked Down")

	minted, err := owner.MintInvite(t.Context(), league.ID, leaguesdk.MintInviteRequest{})
	require.NoError(t, err)

	member := client.WithDebugIdentity("user-member", "member@example.com")
	_, err = member.AcceptInvite(t.Context(), minted.Token, nil)
	require.NoError(t, err)

	// A plain member cannot mint
	_, err = member.MintInvite(t.Context(), league.ID, leaguesdk.MintInviteRequest{})
	assertAPIError(t, err, leaguesdk.ErrorCodeForbidden)

	// An outsider is refused too
	outsider := client.WithDebugIdentity("user-outsider", "outsider@example.com")
	_, err = outsider.MintInvite(t.Context(), league.ID, leaguesdk.MintInviteRequest{})
	assertAPIError(t, err, leaguesdk.ErrorCodeForbidden)

	// Promoting the member to admin grants minting rights
	_, err = owner.UpdateMemberRole(t.Context(), league.ID, "user-member", "admin")
	require.NoError(t, err)

	_, err = member.MintInvite(t.Context(), league.ID, leaguesdk.MintInviteRequest{})
	require.NoError(t, err)
}

// TestPreviewUnknownToken verifies that unknown tokens produce a plain 404
// with no hint about whether the token ever existed.
func TestPreviewUnknownToken(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)

	_, err := client.PreviewInvite(t.Context(), "not-a-real-token")
	assertAPIError(t, err, leaguesdk.ErrorCodeNotFound)
}
