package league_test

import (
	"testing"

	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
	"github.com/stretchr/testify/require"
)

// joinViaInvite mints an open invite and accepts it as the given identity.
func joinViaInvite(t *testing.T, owner *leaguesdk.Session, joiner *leaguesdk.Session, leagueID string) *leaguesdk.Membership {
	t.Helper()

	minted, err := owner.MintInvite(t.Context(), leagueID, leaguesdk.MintInviteRequest{})
	require.NoError(t, err)

	membership, err := joiner.AcceptInvite(t.Context(), minted.Token, nil)
	require.NoError(t, err)

	return membership
}

// TestTeamNameUniqueness verifies team names are claimed first-come
// first-served with a case-insensitive comparison.
func TestTeamNameUniqueness(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)
	owner := client.WithDebugIdentity(ownerUserID, ownerEmail)

	league := createLeague(t, owner, "Name Squatters")

	alice := client.WithDebugIdentity("user-alice", "alice@example.com")
	bob := client.WithDebugIdentity("user-bob", "bob@example.com")
	joinViaInvite(t, owner, alice, league.ID)
	joinViaInvite(t, owner, bob, league.ID)

	// Alice claims a name
	membership, err := alice.SetTeamName(t.Context(), league.ID, "Thunder Cats")
	require.NoError(t, err)
	require.NotNil(t, membership.TeamName)
	require.Equal(t, "Thunder Cats", *membership.TeamName)

	// Bob cannot take it, in any casing
	_, err = bob.SetTeamName(t.Context(), league.ID, "thunder cats")
	assertAPIError(t, err, leaguesdk.ErrorCodeTeamNameTaken)

	// The availability endpoint agrees
	avail, err := bob.CheckTeamName(t.Context(), league.ID, "Thunder Cats")
	require.NoError(t, err)
	require.False(t, avail.Available)

	avail, err = bob.CheckTeamName(t.Context(), league.ID, "Lightning Dogs")
	require.NoError(t, err)
	require.True(t, avail.Available)

	// Alice renames, freeing the old name for Bob
	_, err = alice.SetTeamName(t.Context(), league.ID, "Storm Chasers")
	require.NoError(t, err)

	_, err = bob.SetTeamName(t.Context(), league.ID, "Thunder Cats")
	require.NoError(t, err)
}

// TestRoleManagement verifies promotion, demotion, and the owner's
// protected position.
func TestRoleManagement(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)
	owner := client.WithDebugIdentity(ownerUserID, ownerEmail)

	league := createLeague(t, owner, "Chain Of Command")

	alice := client.WithDebugIdentity("user-alice", "alice@example.com")
	joinViaInvite(t, owner, alice, league.ID)

	// Owner promotes Alice to admin
	updated, err := owner.UpdateMemberRole(t.Context(), league.ID, "user-alice", "admin")
	require.NoError(t, err)
	require.Equal(t, "admin", updated.Role)

	// The owner role cannot be granted
	_, err = owner.UpdateMemberRole(t.Context(), league.ID, "user-alice", "owner")
	assertAPIError(t, err, leaguesdk.ErrorCodeInvalidRequest)

	// The owner cannot be demoted, even by an admin
	_, err = alice.UpdateMemberRole(t.Context(), league.ID, ownerUserID, "member")
	assertAPIError(t, err, leaguesdk.ErrorCodeForbidden)

	// Nor removed
	err = alice.RemoveMember(t.Context(), league.ID, ownerUserID)
	assertAPIError(t, err, leaguesdk.ErrorCodeForbidden)
}

// TestRemoveMemberAndRejoin verifies a removed member loses access but can
// come back with a fresh invite.
func TestRemoveMemberAndRejoin(t *testing.T) {
	baseURL, cleanup := setupLeagueContainer(t)
	defer cleanup()

	client := leaguesdk.NewClient(baseURL)
	owner := client.WithDebugIdentity(ownerUserID, ownerEmail)

	league := createLeague(t, owner, "Revolving Door")

	alice := client.WithDebugIdentity("user-alice", "alice@example.com")
	joinViaInvite(t, owner, alice, league.ID)

	require.NoError(t, owner.RemoveMember(t.Context(), league.ID, "user-alice"))

	// Alice can no longer see the roster
	_, err := alice.ListMembers(t.Context(), league.ID)
	assertAPIError(t, err, leaguesdk.ErrorCodeForbidden)

	// A fresh invite lets her back in
	membership := joinViaInvite(t, owner, alice, league.ID)
	require.Equal(t, "member", membership.Role)

	members, err := owner.ListMembers(t.Context(), league.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
}
