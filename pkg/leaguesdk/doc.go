/*
Package leaguesdk provides a typed HTTP client for the LeagueHub service.

# Overview

The SDK wraps the LeagueHub REST API: creating leagues, minting and revoking
invites, redeeming invite tokens, and managing memberships. Authentication is
delegated to an external identity provider; the SDK just carries whatever
bearer token that provider issued.

	client := leaguesdk.NewClient("https://league.example.com")

	// Public endpoints need no identity
	preview, err := client.PreviewInvite(ctx, token)

	// Authenticated endpoints take a Session
	session := client.WithBearerToken(accessToken)
	league, err := session.CreateLeague(ctx, leaguesdk.CreateLeagueRequest{Name: "Tipping 2026"})

# Debug identities

Deployments running with static header auth (dev and container tests) accept
an identity via headers instead of a JWT:

	session := client.WithDebugIdentity("user-1", "alice@example.com")

# Error Handling

Non-2xx responses are returned as *APIError carrying the HTTP status and the
service's stable error code. Bulk minting with malformed addresses returns
*InvalidAddressesError listing the offending inputs.

	_, err := session.AcceptInvite(ctx, token, nil)
	var apiErr *leaguesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == leaguesdk.ErrorCodeWrongAccount {
		// invite was for a different email address
	}
*/
package leaguesdk
