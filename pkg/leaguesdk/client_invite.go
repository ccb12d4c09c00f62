package leaguesdk

import (
	"context"
	"net/http"
	"net/url"
)

// MintInvite mints a single invite. Caller must be league owner or admin.
// The returned token is shown exactly once.
func (s *Session) MintInvite(ctx context.Context, leagueID string, req MintInviteRequest) (*MintInviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/leagues/"+url.PathEscape(leagueID)+"/invites", req)
	if err != nil {
		return nil, err
	}

	var out MintInviteResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkMintInvites mints targeted invites for every address in the blob.
// Malformed addresses fail the whole batch with *InvalidAddressesError.
func (s *Session) BulkMintInvites(ctx context.Context, leagueID string, req BulkMintRequest) (*BulkMintResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/leagues/"+url.PathEscape(leagueID)+"/invites/bulk", req)
	if err != nil {
		return nil, err
	}

	var out BulkMintResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOpenInvites lists a league's open invites, oldest first. Caller must
// be league owner or admin.
func (s *Session) ListOpenInvites(ctx context.Context, leagueID string) ([]Invite, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/leagues/"+url.PathEscape(leagueID)+"/invites", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Invites []Invite `json:"invites"`
	}
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Invites, nil
}

// PreviewInvite fetches the public projection of an invite token. No
// authentication required; the target address is never revealed.
func (c *Client) PreviewInvite(ctx context.Context, token string) (*InvitePreview, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/invites/"+url.PathEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var out InvitePreview
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvite redeems an invite token for the session's identity. req may
// be nil. Accepting an invite for a league the caller already belongs to
// succeeds without consuming a use.
func (s *Session) AcceptInvite(ctx context.Context, token string, req *AcceptInviteRequest) (*Membership, error) {
	var body any
	if req != nil {
		body = *req
	} else {
		body = AcceptInviteRequest{}
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites/"+url.PathEscape(token)+"/accept", body)
	if err != nil {
		return nil, err
	}

	var m Membership
	if err := decodeJSON(resp, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

// RevokeInvite revokes an invite by id. Caller must be league owner or
// admin. Revoking an already revoked invite succeeds.
func (s *Session) RevokeInvite(ctx context.Context, inviteID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/invites/"+url.PathEscape(inviteID), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
