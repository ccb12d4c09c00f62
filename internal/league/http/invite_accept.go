package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

type InviteAcceptHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invite
//	@Description	Redeem an invite token, joining its league as a member. A team name may
//	@Description	be claimed in the same step. Accepting an invite for a league the caller
//	@Description	already belongs to succeeds without consuming a use.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string							true	"Invite token"
//	@Param			request	body		leaguesdk.AcceptInviteRequest	false	"Optional team name"
//	@Success		200		{object}	leaguesdk.Membership
//	@Failure		400		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		401		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		403		{object}	leaguesdk.APIError	"wrong_account"
//	@Failure		404		{object}	leaguesdk.APIError	"not_found"
//	@Failure		409		{object}	leaguesdk.APIError	"invite_revoked, invite_consumed, team_name_taken"
//	@Failure		410		{object}	leaguesdk.APIError	"invite_expired"
//	@Failure		500		{object}	leaguesdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/{token}/accept [post].
func (h *InviteAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	// The body is optional; an empty body means no team name.
	var req leaguesdk.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, "invalid JSON body")
		return
	}

	membership, err := h.InviteService.RedeemInvite(r.Context(), r.PathValue("token"), identity, req.TeamName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMembershipJSON(membership))
}
