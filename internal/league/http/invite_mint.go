package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

type InviteMintHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Mint Invite
//	@Description	Mint a single invite for a league. An empty email creates an open
//	@Description	(shareable) invite; a non-empty email binds the invite to that address.
//	@Description	The raw token is returned exactly once. Owner/admin only.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"League ID"
//	@Param			request	body		leaguesdk.MintInviteRequest		true	"Invite parameters"
//	@Success		201		{object}	leaguesdk.MintInviteResponse	"invite, token, accept_url"
//	@Failure		400		{object}	leaguesdk.APIError				"error, error_description"
//	@Failure		401		{object}	leaguesdk.APIError				"error, error_description"
//	@Failure		403		{object}	leaguesdk.APIError				"error, error_description"
//	@Failure		404		{object}	leaguesdk.APIError				"error, error_description"
//	@Failure		500		{object}	leaguesdk.APIError				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues/{id}/invites [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}
	leagueID := r.PathValue("id")

	var req leaguesdk.MintInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, "invalid JSON body")
		return
	}
	if req.ExpiresIn < 0 {
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, "expires_in must not be negative")
		return
	}

	ttl := time.Duration(req.ExpiresIn) * time.Second
	invite, token, err := h.InviteService.MintInvite(r.Context(), leagueID, req.Email, ttl, req.MaxUses, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, leaguesdk.MintInviteResponse{
		Invite:    toInviteJSON(invite, time.Now().UTC()),
		Token:     token,
		AcceptURL: h.InviteService.AcceptURL(token),
	})
}
