package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

type InviteListHandler struct {
	InviteService *service.InviteService
}

type inviteListResponse struct {
	Invites []leaguesdk.Invite `json:"invites"`
}

// ServeHTTP godoc
//
//	@Summary		List Open Invites
//	@Description	List a league's open invites, oldest first. Revoked, expired and
//	@Description	exhausted invites are excluded. Owner/admin only.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string				true	"League ID"
//	@Success		200	{object}	inviteListResponse	"invites"
//	@Failure		401	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		403	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		404	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		500	{object}	leaguesdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues/{id}/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	invites, err := h.InviteService.ListOpenInvites(r.Context(), r.PathValue("id"), identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	now := time.Now().UTC()
	resp := inviteListResponse{Invites: make([]leaguesdk.Invite, 0, len(invites))}
	for _, inv := range invites {
		resp.Invites = append(resp.Invites, toInviteJSON(inv, now))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
