package http

import (
	"net/http"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

type InviteRevokeHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Invite
//	@Description	Revoke an invite so it can no longer be redeemed. Revoking an already
//	@Description	revoked invite succeeds. Owner/admin only.
//	@Tags			Invites
//	@Param			id	path	string	true	"Invite ID"
//	@Success		204	"revoked"
//	@Failure		401	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		403	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		404	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		500	{object}	leaguesdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/{id} [delete].
func (h *InviteRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	if err := h.InviteService.RevokeInvite(r.Context(), r.PathValue("id"), identity); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
