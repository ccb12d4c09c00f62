package http

import (
	"net/http"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
)

type InvitePreviewHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Preview Invite
//	@Description	Public projection of an invite token for a landing page: league name,
//	@Description	whether the invite is targeted (the address itself is never revealed),
//	@Description	expiry and lifecycle state. Terminal states render as state, not error.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string					true	"Invite token"
//	@Success		200		{object}	leaguesdk.InvitePreview	"league_id, league_name, targeted, state, expires_at"
//	@Failure		404		{object}	leaguesdk.APIError		"error, error_description"
//	@Failure		500		{object}	leaguesdk.APIError		"error, error_description"
//	@Router			/v1/invites/{token} [get].
func (h *InvitePreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	preview, err := h.InviteService.PreviewInvite(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPreviewJSON(preview))
}
