package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

type TeamNameHandler struct {
	MembershipService *service.MembershipService
}

// HandleSet godoc
//
//	@Summary		Set Team Name
//	@Description	Claim a team name for the caller's own membership. Names are unique per
//	@Description	league, case-insensitively; resubmitting your current name succeeds.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"League ID"
//	@Param			request	body		leaguesdk.SetTeamNameRequest	true	"Team name"
//	@Success		200		{object}	leaguesdk.Membership
//	@Failure		400		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		401		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		403		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		409		{object}	leaguesdk.APIError	"team_name_taken"
//	@Failure		500		{object}	leaguesdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues/{id}/team-name [put].
func (h *TeamNameHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	var req leaguesdk.SetTeamNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, "invalid JSON body")
		return
	}

	membership, err := h.MembershipService.SetTeamName(r.Context(), r.PathValue("id"), req.TeamName, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMembershipJSON(membership))
}

// HandleAvailability godoc
//
//	@Summary		Check Team Name Availability
//	@Description	Report whether a team name is free in the league, ignoring the caller's
//	@Description	own current name. Members only.
//	@Tags			Members
//	@Produce		json
//	@Param			id		path		string							true	"League ID"
//	@Param			name	query		string							true	"Team name to check"
//	@Success		200		{object}	leaguesdk.TeamNameAvailability	"name, available"
//	@Failure		400		{object}	leaguesdk.APIError				"error, error_description"
//	@Failure		401		{object}	leaguesdk.APIError				"error, error_description"
//	@Failure		403		{object}	leaguesdk.APIError				"error, error_description"
//	@Failure		500		{object}	leaguesdk.APIError				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues/{id}/team-name/availability [get].
func (h *TeamNameHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	name := r.URL.Query().Get("name")
	available, err := h.MembershipService.IsTeamNameAvailable(r.Context(), r.PathValue("id"), name, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leaguesdk.TeamNameAvailability{
		Name:      name,
		Available: available,
	})
}
