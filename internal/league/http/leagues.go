package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

type LeagueCreateHandler struct {
	LeagueService *service.LeagueService
}

// ServeHTTP godoc
//
//	@Summary		Create League
//	@Description	Create a new league. The caller becomes its owner and first member.
//	@Tags			Leagues
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leaguesdk.CreateLeagueRequest	true	"League details"
//	@Success		201		{object}	leaguesdk.League
//	@Failure		400		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		401		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		500		{object}	leaguesdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues [post].
func (h *LeagueCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	var req leaguesdk.CreateLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, "invalid JSON body")
		return
	}

	league, err := h.LeagueService.CreateLeague(r.Context(), req.Name, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toLeagueJSON(league))
}
