package http

import (
	"net/http"

	"github.com/aussiebroadwan/leaguehub/internal/league/store"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint checking critical dependencies (database)
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	leaguesdk.HealthResponse	"status, checks"
//	@Failure		503	{object}	leaguesdk.HealthResponse	"status, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &leaguesdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := leaguesdk.HealthResponse{
			Status: overallStatus,
			Checks: checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
