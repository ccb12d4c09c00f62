package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"
)

// writeServiceError maps service sentinels onto the HTTP error surface.
// Every error kind keeps a stable code so clients can branch on it.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidLeagueName),
		errors.Is(err, service.ErrInvalidInviteRequest),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidTeamName),
		errors.Is(err, service.ErrInvalidRole):
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrLeagueNotFound),
		errors.Is(err, service.ErrInviteNotFound),
		errors.Is(err, service.ErrMemberNotFound):
		httpx.WriteError(w, http.StatusNotFound, leaguesdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrWrongAccount):
		httpx.WriteError(w, http.StatusForbidden, leaguesdk.ErrorCodeWrongAccount, err.Error())

	case errors.Is(err, service.ErrNotAMember),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrCannotModifyOwner):
		httpx.WriteError(w, http.StatusForbidden, leaguesdk.ErrorCodeForbidden, err.Error())

	case errors.Is(err, service.ErrInviteRevoked):
		httpx.WriteError(w, http.StatusConflict, leaguesdk.ErrorCodeInviteRevoked, err.Error())

	case errors.Is(err, service.ErrInviteConsumed):
		httpx.WriteError(w, http.StatusConflict, leaguesdk.ErrorCodeInviteConsumed, err.Error())

	case errors.Is(err, service.ErrTeamNameTaken):
		httpx.WriteError(w, http.StatusConflict, leaguesdk.ErrorCodeTeamNameTaken, err.Error())

	case errors.Is(err, service.ErrInviteExpired):
		httpx.WriteError(w, http.StatusGone, leaguesdk.ErrorCodeInviteExpired, err.Error())

	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, leaguesdk.ErrorCodeServerError, "internal server error")
	}
}
