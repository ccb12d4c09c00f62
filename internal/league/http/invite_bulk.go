package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"
)

type InviteBulkHandler struct {
	InviteService *service.InviteService
}

// bulkErrorResponse is the 400 body for a rejected batch. It extends the
// standard envelope with the offending inputs.
type bulkErrorResponse struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description"`
	InvalidAddresses []string `json:"invalid_addresses"`
}

// ServeHTTP godoc
//
//	@Summary		Bulk Mint Invites
//	@Description	Mint single-use targeted invites for a blob of email addresses separated
//	@Description	by commas, semicolons, newlines or whitespace. Any malformed address
//	@Description	rejects the whole batch; addresses that already have an open invite are
//	@Description	skipped. Owner/admin only.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"League ID"
//	@Param			request	body		leaguesdk.BulkMintRequest	true	"Address blob"
//	@Success		201		{object}	leaguesdk.BulkMintResponse	"created, skipped"
//	@Failure		400		{object}	leaguesdk.APIError			"error, error_description, invalid_addresses"
//	@Failure		401		{object}	leaguesdk.APIError			"error, error_description"
//	@Failure		403		{object}	leaguesdk.APIError			"error, error_description"
//	@Failure		404		{object}	leaguesdk.APIError			"error, error_description"
//	@Failure		500		{object}	leaguesdk.APIError			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues/{id}/invites/bulk [post].
func (h *InviteBulkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}
	leagueID := r.PathValue("id")

	var req leaguesdk.BulkMintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, "invalid JSON body")
		return
	}
	if req.ExpiresIn < 0 {
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, "expires_in must not be negative")
		return
	}

	ttl := time.Duration(req.ExpiresIn) * time.Second
	report, err := h.InviteService.BulkMintInvites(r.Context(), leagueID, req.Addresses, ttl, identity)
	if err != nil {
		var invalidErr *service.InvalidAddressesError
		if errors.As(err, &invalidErr) {
			httpx.WriteJSON(w, http.StatusBadRequest, bulkErrorResponse{
				Error:            leaguesdk.ErrorCodeInvalidAddresses,
				ErrorDescription: "one or more addresses are malformed",
				InvalidAddresses: invalidErr.Addresses,
			})
			return
		}

		// A mid-batch failure leaves already-committed invites standing;
		// log the partial outcome before reporting the failure.
		if len(report.Created) > 0 {
			log.Error("bulk mint failed after partial success",
				"created", len(report.Created),
				"err", err,
			)
		}
		writeServiceError(w, r, err)
		return
	}

	resp := leaguesdk.BulkMintResponse{
		Created: make([]leaguesdk.BulkMintedInvite, 0, len(report.Created)),
		Skipped: report.Skipped,
	}
	for _, created := range report.Created {
		resp.Created = append(resp.Created, leaguesdk.BulkMintedInvite{
			Email:     created.Email,
			InviteID:  created.InviteID,
			Token:     created.Token,
			AcceptURL: created.AcceptURL,
		})
	}

	httpx.WriteJSON(w, http.StatusCreated, resp)
}
