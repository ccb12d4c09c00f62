package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

type MembersHandler struct {
	MembershipService *service.MembershipService
}

type memberListResponse struct {
	Members []leaguesdk.Membership `json:"members"`
}

// HandleList godoc
//
//	@Summary		List Members
//	@Description	List a league's members, oldest first. Members only.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		string				true	"League ID"
//	@Success		200	{object}	memberListResponse	"members"
//	@Failure		401	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		403	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		404	{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		500	{object}	leaguesdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues/{id}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	members, err := h.MembershipService.ListMembers(r.Context(), r.PathValue("id"), identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := memberListResponse{Members: make([]leaguesdk.Membership, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, toMembershipJSON(m))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdateRole godoc
//
//	@Summary		Change Member Role
//	@Description	Change a member's role between admin and member. The owner role can
//	@Description	neither be granted nor taken away. Owner/admin only.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"League ID"
//	@Param			userID	path		string						true	"Target user ID"
//	@Param			request	body		leaguesdk.UpdateRoleRequest	true	"New role"
//	@Success		200		{object}	leaguesdk.Membership
//	@Failure		400		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		401		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		403		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		404		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		500		{object}	leaguesdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues/{id}/members/{userID} [patch].
func (h *MembersHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	var req leaguesdk.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, leaguesdk.ErrorCodeInvalidRequest, "invalid JSON body")
		return
	}

	membership, err := h.MembershipService.UpdateRole(
		r.Context(),
		r.PathValue("id"),
		r.PathValue("userID"),
		domain.Role(req.Role),
		identity,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMembershipJSON(membership))
}

// HandleRemove godoc
//
//	@Summary		Remove Member
//	@Description	Remove a member from a league. The owner cannot be removed.
//	@Description	Owner/admin only.
//	@Tags			Members
//	@Param			id		path	string	true	"League ID"
//	@Param			userID	path	string	true	"Target user ID"
//	@Success		204		"removed"
//	@Failure		401		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		403		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		404		{object}	leaguesdk.APIError	"error, error_description"
//	@Failure		500		{object}	leaguesdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leagues/{id}/members/{userID} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, leaguesdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	err := h.MembershipService.RemoveMember(r.Context(), r.PathValue("id"), r.PathValue("userID"), identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
