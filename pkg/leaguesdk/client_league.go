package leaguesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateLeague creates a league with the caller as owner.
func (s *Session) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*League, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/leagues", req)
	if err != nil {
		return nil, err
	}

	var league League
	if err := decodeJSON(resp, &league, http.StatusCreated); err != nil {
		return nil, err
	}
	return &league, nil
}

// ListMembers lists the members of a league. Caller must be a member.
func (s *Session) ListMembers(ctx context.Context, leagueID string) ([]Membership, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/leagues/"+url.PathEscape(leagueID)+"/members", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Members []Membership `json:"members"`
	}
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Members, nil
}

// UpdateMemberRole changes a member's role. Caller must be owner or admin.
func (s *Session) UpdateMemberRole(ctx context.Context, leagueID, userID, role string) (*Membership, error) {
	path := fmt.Sprintf("/v1/leagues/%s/members/%s", url.PathEscape(leagueID), url.PathEscape(userID))
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, path, UpdateRoleRequest{Role: role})
	if err != nil {
		return nil, err
	}

	var m Membership
	if err := decodeJSON(resp, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveMember removes a member from a league. Caller must be owner or admin.
func (s *Session) RemoveMember(ctx context.Context, leagueID, userID string) error {
	path := fmt.Sprintf("/v1/leagues/%s/members/%s", url.PathEscape(leagueID), url.PathEscape(userID))
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SetTeamName sets the caller's team name in a league.
func (s *Session) SetTeamName(ctx context.Context, leagueID, teamName string) (*Membership, error) {
	path := "/v1/leagues/" + url.PathEscape(leagueID) + "/team-name"
	resp, err := s.doAuthRequest(ctx, http.MethodPut, path, SetTeamNameRequest{TeamName: teamName})
	if err != nil {
		return nil, err
	}

	var m Membership
	if err := decodeJSON(resp, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

// CheckTeamName reports whether a team name is available in a league.
func (s *Session) CheckTeamName(ctx context.Context, leagueID, name string) (*TeamNameAvailability, error) {
	path := "/v1/leagues/" + url.PathEscape(leagueID) + "/team-name/availability?name=" + url.QueryEscape(name)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out TeamNameAvailability
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
