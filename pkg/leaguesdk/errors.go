package leaguesdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Stable error codes returned by the service.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidAddresses  = "invalid_addresses"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeWrongAccount      = "wrong_account"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeInviteRevoked     = "invite_revoked"
	ErrorCodeInviteConsumed    = "invite_consumed"
	ErrorCodeInviteExpired     = "invite_expired"
	ErrorCodeTeamNameTaken     = "team_name_taken"
	ErrorCodeAlreadyMember     = "already_member"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	// Code is the stable service error code (e.g. "invite_expired")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// InvalidAddressesError is returned by bulk minting when the address blob
// contains malformed entries. The whole batch is rejected.
type InvalidAddressesError struct {
	Addresses []string
}

// Error implements the error interface.
func (e *InvalidAddressesError) Error() string {
	return fmt.Sprintf("invalid addresses: %s", strings.Join(e.Addresses, ", "))
}

// parseErrorResponse turns an HTTP error response into a typed error.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Bearer auth failures carry no body, only WWW-Authenticate.
	if resp.StatusCode == http.StatusUnauthorized && len(body) == 0 {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeUnauthorized,
			Description: resp.Header.Get("WWW-Authenticate"),
		}
	}

	var errResp struct {
		Error            string   `json:"error"`
		ErrorDescription string   `json:"error_description"`
		InvalidAddresses []string `json:"invalid_addresses"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		if errResp.Error == ErrorCodeInvalidAddresses && len(errResp.InvalidAddresses) > 0 {
			return &InvalidAddressesError{Addresses: errResp.InvalidAddresses}
		}
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: generic error from the status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
