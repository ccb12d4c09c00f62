package domain

import "strings"

// Identity is the authenticated caller as reported by the external auth
// provider. The service never stores credentials; it only records user IDs.
type Identity struct {
	UserID string
	Email  string
}

// EmailMatches compares a targeted invite address against the identity's
// verified email, case-insensitively.
func (id Identity) EmailMatches(addr string) bool {
	return strings.EqualFold(strings.TrimSpace(id.Email), strings.TrimSpace(addr))
}
