package leaguesdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to a LeagueHub deployment. It exposes the unauthenticated
// operations directly and produces Sessions for authenticated ones.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a LeagueHub client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated view of the client. It attaches the caller's
// identity to every request. Sessions are cheap; create one per identity.
type Session struct {
	client *Client

	bearerToken string

	// static-auth deployments only
	debugUserID string
	debugEmail  string
}

// WithBearerToken creates a session that authenticates with a JWT issued by
// the external auth provider.
func (c *Client) WithBearerToken(token string) *Session {
	return &Session{client: c, bearerToken: token}
}

// WithDebugIdentity creates a session for deployments running static header
// auth (dev and container tests). The service rejects these headers in jwks
// mode.
func (c *Client) WithDebugIdentity(userID, email string) *Session {
	return &Session{client: c, debugUserID: userID, debugEmail: email}
}

func (s *Session) applyAuth(req *http.Request) {
	if s.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.bearerToken)
		return
	}
	req.Header.Set("X-Debug-User", s.debugUserID)
	if s.debugEmail != "" {
		req.Header.Set("X-Debug-Email", s.debugEmail)
	}
}
