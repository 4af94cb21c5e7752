// Package goauth wraps the Google OAuth 2.0 authorization-code flow
// used to connect a session to Google Calendar: building consent URLs,
// exchanging codes, fetching the OpenID profile, revoking tokens, and
// persisting per-session token records.
package goauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// ScopeCalendar grants full calendar read/write access.
	ScopeCalendar = "https://www.googleapis.com/auth/calendar"

	userinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	revokeURL   = "https://oauth2.googleapis.com/revoke"
)

// DefaultScopes is the full scope set requested on connect: identity
// plus calendar.
var DefaultScopes = []string{"openid", "email", "profile", ScopeCalendar}

// ErrNoToken is returned when a session has no stored token record.
var ErrNoToken = errors.New("no stored token for session")

// Config carries the OAuth application credentials. Endpoint,
// UserinfoURL and RevokeURL default to Google's and exist as overrides
// for tests.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	Endpoint    oauth2.Endpoint
	UserinfoURL string
	RevokeURL   string
}

// Userinfo is the OpenID Connect profile subset the service consumes.
type Userinfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Client performs the OAuth flows against Google.
type Client struct {
	cfg         *oauth2.Config
	userinfoURL string
	revokeURL   string
	httpClient  *http.Client
}

// New builds a client from cfg, filling Google defaults for anything
// left zero.
func New(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" && endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	c := &Client{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		userinfoURL: cfg.UserinfoURL,
		revokeURL:   cfg.RevokeURL,
		httpClient:  http.DefaultClient,
	}
	if c.userinfoURL == "" {
		c.userinfoURL = userinfoURL
	}
	if c.revokeURL == "" {
		c.revokeURL = revokeURL
	}
	return c
}

// RedirectURL returns the consent-flow redirect target.
func (c *Client) RedirectURL() string {
	return c.cfg.RedirectURL
}

// AuthCodeURL builds the consent URL. Offline access plus forced
// consent so Google issues a refresh token on every connect. A
// non-empty scope overrides the configured scope set for this URL
// only.
func (c *Client) AuthCodeURL(state, scope string) string {
	opts := []oauth2.AuthCodeOption{
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	}
	if scope != "" {
		opts = append(opts, oauth2.SetAuthURLParam("scope", scope))
	}
	return c.cfg.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for tokens. A non-empty
// redirectURI overrides the configured one; it must match the URI the
// code was issued for or Google rejects the exchange.
func (c *Client) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	opts := []oauth2.AuthCodeOption{}
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}
	tok, err := c.cfg.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}
	return tok, nil
}

// TokenSource wraps t with the client credentials so expired access
// tokens are refreshed transparently.
func (c *Client) TokenSource(ctx context.Context, t *oauth2.Token) oauth2.TokenSource {
	return c.cfg.TokenSource(ctx, t)
}

// Userinfo fetches the OpenID profile for the token's user.
func (c *Client) Userinfo(ctx context.Context, ts oauth2.TokenSource) (Userinfo, error) {
	tok, err := ts.Token()
	if err != nil {
		return Userinfo{}, fmt.Errorf("userinfo token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userinfoURL, nil)
	if err != nil {
		return Userinfo{}, err
	}
	tok.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Userinfo{}, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Userinfo{}, fmt.Errorf("userinfo error %d", resp.StatusCode)
	}
	var info Userinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Userinfo{}, fmt.Errorf("userinfo decode: %w", err)
	}
	return info, nil
}

// Revoke invalidates an access token at Google. Callers treat failures
// as best-effort: local state is cleared regardless.
func (c *Client) Revoke(ctx context.Context, accessToken string) error {
	u := c.revokeURL + "?" + url.Values{"token": {accessToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoke request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("revoke error %d", resp.StatusCode)
	}
	return nil
}

// HasScope reports whether a space-separated scope string grants want.
// Containment, not exact field match: calendar.readonly satisfies a
// calendar check.
func HasScope(scope, want string) bool {
	return strings.Contains(scope, want)
}
