package connection

import "github.com/yhoon3002/schedule-bot/internal/model"

// State is the connection snapshot the page renders from. The zero
// value is the pre-first-fetch state: anonymous and uninitialized.
type State struct {
	Authed          bool           `json:"authed"`
	Profile         *model.Profile `json:"profile,omitempty"`
	GoogleConnected bool           `json:"googleConnected"`
	GoogleEmail     string         `json:"googleEmail,omitempty"`
	HasRefreshToken bool           `json:"hasRefreshToken"`
	Busy            bool           `json:"busy"`
	Initialized     bool           `json:"initialized"`
}

// IsReady reports whether the calendar gate is open: the user is
// signed in and their Google Calendar is connected. The grid must not
// fetch or render events otherwise.
func (s State) IsReady() bool {
	return s.Authed && s.GoogleConnected
}

// AuthCode is an OAuth authorization code together with the redirect
// URI it was issued for; the token exchange must present the same URI.
type AuthCode struct {
	Code        string
	RedirectURI string
}
