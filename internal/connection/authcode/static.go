package authcode

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/connection"
)

// Static hands out one fixed code, for tests and scripted flows.
type Static struct {
	Code        string
	RedirectURI string
}

func (s Static) RequestCode(ctx context.Context, sessionID, scope string) (connection.AuthCode, error) {
	return connection.AuthCode{Code: s.Code, RedirectURI: s.RedirectURI}, nil
}

// Disabled is wired when no OAuth credentials are configured. It fails
// fast so a click gets an immediate error instead of a hanging popup.
type Disabled struct{}

func (Disabled) RequestCode(ctx context.Context, sessionID, scope string) (connection.AuthCode, error) {
	return connection.AuthCode{}, connection.ErrProviderNotReady
}
