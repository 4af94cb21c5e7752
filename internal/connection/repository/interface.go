package repository

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/model"
)

// StatusSnapshot is the auth backend's answer to a status probe.
// Empty Email and nil Profile mean the field was absent upstream.
type StatusSnapshot struct {
	Connected       bool
	Email           string
	Profile         *model.Profile
	Scope           string
	HasRefreshToken bool
}

// ConnectInput carries one authorization-code exchange.
type ConnectInput struct {
	SessionID   string
	Code        string
	RedirectURI string
}

// AuthRepository talks to whichever backend holds the OAuth tokens:
// the remote scheduling API, or Google directly.
type AuthRepository interface {
	Status(ctx context.Context, sessionID string) (StatusSnapshot, error)
	Connect(ctx context.Context, input ConnectInput) error
	Disconnect(ctx context.Context, sessionID string) error
}
