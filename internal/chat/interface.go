package chat

import "context"

//go:generate mockery --name Assistant

// Assistant relays the page's chat box to the scheduling assistant.
// Only the remote backend has one; the direct-Google mode runs without
// an assistant and fails every Send with ErrAssistantUnavailable.
type Assistant interface {
	Send(ctx context.Context, sessionID, message string, history []Turn) (Reply, error)
}
