package chat

import "context"

// Unavailable is the Assistant wired in when no upstream assistant
// exists (direct-Google mode).
type Unavailable struct{}

var _ Assistant = Unavailable{}

func (Unavailable) Send(ctx context.Context, sessionID, message string, history []Turn) (Reply, error) {
	return Reply{}, ErrAssistantUnavailable
}
