package chat

import "errors"

// ErrAssistantUnavailable means the running backend mode has no
// assistant to talk to.
var ErrAssistantUnavailable = errors.New("assistant not available")
