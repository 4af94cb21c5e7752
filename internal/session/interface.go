package session

// Ref resolves the session identifier attached to every backend call.
// Implementations must be safe for concurrent use.
type Ref interface {
	// SessionID returns the current identifier, minting one if needed.
	SessionID() string

	// Reset forgets the current identifier so the next SessionID call
	// mints a fresh one. Used by logout.
	Reset()
}
