package connection

import "errors"

var (
	// ErrProviderNotReady means no authorization-code provider is
	// wired (google mode without OAuth credentials configured).
	ErrProviderNotReady = errors.New("authorization provider not ready")

	// ErrLoginTimeout means the consent flow did not deliver a code in
	// time; the user most likely closed the popup.
	ErrLoginTimeout = errors.New("login timed out waiting for authorization code")
)
