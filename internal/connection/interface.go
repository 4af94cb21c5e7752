package connection

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// FetchStatus refreshes the snapshot from the auth backend and
	// returns it. Initialized is set in the returned state even when
	// the fetch fails, so a dead backend leaves the page anonymous
	// instead of stuck on a loading screen.
	FetchStatus(ctx context.Context) State

	// RequestAuthorizationCode obtains an OAuth code for the given
	// scope set. Precondition: the caller must invoke this directly
	// from the user's click flow, since the provider opens a consent
	// popup and browsers block popups outside a user gesture. Fails with
	// ErrProviderNotReady when no provider is wired.
	RequestAuthorizationCode(ctx context.Context, scope string) (AuthCode, error)

	// LoginAndConnect runs the full connect flow: request a code for
	// identity plus calendar scope, exchange it at the backend, then
	// refetch status. Returns the resulting GoogleConnected value;
	// every failure is logged and collapsed to false. Busy is held for
	// the duration.
	LoginAndConnect(ctx context.Context) bool

	// Disconnect revokes the stored tokens at the backend and
	// refetches status. Busy is held for the duration.
	Disconnect(ctx context.Context) error

	// Logout clears local state and the persisted session identifier
	// without calling the backend. A fresh identifier is minted on the
	// next use.
	Logout()

	// State returns the current snapshot without touching the network.
	State() State

	// Watch registers fn to run whenever IsReady flips. The returned
	// cancel removes the registration.
	Watch(fn func(ready bool)) (cancel func())
}

// AuthCodeProvider obtains an OAuth authorization code for a session.
// Implementations decide how the user consents (redirect flow, a
// pre-issued code for tests).
type AuthCodeProvider interface {
	RequestCode(ctx context.Context, sessionID, scope string) (AuthCode, error)
}
