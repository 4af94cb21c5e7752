// Package authcode provides the authorization-code sources behind
// connection.AuthCodeProvider: the real Google consent-redirect flow
// plus fixed and disabled variants.
package authcode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/pkg/goauth"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
)

const (
	maxPending        = 1024
	pendingTTL        = 10 * time.Minute
	defaultLoginLimit = 2 * time.Minute
)

type waiter struct {
	ch    chan connection.AuthCode
	scope string
}

// Redirect resolves authorization codes through the browser consent
// flow. RequestCode parks a one-shot waiter for the session; the page
// opens the URL from AuthorizeURL in a popup; Google redirects back
// into HandleCallback, which delivers the code to the waiter. A code
// that arrives before anyone waits is parked briefly so the two
// requests may race in either order.
type Redirect struct {
	l       pkgLog.Logger
	oauth   *goauth.Client
	timeout time.Duration

	mu      sync.Mutex
	waiters map[string]*waiter
	// state token → session id, and session id → early code.
	states *expirable.LRU[string, string]
	parked *expirable.LRU[string, connection.AuthCode]
}

// NewRedirect creates the consent-redirect provider. loginTimeout
// bounds how long RequestCode waits for the user to finish the popup;
// zero means two minutes.
func NewRedirect(l pkgLog.Logger, oauth *goauth.Client, loginTimeout time.Duration) *Redirect {
	if loginTimeout <= 0 {
		loginTimeout = defaultLoginLimit
	}
	return &Redirect{
		l:       l,
		oauth:   oauth,
		timeout: loginTimeout,
		waiters: make(map[string]*waiter),
		states:  expirable.NewLRU[string, string](maxPending, nil, pendingTTL),
		parked:  expirable.NewLRU[string, connection.AuthCode](maxPending, nil, pendingTTL),
	}
}

// RequestCode blocks until the consent flow delivers a code for this
// session, the timeout passes, or ctx is cancelled. A second request
// for the same session replaces the first; the replaced waiter times
// out.
func (r *Redirect) RequestCode(ctx context.Context, sessionID, scope string) (connection.AuthCode, error) {
	r.mu.Lock()
	if code, ok := r.parked.Get(sessionID); ok {
		r.parked.Remove(sessionID)
		r.mu.Unlock()
		return code, nil
	}
	w := &waiter{ch: make(chan connection.AuthCode, 1), scope: scope}
	r.waiters[sessionID] = w
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		if r.waiters[sessionID] == w {
			delete(r.waiters, sessionID)
		}
		r.mu.Unlock()
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case code := <-w.ch:
		return code, nil
	case <-timer.C:
		return connection.AuthCode{}, connection.ErrLoginTimeout
	case <-ctx.Done():
		return connection.AuthCode{}, ctx.Err()
	}
}

// AuthorizeURL mints a consent URL for the session. The state token
// ties the eventual callback back to the session id.
func (r *Redirect) AuthorizeURL(sessionID string) string {
	state := uuid.NewString()

	r.mu.Lock()
	scope := ""
	if w, ok := r.waiters[sessionID]; ok {
		scope = w.scope
	}
	r.states.Add(state, sessionID)
	r.mu.Unlock()

	return r.oauth.AuthCodeURL(state, scope)
}

// HandleCallback receives the redirect from Google. The code is
// delivered to the session's waiter, or parked when the waiter has
// not arrived yet. Returns the resolved session id.
func (r *Redirect) HandleCallback(ctx context.Context, state, code string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessionID, ok := r.states.Get(state)
	if !ok {
		return "", fmt.Errorf("unknown or expired state token")
	}
	r.states.Remove(state)

	authCode := connection.AuthCode{Code: code, RedirectURI: r.oauth.RedirectURL()}
	if w, ok := r.waiters[sessionID]; ok {
		w.ch <- authCode
		delete(r.waiters, sessionID)
	} else {
		r.l.Debugf(ctx, "authcode: parking early code for session %s", sessionID)
		r.parked.Add(sessionID, authCode)
	}
	return sessionID, nil
}
