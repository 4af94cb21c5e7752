package usecase

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/connection"
)

// FetchStatus refreshes the snapshot from the auth backend. A failed
// fetch leaves the previous fields untouched; Initialized is forced in
// the deferred finalizer on every path so the page can never stick on
// its loading state.
func (uc *implUseCase) FetchStatus(ctx context.Context) (st connection.State) {
	defer func() {
		uc.mu.Lock()
		uc.state.Initialized = true
		st = uc.state
		uc.mu.Unlock()
	}()

	snap, err := uc.repo.Status(ctx, uc.ref.SessionID())
	if err != nil {
		uc.l.Errorf(ctx, "connection.FetchStatus: %v", err)
		return
	}

	uc.mu.Lock()
	prevReady := uc.state.IsReady()
	uc.state.Authed = snap.Email != "" || snap.Profile != nil
	uc.state.Profile = snap.Profile
	uc.state.GoogleConnected = snap.Connected
	uc.state.GoogleEmail = snap.Email
	uc.state.HasRefreshToken = snap.HasRefreshToken
	nowReady := uc.state.IsReady()
	watchers := uc.watcherList()
	uc.mu.Unlock()

	if nowReady != prevReady {
		for _, fn := range watchers {
			fn(nowReady)
		}
	}
	return
}
