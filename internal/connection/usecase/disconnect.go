package usecase

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/connection"
)

// Disconnect revokes the stored tokens at the backend, then refetches
// status. Busy is cleared in the deferred finalizer.
func (uc *implUseCase) Disconnect(ctx context.Context) error {
	uc.setBusy(true)
	defer uc.setBusy(false)

	if err := uc.repo.Disconnect(ctx, uc.ref.SessionID()); err != nil {
		uc.l.Errorf(ctx, "connection.Disconnect: %v", err)
		return err
	}
	uc.FetchStatus(ctx)
	return nil
}

// Logout clears local state and the persisted session identifier. No
// backend call: the server-side tokens outlive the session id that
// pointed at them.
func (uc *implUseCase) Logout() {
	uc.ref.Reset()

	uc.mu.Lock()
	prevReady := uc.state.IsReady()
	uc.state = connection.State{Initialized: true}
	watchers := uc.watcherList()
	uc.mu.Unlock()

	if prevReady {
		for _, fn := range watchers {
			fn(false)
		}
	}
}
