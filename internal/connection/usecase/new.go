package usecase

import (
	"strings"
	"sync"

	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/connection/repository"
	"github.com/yhoon3002/schedule-bot/internal/session"
	"github.com/yhoon3002/schedule-bot/pkg/goauth"
	"github.com/yhoon3002/schedule-bot/pkg/log"
)

// implUseCase is the private implementation of connection.UseCase. One
// instance owns the connection state for one session.
type implUseCase struct {
	l     log.Logger
	repo  repository.AuthRepository
	codes connection.AuthCodeProvider
	ref   session.Ref
	scope string

	mu        sync.Mutex
	state     connection.State
	watchers  map[int]func(bool)
	nextWatch int
}

var _ connection.UseCase = &implUseCase{}

// New creates a new connection UseCase implementation. An empty scope
// falls back to the full identity-plus-calendar set.
func New(l log.Logger, repo repository.AuthRepository, codes connection.AuthCodeProvider, ref session.Ref, scope string) *implUseCase {
	if scope == "" {
		scope = strings.Join(goauth.DefaultScopes, " ")
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		codes:    codes,
		ref:      ref,
		scope:    scope,
		watchers: make(map[int]func(bool)),
	}
}

// State returns the current snapshot without touching the network.
func (uc *implUseCase) State() connection.State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

func (uc *implUseCase) setBusy(busy bool) {
	uc.mu.Lock()
	uc.state.Busy = busy
	uc.mu.Unlock()
}

// watcherList snapshots the registered watchers. Callers must hold
// uc.mu and must fire the functions only after releasing it.
func (uc *implUseCase) watcherList() []func(bool) {
	fns := make([]func(bool), 0, len(uc.watchers))
	for _, fn := range uc.watchers {
		fns = append(fns, fn)
	}
	return fns
}
