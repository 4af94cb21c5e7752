package usecase

import (
	"sync"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
	"github.com/yhoon3002/schedule-bot/internal/session"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
	"github.com/yhoon3002/schedule-bot/pkg/localtime"
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.EventRepository
	grid  calendar.GridPort
	gate  calendar.Gate
	ref   session.Ref
	clock *localtime.Clock
	flags calendar.ListFlags

	mu       sync.Mutex
	editor   calendar.EditorOpener
	byID     map[string]event.Event
	lastRng  calendar.Range
	hasRange bool
}

var _ calendar.UseCase = &implUseCase{}

// New creates the sync controller. The editor half of the wiring is
// attached afterwards with AttachEditor because the editor itself needs
// the controller as its refresher.
func New(l pkgLog.Logger, repo repository.EventRepository, grid calendar.GridPort, gate calendar.Gate, ref session.Ref, clock *localtime.Clock, flags calendar.ListFlags) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		grid:  grid,
		gate:  gate,
		ref:   ref,
		clock: clock,
		flags: flags,
	}
}

// AttachEditor completes the controller <-> editor cycle. Must be
// called once during wiring, before the page takes traffic.
func (uc *implUseCase) AttachEditor(op calendar.EditorOpener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.editor = op
}

func (uc *implUseCase) opener() calendar.EditorOpener {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.editor
}

// cached looks an event up in the displayed set.
func (uc *implUseCase) cached(eventID string) (event.Event, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	ev, ok := uc.byID[eventID]
	return ev, ok
}
