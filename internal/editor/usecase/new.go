package usecase

import (
	"regexp"
	"sync"

	"github.com/yhoon3002/schedule-bot/internal/editor"
	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
	"github.com/yhoon3002/schedule-bot/internal/session"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
	"github.com/yhoon3002/schedule-bot/pkg/localtime"
)

// emailPattern accepts local-part "@" domain-with-dot shapes. Looser than
// RFC 5322; Google rejects anything truly undeliverable server-side.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// implUseCase is the private implementation of editor.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.EventRepository
	ref   session.Ref
	clock *localtime.Clock
	fresh editor.Refresher

	mu      sync.Mutex
	session editor.Session
	form    event.Form
}

var _ editor.UseCase = &implUseCase{}

// New creates the editor state machine.
func New(l pkgLog.Logger, repo repository.EventRepository, ref session.Ref, clock *localtime.Clock, fresh editor.Refresher) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		ref:   ref,
		clock: clock,
		fresh: fresh,
	}
}

// Snapshot implements editor.UseCase.
func (uc *implUseCase) Snapshot() (editor.Session, event.Form) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	form := uc.form
	form.Attendees = append(make([]string, 0, len(uc.form.Attendees)), uc.form.Attendees...)
	return uc.session, form
}
