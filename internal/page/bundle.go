// Package page hosts the per-session core bundles behind the
// page-facing JSON API. A bundle wires one session's connection store,
// calendar controller, editor state machine and grid snapshot
// together; the registry keeps one bundle per session identifier and
// ages abandoned ones out.
package page

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	calendarUC "github.com/yhoon3002/schedule-bot/internal/calendar/usecase"
	"github.com/yhoon3002/schedule-bot/internal/chat"
	"github.com/yhoon3002/schedule-bot/internal/connection"
	connRepo "github.com/yhoon3002/schedule-bot/internal/connection/repository"
	connUC "github.com/yhoon3002/schedule-bot/internal/connection/usecase"
	"github.com/yhoon3002/schedule-bot/internal/editor"
	editorUC "github.com/yhoon3002/schedule-bot/internal/editor/usecase"
	eventRepo "github.com/yhoon3002/schedule-bot/internal/event/repository"
	"github.com/yhoon3002/schedule-bot/internal/session"
	"github.com/yhoon3002/schedule-bot/pkg/localtime"
	"github.com/yhoon3002/schedule-bot/pkg/log"
)

// Deps carries the process-wide collaborators every bundle is built
// from. Repositories and the code provider are shared; each bundle
// gets its own use cases and grid.
type Deps struct {
	Logger    log.Logger
	AuthRepo  connRepo.AuthRepository
	EventRepo eventRepo.EventRepository
	Codes     connection.AuthCodeProvider
	Assistant chat.Assistant
	Provider  session.Ref // persisted identifier backing the default bundle
	Clock     *localtime.Clock
	Scope     string // OAuth scope set; empty means the default set
	Flags     calendar.ListFlags
}

// Bundle is one session's wired core set.
type Bundle struct {
	Ref       session.Ref
	Conn      connection.UseCase
	Calendar  calendar.UseCase
	Editor    editor.UseCase
	Assistant chat.Assistant
	Grid      *Grid

	cancelWatch func()
}

// newBundle builds and cross-wires the cores for one session. The
// calendar controller doubles as the editor's refresher, the editor
// doubles as the controller's modal opener, and the connection store's
// readiness feed drives the controller's refetch/clear behavior.
func newBundle(deps Deps, ref session.Ref) *Bundle {
	grid := NewGrid()

	conn := connUC.New(deps.Logger, deps.AuthRepo, deps.Codes, ref, deps.Scope)
	cal := calendarUC.New(deps.Logger, deps.EventRepo, grid, conn, ref, deps.Clock, deps.Flags)
	ed := editorUC.New(deps.Logger, deps.EventRepo, ref, deps.Clock, cal)
	cal.AttachEditor(ed)

	// Readiness flips arrive from whatever goroutine refreshed the
	// status, so they carry no request context.
	cancel := conn.Watch(func(ready bool) {
		cal.OnConnectionChange(context.Background(), ready)
	})

	return &Bundle{
		Ref:         ref,
		Conn:        conn,
		Calendar:    cal,
		Editor:      ed,
		Assistant:   deps.Assistant,
		Grid:        grid,
		cancelWatch: cancel,
	}
}

// close detaches the bundle from the connection store's readiness
// feed. Runs on registry eviction.
func (b *Bundle) close() {
	if b.cancelWatch != nil {
		b.cancelWatch()
	}
}
