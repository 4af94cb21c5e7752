package usecase

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/editor"
	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
	"github.com/yhoon3002/schedule-bot/pkg/localtime"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock event repository with function fields and call recorders.
type mockEventRepo struct {
	listFunc  func(ctx context.Context, opt repository.ListEventsOptions) ([]event.Wire, error)
	patchFunc func(ctx context.Context, opt repository.WriteOptions, patch event.TimePatch) (event.Wire, error)

	listCalls  int
	patchCalls int
	lastList   repository.ListEventsOptions
	lastWrite  repository.WriteOptions
	lastPatch  event.TimePatch
}

func (m *mockEventRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]event.Wire, error) {
	m.listCalls++
	m.lastList = opt
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(ctx, opt)
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
	return event.Wire{}, nil
}

func (m *mockEventRepo) UpdateEvent(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
	return event.Wire{}, nil
}

func (m *mockEventRepo) PatchEventTimes(ctx context.Context, opt repository.WriteOptions, patch event.TimePatch) (event.Wire, error) {
	m.patchCalls++
	m.lastWrite = opt
	m.lastPatch = patch
	if m.patchFunc == nil {
		return event.Wire{ID: opt.EventID}, nil
	}
	return m.patchFunc(ctx, opt, patch)
}

func (m *mockEventRepo) DeleteEvent(ctx context.Context, opt repository.WriteOptions) error {
	return nil
}

// Mock grid port with call recorders.
type mockGrid struct {
	events         []event.Event
	setCalls       int
	clearCalls     int
	clearSelCalls  int
	reportedErrors []error
}

func (m *mockGrid) SetEvents(events []event.Event) {
	m.setCalls++
	m.events = events
}

func (m *mockGrid) Clear() {
	m.clearCalls++
	m.events = nil
}

func (m *mockGrid) ClearSelection() { m.clearSelCalls++ }

func (m *mockGrid) ReportError(err error) { m.reportedErrors = append(m.reportedErrors, err) }

// Mock connection gate.
type mockGate struct {
	state connection.State
}

func (m *mockGate) State() connection.State { return m.state }

func openGate() *mockGate {
	return &mockGate{state: connection.State{Authed: true, GoogleConnected: true, Initialized: true}}
}

// Mock editor opener with call recorders.
type mockOpener struct {
	createCalls int
	editCalls   int
	lastCreate  editor.OpenCreateInput
	lastEdit    event.Event
}

func (m *mockOpener) OpenCreate(in editor.OpenCreateInput) {
	m.createCalls++
	m.lastCreate = in
}

func (m *mockOpener) OpenEdit(ev event.Event) {
	m.editCalls++
	m.lastEdit = ev
}

// Mock session ref.
type mockRef struct {
	sid string
}

func (m *mockRef) SessionID() string { return m.sid }
func (m *mockRef) Reset()            {}

// seoulClock builds the clock the tests share. Asia/Seoul ships with
// the tz database, so a failure here means a broken test environment.
func seoulClock() *localtime.Clock {
	clock, err := localtime.NewClock("Asia/Seoul")
	if err != nil {
		panic(err)
	}
	return clock
}

func newTestController(repo *mockEventRepo, grid *mockGrid, gate *mockGate) *implUseCase {
	return New(&mockLogger{}, repo, grid, gate, &mockRef{sid: "sid-1"}, seoulClock(), calendar.ListFlags{})
}
