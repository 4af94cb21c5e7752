package usecase

import (
	"context"

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
	createFunc func(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error)
	updateFunc func(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error)
	deleteFunc func(ctx context.Context, opt repository.WriteOptions) error

	createCalls int
	updateCalls int
	deleteCalls int
	lastOpt     repository.WriteOptions
	lastDraft   event.Draft
}

func (m *mockEventRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]event.Wire, error) {
	return nil, nil
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
	m.createCalls++
	m.lastOpt = opt
	m.lastDraft = draft
	if m.createFunc == nil {
		return event.Wire{ID: "created"}, nil
	}
	return m.createFunc(ctx, opt, draft)
}

func (m *mockEventRepo) UpdateEvent(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
	m.updateCalls++
	m.lastOpt = opt
	m.lastDraft = draft
	if m.updateFunc == nil {
		return event.Wire{ID: opt.EventID}, nil
	}
	return m.updateFunc(ctx, opt, draft)
}

func (m *mockEventRepo) PatchEventTimes(ctx context.Context, opt repository.WriteOptions, patch event.TimePatch) (event.Wire, error) {
	return event.Wire{}, nil
}

func (m *mockEventRepo) DeleteEvent(ctx context.Context, opt repository.WriteOptions) error {
	m.deleteCalls++
	m.lastOpt = opt
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(ctx, opt)
}

// Mock grid refresher.
type mockRefresher struct {
	refreshCalls int
}

func (m *mockRefresher) RequestRefresh(ctx context.Context) { m.refreshCalls++ }

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

func newTestEditor(repo *mockEventRepo, fresh *mockRefresher) *implUseCase {
	return New(&mockLogger{}, repo, &mockRef{sid: "sid-1"}, seoulClock(), fresh)
}
