package page

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/chat"
	"github.com/yhoon3002/schedule-bot/internal/connection/authcode"
	connRepo "github.com/yhoon3002/schedule-bot/internal/connection/repository"
	"github.com/yhoon3002/schedule-bot/internal/event"
	eventRepo "github.com/yhoon3002/schedule-bot/internal/event/repository"
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

// Mock auth repository with function fields.
type mockAuthRepo struct {
	statusFunc func(ctx context.Context, sessionID string) (connRepo.StatusSnapshot, error)

	statusCalls int
}

func (m *mockAuthRepo) Status(ctx context.Context, sessionID string) (connRepo.StatusSnapshot, error) {
	m.statusCalls++
	if m.statusFunc == nil {
		return connRepo.StatusSnapshot{}, nil
	}
	return m.statusFunc(ctx, sessionID)
}

func (m *mockAuthRepo) Connect(ctx context.Context, input connRepo.ConnectInput) error {
	return nil
}

func (m *mockAuthRepo) Disconnect(ctx context.Context, sessionID string) error {
	return nil
}

// Mock event repository with function fields and call recorders.
type mockEventRepo struct {
	listFunc func(ctx context.Context, opt eventRepo.ListEventsOptions) ([]event.Wire, error)

	listCalls int
	lastList  eventRepo.ListEventsOptions
}

func (m *mockEventRepo) ListEvents(ctx context.Context, opt eventRepo.ListEventsOptions) ([]event.Wire, error) {
	m.listCalls++
	m.lastList = opt
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(ctx, opt)
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, opt eventRepo.WriteOptions, draft event.Draft) (event.Wire, error) {
	return event.Wire{}, nil
}

func (m *mockEventRepo) UpdateEvent(ctx context.Context, opt eventRepo.WriteOptions, draft event.Draft) (event.Wire, error) {
	return event.Wire{}, nil
}

func (m *mockEventRepo) PatchEventTimes(ctx context.Context, opt eventRepo.WriteOptions, patch event.TimePatch) (event.Wire, error) {
	return event.Wire{ID: opt.EventID}, nil
}

func (m *mockEventRepo) DeleteEvent(ctx context.Context, opt eventRepo.WriteOptions) error {
	return nil
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

func newTestDeps(auth *mockAuthRepo, events *mockEventRepo) Deps {
	return Deps{
		Logger:    &mockLogger{},
		AuthRepo:  auth,
		EventRepo: events,
		Codes:     authcode.Static{Code: "code-1", RedirectURI: "http://localhost/cb"},
		Assistant: chat.Unavailable{},
		Provider:  &mockRef{sid: "default-sid"},
		Clock:     seoulClock(),
	}
}
