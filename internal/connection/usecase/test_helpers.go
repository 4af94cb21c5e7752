package usecase

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/connection/repository"
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

// Mock auth repository with function fields and call counters.
type mockAuthRepo struct {
	statusFunc     func(ctx context.Context, sessionID string) (repository.StatusSnapshot, error)
	connectFunc    func(ctx context.Context, input repository.ConnectInput) error
	disconnectFunc func(ctx context.Context, sessionID string) error

	statusCalls     int
	connectCalls    int
	disconnectCalls int
	lastConnect     repository.ConnectInput
}

func (m *mockAuthRepo) Status(ctx context.Context, sessionID string) (repository.StatusSnapshot, error) {
	m.statusCalls++
	if m.statusFunc == nil {
		return repository.StatusSnapshot{}, nil
	}
	return m.statusFunc(ctx, sessionID)
}

func (m *mockAuthRepo) Connect(ctx context.Context, input repository.ConnectInput) error {
	m.connectCalls++
	m.lastConnect = input
	if m.connectFunc == nil {
		return nil
	}
	return m.connectFunc(ctx, input)
}

func (m *mockAuthRepo) Disconnect(ctx context.Context, sessionID string) error {
	m.disconnectCalls++
	if m.disconnectFunc == nil {
		return nil
	}
	return m.disconnectFunc(ctx, sessionID)
}

// Mock code provider.
type mockCodes struct {
	requestFunc func(ctx context.Context, sessionID, scope string) (connection.AuthCode, error)
	lastScope   string
}

func (m *mockCodes) RequestCode(ctx context.Context, sessionID, scope string) (connection.AuthCode, error) {
	m.lastScope = scope
	if m.requestFunc == nil {
		return connection.AuthCode{}, nil
	}
	return m.requestFunc(ctx, sessionID, scope)
}

// Mock session ref.
type mockRef struct {
	sid        string
	resetCalls int
}

func (m *mockRef) SessionID() string { return m.sid }
func (m *mockRef) Reset()            { m.resetCalls++ }

func connectedSnapshot() repository.StatusSnapshot {
	return repository.StatusSnapshot{
		Connected: true,
		Email:     "a@b.com",
		Scope:     "openid email https://www.googleapis.com/auth/calendar",
	}
}
