package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/connection/repository"
)

func TestLoginAndConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy Path", func(t *testing.T) {
		repo := &mockAuthRepo{
			statusFunc: func(ctx context.Context, sessionID string) (repository.StatusSnapshot, error) {
				return connectedSnapshot(), nil
			},
		}
		codes := &mockCodes{
			requestFunc: func(ctx context.Context, sessionID, scope string) (connection.AuthCode, error) {
				return connection.AuthCode{Code: "auth-code", RedirectURI: "http://cb"}, nil
			},
		}
		uc := New(&mockLogger{}, repo, codes, &mockRef{sid: "sid-1"}, "")

		if !uc.LoginAndConnect(ctx) {
			t.Fatalf("LoginAndConnect() = false, want true")
		}
		if repo.connectCalls != 1 {
			t.Errorf("connect calls = %d", repo.connectCalls)
		}
		want := repository.ConnectInput{SessionID: "sid-1", Code: "auth-code", RedirectURI: "http://cb"}
		if repo.lastConnect != want {
			t.Errorf("connect input = %+v, want %+v", repo.lastConnect, want)
		}
		if repo.statusCalls != 1 {
			t.Errorf("status refetch calls = %d, want 1", repo.statusCalls)
		}
		if uc.State().Busy {
			t.Errorf("busy must be cleared after login")
		}
	})

	t.Run("Busy Held During Flow", func(t *testing.T) {
		var uc *implUseCase
		repo := &mockAuthRepo{
			statusFunc: func(ctx context.Context, sessionID string) (repository.StatusSnapshot, error) {
				if !uc.State().Busy {
					t.Errorf("busy must be true while the flow is in flight")
				}
				return connectedSnapshot(), nil
			},
		}
		codes := &mockCodes{
			requestFunc: func(ctx context.Context, sessionID, scope string) (connection.AuthCode, error) {
				return connection.AuthCode{Code: "auth-code"}, nil
			},
		}
		uc = New(&mockLogger{}, repo, codes, &mockRef{sid: "sid-1"}, "")

		uc.LoginAndConnect(ctx)
		if uc.State().Busy {
			t.Errorf("busy must be cleared afterwards")
		}
	})

	t.Run("Provider Failure Collapses To False", func(t *testing.T) {
		repo := &mockAuthRepo{}
		codes := &mockCodes{
			requestFunc: func(ctx context.Context, sessionID, scope string) (connection.AuthCode, error) {
				return connection.AuthCode{}, connection.ErrProviderNotReady
			},
		}
		uc := New(&mockLogger{}, repo, codes, &mockRef{sid: "sid-1"}, "")

		if uc.LoginAndConnect(ctx) {
			t.Fatalf("LoginAndConnect() = true, want false")
		}
		if repo.connectCalls != 0 {
			t.Errorf("connect must not be called without a code")
		}
		if uc.State().Busy {
			t.Errorf("busy must be cleared after failure")
		}
	})

	t.Run("Empty Code Means Cancelled", func(t *testing.T) {
		repo := &mockAuthRepo{}
		uc := New(&mockLogger{}, repo, &mockCodes{}, &mockRef{sid: "sid-1"}, "")

		if uc.LoginAndConnect(ctx) {
			t.Fatalf("LoginAndConnect() = true, want false")
		}
		if repo.connectCalls != 0 {
			t.Errorf("connect must not be called on cancel")
		}
	})

	t.Run("Connect Failure Skips Refetch", func(t *testing.T) {
		repo := &mockAuthRepo{
			connectFunc: func(ctx context.Context, input repository.ConnectInput) error {
				return errors.New("exchange failed")
			},
		}
		codes := &mockCodes{
			requestFunc: func(ctx context.Context, sessionID, scope string) (connection.AuthCode, error) {
				return connection.AuthCode{Code: "auth-code"}, nil
			},
		}
		uc := New(&mockLogger{}, repo, codes, &mockRef{sid: "sid-1"}, "")

		if uc.LoginAndConnect(ctx) {
			t.Fatalf("LoginAndConnect() = true, want false")
		}
		if repo.statusCalls != 0 {
			t.Errorf("status must not be refetched after connect failure")
		}
		if uc.State().Busy {
			t.Errorf("busy must be cleared after failure")
		}
	})
}

func TestRequestAuthorizationCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Scope Defaults To Full Set", func(t *testing.T) {
		codes := &mockCodes{}
		uc := New(&mockLogger{}, &mockAuthRepo{}, codes, &mockRef{sid: "sid-1"}, "")

		uc.RequestAuthorizationCode(ctx, "")
		if !strings.Contains(codes.lastScope, "openid") ||
			!strings.Contains(codes.lastScope, "https://www.googleapis.com/auth/calendar") {
			t.Errorf("scope = %q, want identity plus calendar", codes.lastScope)
		}
	})

	t.Run("Explicit Scope Passed Through", func(t *testing.T) {
		codes := &mockCodes{}
		uc := New(&mockLogger{}, &mockAuthRepo{}, codes, &mockRef{sid: "sid-1"}, "")

		uc.RequestAuthorizationCode(ctx, "openid email")
		if codes.lastScope != "openid email" {
			t.Errorf("scope = %q", codes.lastScope)
		}
	})
}
