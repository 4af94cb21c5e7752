package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yhoon3002/schedule-bot/internal/chat"
	"github.com/yhoon3002/schedule-bot/internal/chat/remote"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestRemoteAssistant(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		// Decode merges into a non-nil map; reset so each request is captured fresh.
		gotBody = nil
		json.NewDecoder(r.Body).Decode(&gotBody)
		if msg, _ := gotBody["user_message"].(string); msg == "boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"reply":"내일 오후 3시에 회의를 잡았어요.","tool_result":{"created":{"id":"e1"}}}`))
	}))
	defer ts.Close()

	assistant := remote.New(&mockLogger{}, ts.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("Relays Message And History", func(t *testing.T) {
		reply, err := assistant.Send(ctx, "sid-1", "내일 3시에 회의 잡아줘", []chat.Turn{
			{Role: "user", Content: "안녕"},
			{Role: "assistant", Content: "무엇을 도와드릴까요?"},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if gotPath != "/schedules/chat" {
			t.Errorf("unexpected path: %s", gotPath)
		}
		if gotBody["user_message"] != "내일 3시에 회의 잡아줘" || gotBody["session_id"] != "sid-1" {
			t.Errorf("unexpected request body: %v", gotBody)
		}
		if hist, ok := gotBody["history"].([]any); !ok || len(hist) != 2 {
			t.Errorf("expected history relayed, got %v", gotBody["history"])
		}
		if reply.Reply == "" {
			t.Errorf("expected a reply text")
		}
		// tool_result passes through as raw JSON.
		var tool map[string]any
		if err := json.Unmarshal(reply.ToolResult, &tool); err != nil || tool["created"] == nil {
			t.Errorf("expected raw tool result, got %s (%v)", reply.ToolResult, err)
		}
	})

	t.Run("Empty History Stays Off The Wire", func(t *testing.T) {
		if _, err := assistant.Send(ctx, "sid-1", "hello", nil); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, present := gotBody["history"]; present {
			t.Errorf("expected history omitted, got %v", gotBody["history"])
		}
	})

	t.Run("Upstream Failure Surfaces", func(t *testing.T) {
		if _, err := assistant.Send(ctx, "sid-1", "boom", nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("Unavailable Assistant", func(t *testing.T) {
		_, err := chat.Unavailable{}.Send(ctx, "sid-1", "hello", nil)
		if !errors.Is(err, chat.ErrAssistantUnavailable) {
			t.Fatalf("expected ErrAssistantUnavailable, got %v", err)
		}
	})
}
