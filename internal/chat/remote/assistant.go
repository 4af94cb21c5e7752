package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yhoon3002/schedule-bot/internal/chat"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
)

type implAssistant struct {
	baseURL    string
	httpClient *http.Client
	l          pkgLog.Logger
}

// New creates the assistant client against the remote scheduling API.
// The timeout should be generous: the upstream runs a multi-step tool
// loop per message.
func New(l pkgLog.Logger, baseURL string, timeout time.Duration) chat.Assistant {
	return &implAssistant{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		l:          l,
	}
}

type chatRequest struct {
	UserMessage string      `json:"user_message"`
	History     []chat.Turn `json:"history,omitempty"`
	SessionID   string      `json:"session_id,omitempty"`
}

func (a *implAssistant) Send(ctx context.Context, sessionID, message string, history []chat.Turn) (chat.Reply, error) {
	body, err := json.Marshal(chatRequest{
		UserMessage: message,
		History:     history,
		SessionID:   sessionID,
	})
	if err != nil {
		return chat.Reply{}, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	u := fmt.Sprintf("%s/schedules/chat", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return chat.Reply{}, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return chat.Reply{}, fmt.Errorf("failed to call chat API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return chat.Reply{}, fmt.Errorf("chat API error %d: %s", resp.StatusCode, string(raw))
	}

	var reply chat.Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return chat.Reply{}, fmt.Errorf("failed to decode chat response: %w", err)
	}
	return reply, nil
}
