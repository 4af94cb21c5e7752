package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yhoon3002/schedule-bot/internal/connection/repository"
	"github.com/yhoon3002/schedule-bot/internal/model"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
)

type implRepository struct {
	baseURL    string
	httpClient *http.Client
	l          pkgLog.Logger
}

// New creates the auth repository backed by the remote scheduling API.
func New(l pkgLog.Logger, baseURL string, timeout time.Duration) repository.AuthRepository {
	return &implRepository{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		l:          l,
	}
}

type profilePayload struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type statusResponse struct {
	Connected       bool            `json:"connected"`
	Email           string          `json:"email"`
	Profile         *profilePayload `json:"profile"`
	Scope           string          `json:"scope"`
	HasRefreshToken bool            `json:"has_refresh_token"`
}

func (r *implRepository) Status(ctx context.Context, sessionID string) (repository.StatusSnapshot, error) {
	u := fmt.Sprintf("%s/auth/google/status?%s", r.baseURL,
		url.Values{"session_id": {sessionID}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return repository.StatusSnapshot{}, fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return repository.StatusSnapshot{}, fmt.Errorf("failed to call status API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return repository.StatusSnapshot{}, fmt.Errorf("status API error %d: %s", resp.StatusCode, string(raw))
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return repository.StatusSnapshot{}, fmt.Errorf("failed to decode status response: %w", err)
	}

	snap := repository.StatusSnapshot{
		Connected:       body.Connected,
		Email:           body.Email,
		Scope:           body.Scope,
		HasRefreshToken: body.HasRefreshToken,
	}
	if body.Profile != nil {
		snap.Profile = &model.Profile{
			Name:      body.Profile.Name,
			Email:     body.Profile.Email,
			AvatarURL: body.Profile.AvatarURL,
		}
	}
	return snap, nil
}

type connectRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
	SessionID   string `json:"session_id"`
}

func (r *implRepository) Connect(ctx context.Context, input repository.ConnectInput) error {
	body, err := json.Marshal(connectRequest{
		Code:        input.Code,
		RedirectURI: input.RedirectURI,
		SessionID:   input.SessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal connect request: %w", err)
	}

	u := fmt.Sprintf("%s/auth/google/connect", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build connect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call connect API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("connect API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func (r *implRepository) Disconnect(ctx context.Context, sessionID string) error {
	u := fmt.Sprintf("%s/auth/google/disconnect?%s", r.baseURL,
		url.Values{"session_id": {sessionID}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build disconnect request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call disconnect API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("disconnect API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
