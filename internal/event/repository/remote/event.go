package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
)

type implRepository struct {
	baseURL    string
	httpClient *http.Client
	l          pkgLog.Logger
}

// New creates the event repository backed by the remote scheduling API.
// The upstream proxies Google Calendar and owns the token handling, so
// every call just carries the page's session id.
func New(l pkgLog.Logger, baseURL string, timeout time.Duration) repository.EventRepository {
	return &implRepository{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		l:          l,
	}
}

type listResponse struct {
	Items []event.Wire `json:"items"`
}

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]event.Wire, error) {
	q := url.Values{"session_id": {opt.SessionID}}
	if !opt.TimeMin.IsZero() {
		q.Set("timeMin", opt.TimeMin.Format(time.RFC3339))
	}
	if !opt.TimeMax.IsZero() {
		q.Set("timeMax", opt.TimeMax.Format(time.RFC3339))
	}
	if opt.Query != "" {
		q.Set("q", opt.Query)
	}
	q.Set("include_holidays", strconv.FormatBool(opt.IncludeHolidays))
	q.Set("include_birthdays", strconv.FormatBool(opt.IncludeBirthdays))

	u := fmt.Sprintf("%s/google/calendar/events?%s", r.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list events request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call list events API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list events API error %d: %s", resp.StatusCode, string(raw))
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode list events response: %w", err)
	}
	return body.Items, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return event.Wire{}, fmt.Errorf("failed to marshal create event request: %w", err)
	}
	u := fmt.Sprintf("%s/google/calendar/events?%s", r.baseURL, writeQuery(opt).Encode())
	return r.sendEvent(ctx, http.MethodPost, u, body, "create event")
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return event.Wire{}, fmt.Errorf("failed to marshal update event request: %w", err)
	}
	u := fmt.Sprintf("%s/google/calendar/events/%s?%s", r.baseURL,
		url.PathEscape(opt.EventID), writeQuery(opt).Encode())
	return r.sendEvent(ctx, http.MethodPatch, u, body, "update event")
}

func (r *implRepository) PatchEventTimes(ctx context.Context, opt repository.WriteOptions, patch event.TimePatch) (event.Wire, error) {
	body, err := json.Marshal(patch)
	if err != nil {
		return event.Wire{}, fmt.Errorf("failed to marshal patch event request: %w", err)
	}
	u := fmt.Sprintf("%s/google/calendar/events/%s?%s", r.baseURL,
		url.PathEscape(opt.EventID), writeQuery(opt).Encode())
	return r.sendEvent(ctx, http.MethodPatch, u, body, "patch event")
}

func (r *implRepository) DeleteEvent(ctx context.Context, opt repository.WriteOptions) error {
	u := fmt.Sprintf("%s/google/calendar/events/%s?%s", r.baseURL,
		url.PathEscape(opt.EventID), writeQuery(opt).Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete event request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call delete event API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete event API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// sendEvent runs a JSON mutation and decodes the saved event echoed
// back by the upstream.
func (r *implRepository) sendEvent(ctx context.Context, method, u string, body []byte, op string) (event.Wire, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewBuffer(body))
	if err != nil {
		return event.Wire{}, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return event.Wire{}, fmt.Errorf("failed to call %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return event.Wire{}, fmt.Errorf("%s API error %d: %s", op, resp.StatusCode, string(raw))
	}

	var wire event.Wire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return event.Wire{}, fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return wire, nil
}

// writeQuery renders the addressing parameters shared by every
// mutation. Empty fields stay off the query string: the upstream
// defaults calendar_id to primary and treats a missing send_updates as
// "send no mail parameter to Google".
func writeQuery(opt repository.WriteOptions) url.Values {
	q := url.Values{"session_id": {opt.SessionID}}
	if opt.CalendarID != "" {
		q.Set("calendar_id", opt.CalendarID)
	}
	if opt.SendUpdates != "" {
		q.Set("send_updates", opt.SendUpdates)
	}
	return q
}
