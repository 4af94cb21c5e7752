// Package gcalendar is a thin wrapper over the Google Calendar v3
// service: constructors for the auth styles the app uses plus the
// calendar-list and event calls the sync layer needs. Raw
// calendar.Event values are returned so callers keep every wire field.
package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewFromTokenSource creates a Calendar client from an OAuth token
// source, the normal path for per-session user tokens.
func NewFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewFromHTTP creates a Calendar client from a pre-configured HTTP
// client. Tests route this through a local server.
func NewFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListCalendars returns the user's calendar list entries.
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarEntry, error) {
	list, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	entries := make([]CalendarEntry, 0, len(list.Items))
	for _, item := range list.Items {
		// The user's rename wins over the calendar's own title.
		summary := item.SummaryOverride
		if summary == "" {
			summary = item.Summary
		}
		entries = append(entries, CalendarEntry{
			ID:       item.Id,
			Summary:  summary,
			Selected: item.Selected,
			Primary:  item.Primary,
		})
	}
	return entries, nil
}

// ListEvents returns the events of one calendar within the request
// window, expanded to single instances and ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]*calendar.Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}

	call := c.service.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.Query != "" {
		call = call.Q(req.Query)
	}
	if len(req.EventTypes) > 0 {
		call = call.EventTypes(req.EventTypes...)
	}

	events, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events.Items, nil
}

// GetEvent fetches a single event. Used to probe which calendar an
// event actually lives on when a patch misses.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*calendar.Event, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	ev, err := c.service.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return ev, nil
}

// InsertEvent creates an event. A non-empty sendUpdates ("all" or
// "none") controls attendee notification mail.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, ev *calendar.Event, sendUpdates string) (*calendar.Event, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	call := c.service.Events.Insert(calendarID, ev)
	if sendUpdates != "" {
		call = call.SendUpdates(sendUpdates)
	}
	created, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	return created, nil
}

// PatchEvent applies a partial update: only fields set on ev are
// touched (plus ev.ForceSendFields for zero values that must go out).
func (c *Client) PatchEvent(ctx context.Context, calendarID, eventID string, ev *calendar.Event, sendUpdates string) (*calendar.Event, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	call := c.service.Events.Patch(calendarID, eventID, ev)
	if sendUpdates != "" {
		call = call.SendUpdates(sendUpdates)
	}
	updated, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch event: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if calendarID == "" {
		calendarID = "primary"
	}
	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
