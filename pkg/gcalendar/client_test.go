package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/yhoon3002/schedule-bot/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, ts *httptest.Server) *gcalendar.Client {
	t.Helper()
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	t.Run("List Calendars E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/users/me/calendarList" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{"id": "primary-cal", "summary": "Mine", "selected": true, "primary": true},
						{"id": "ko.south_korea#holiday@group.v.calendar.google.com", "summary": "Holidays"}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		entries, err := client.ListCalendars(context.Background())
		if err != nil {
			t.Fatalf("failed to list calendars: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if !entries[0].Primary || !entries[0].Selected {
			t.Errorf("unexpected first entry: %+v", entries[0])
		}
	})

	t.Run("List Events E2E", func(t *testing.T) {
		var gotQuery string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				gotQuery = r.URL.RawQuery
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "event-123",
							"summary": "Existing Event",
							"start": { "date": "2024-05-01" },
							"end": { "date": "2024-05-02" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		timeMin := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "primary",
			TimeMin:    timeMin,
			TimeMax:    timeMin.AddDate(0, 1, 0),
			Query:      "party",
			EventTypes: []string{"default", "outOfOffice"},
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].Start.Date != "2024-05-01" {
			t.Errorf("unexpected event start: %+v", events[0].Start)
		}

		for _, want := range []string{
			"singleEvents=true",
			"orderBy=startTime",
			"maxResults=2500",
			"q=party",
			"eventTypes=default",
			"eventTypes=outOfOffice",
			"timeMin=2024-05-01T00%3A00%3A00Z",
		} {
			if !strings.Contains(gotQuery, want) {
				t.Errorf("query missing %q: %s", want, gotQuery)
			}
		}
	})

	t.Run("List Events Error E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{}); err == nil {
			t.Fatalf("expected api error")
		}
	})

	t.Run("Insert Event E2E", func(t *testing.T) {
		var gotSendUpdates string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				gotSendUpdates = r.URL.Query().Get("sendUpdates")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id": "event-123", "status": "confirmed"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		created, err := client.InsertEvent(context.Background(), "", &calendar.Event{
			Summary: "Title",
			Start:   &calendar.EventDateTime{DateTime: "2024-05-01T10:00:00+09:00"},
			End:     &calendar.EventDateTime{DateTime: "2024-05-01T11:00:00+09:00"},
		}, "all")
		if err != nil {
			t.Fatalf("failed to insert event: %v", err)
		}
		if created.Id != "event-123" {
			t.Errorf("unexpected id: %s", created.Id)
		}
		if gotSendUpdates != "all" {
			t.Errorf("sendUpdates = %q, want all", gotSendUpdates)
		}
	})

	t.Run("Patch Event E2E", func(t *testing.T) {
		var gotSendUpdates string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodPatch {
				gotSendUpdates = r.URL.Query().Get("sendUpdates")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id": "event-123", "summary": "Renamed"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		updated, err := client.PatchEvent(context.Background(), "primary", "event-123", &calendar.Event{
			Summary: "Renamed",
		}, "")
		if err != nil {
			t.Fatalf("failed to patch event: %v", err)
		}
		if updated.Summary != "Renamed" {
			t.Errorf("unexpected summary: %s", updated.Summary)
		}
		if gotSendUpdates != "" {
			t.Errorf("sendUpdates should be absent, got %q", gotSendUpdates)
		}
	})

	t.Run("Delete Event E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/other/events/event-9" && r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		if err := client.DeleteEvent(context.Background(), "other", "event-9"); err != nil {
			t.Fatalf("failed to delete event: %v", err)
		}
		if err := client.DeleteEvent(context.Background(), "other", "missing"); err == nil {
			t.Fatalf("expected delete error for unknown event")
		}
	})
}
