package event_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/pkg/localtime"
)

func seoulClock(t *testing.T) *localtime.Clock {
	t.Helper()
	clock, err := localtime.NewClock("Asia/Seoul")
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}
	return clock
}

func TestFromWire(t *testing.T) {
	tests := []struct {
		name string
		wire event.Wire
		want event.Event
	}{
		{
			name: "Timed event",
			wire: event.Wire{
				ID:      "ev1",
				Summary: "Standup",
				Start:   &event.WireDateTime{DateTime: "2024-01-01T10:00:00+09:00"},
				End:     &event.WireDateTime{DateTime: "2024-01-01T10:30:00+09:00"},
			},
			want: event.Event{
				ID:         "ev1",
				Title:      "Standup",
				Start:      "2024-01-01T10:00:00+09:00",
				End:        "2024-01-01T10:30:00+09:00",
				AllDay:     false,
				CalendarID: "primary",
			},
		},
		{
			name: "All day event",
			wire: event.Wire{
				ID:    "ev2",
				Start: &event.WireDateTime{Date: "2024-01-01"},
				End:   &event.WireDateTime{Date: "2024-01-02"},
			},
			want: event.Event{
				ID:         "ev2",
				Title:      "(제목 없음)",
				Start:      "2024-01-01",
				End:        "2024-01-02",
				AllDay:     true,
				CalendarID: "primary",
			},
		},
		{
			name: "DateTime wins over date",
			wire: event.Wire{
				ID:    "ev3",
				Start: &event.WireDateTime{Date: "2024-01-01", DateTime: "2024-01-01T09:00:00+09:00"},
			},
			want: event.Event{
				ID:         "ev3",
				Title:      "(제목 없음)",
				Start:      "2024-01-01T09:00:00+09:00",
				AllDay:     false,
				CalendarID: "primary",
			},
		},
		{
			name: "Source calendar kept",
			wire: event.Wire{
				ID:         "ev4",
				Summary:    "Holiday",
				Start:      &event.WireDateTime{Date: "2024-01-01"},
				CalendarID: "ko.south_korea#holiday@group.v.calendar.google.com",
			},
			want: event.Event{
				ID:         "ev4",
				Title:      "Holiday",
				Start:      "2024-01-01",
				AllDay:     true,
				CalendarID: "ko.south_korea#holiday@group.v.calendar.google.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := event.FromWire(tt.wire)
			if got.ID != tt.want.ID || got.Title != tt.want.Title ||
				got.Start != tt.want.Start || got.End != tt.want.End ||
				got.AllDay != tt.want.AllDay || got.CalendarID != tt.want.CalendarID {
				t.Errorf("FromWire() got = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromWireAttendees(t *testing.T) {
	w := event.Wire{
		ID:    "ev1",
		Start: &event.WireDateTime{DateTime: "2024-01-01T10:00:00+09:00"},
		Attendees: []event.WireAttendee{
			{Email: "a@b.com", DisplayName: "A"},
			{DisplayName: "no email"},
			{Email: "c@d.com"},
		},
	}

	got := event.FromWire(w)
	if len(got.AttendeeEmails) != 2 {
		t.Fatalf("AttendeeEmails len = %d, want 2", len(got.AttendeeEmails))
	}
	if got.AttendeeEmails[0] != "a@b.com" || got.AttendeeEmails[1] != "c@d.com" {
		t.Errorf("AttendeeEmails = %v", got.AttendeeEmails)
	}
}

func TestEnsureEndAfterStart(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		end     time.Time
		wantEnd time.Time
	}{
		{
			name:    "Absent end defaults to one hour",
			end:     time.Time{},
			wantEnd: start.Add(time.Hour),
		},
		{
			name:    "End equal to start pushed out",
			end:     start,
			wantEnd: start.Add(time.Hour),
		},
		{
			name:    "End before start pushed out",
			end:     start.Add(-30 * time.Minute),
			wantEnd: start.Add(time.Hour),
		},
		{
			name:    "Valid end untouched",
			end:     start.Add(15 * time.Minute),
			wantEnd: start.Add(15 * time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd := event.EnsureEndAfterStart(start, tt.end)
			if !gotStart.Equal(start) {
				t.Errorf("start moved: got %v", gotStart)
			}
			if !gotEnd.Equal(tt.wantEnd) {
				t.Errorf("end got = %v, want %v", gotEnd, tt.wantEnd)
			}
			if !gotEnd.After(gotStart) {
				t.Errorf("end %v not after start %v", gotEnd, gotStart)
			}
		})
	}
}

func TestToWire(t *testing.T) {
	clock := seoulClock(t)

	t.Run("Full form", func(t *testing.T) {
		d, err := event.ToWire(event.Form{
			Title:      "  Lunch  ",
			StartLocal: "2024-01-01T12:00",
			EndLocal:   "2024-01-01T13:00",
			Location:   " Gangnam ",
			Attendees:  []string{"a@b.com"},
		}, clock)
		if err != nil {
			t.Fatalf("ToWire() error = %v", err)
		}
		if d.Summary != "Lunch" {
			t.Errorf("Summary = %q", d.Summary)
		}
		if d.Start.DateTime != "2024-01-01T12:00:00+09:00" {
			t.Errorf("Start = %q", d.Start.DateTime)
		}
		if d.End.DateTime != "2024-01-01T13:00:00+09:00" {
			t.Errorf("End = %q", d.End.DateTime)
		}
		if d.Location != "Gangnam" {
			t.Errorf("Location = %q", d.Location)
		}
		if len(d.Attendees) != 1 || d.Attendees[0].Email != "a@b.com" {
			t.Errorf("Attendees = %v", d.Attendees)
		}
	})

	t.Run("Empty title gets placeholder", func(t *testing.T) {
		d, err := event.ToWire(event.Form{Title: "   ", StartLocal: "2024-01-01T12:00"}, clock)
		if err != nil {
			t.Fatalf("ToWire() error = %v", err)
		}
		if d.Summary != event.DefaultTitle {
			t.Errorf("Summary = %q, want placeholder", d.Summary)
		}
	})

	t.Run("Missing end defaults to one hour", func(t *testing.T) {
		d, err := event.ToWire(event.Form{Title: "x", StartLocal: "2024-01-01T10:00"}, clock)
		if err != nil {
			t.Fatalf("ToWire() error = %v", err)
		}
		if d.End.DateTime != "2024-01-01T11:00:00+09:00" {
			t.Errorf("End = %q, want start+1h", d.End.DateTime)
		}
	})

	t.Run("Missing start fails", func(t *testing.T) {
		if _, err := event.ToWire(event.Form{Title: "x"}, clock); err == nil {
			t.Fatalf("expected error for missing start")
		}
	})

	t.Run("Unparseable end fails", func(t *testing.T) {
		_, err := event.ToWire(event.Form{StartLocal: "2024-01-01T10:00", EndLocal: "soon"}, clock)
		if err == nil {
			t.Fatalf("expected error for bad end")
		}
	})
}

func TestToWireOmission(t *testing.T) {
	clock := seoulClock(t)

	t.Run("Blank location and description omitted", func(t *testing.T) {
		d, err := event.ToWire(event.Form{
			Title:       "x",
			StartLocal:  "2024-01-01T10:00",
			Location:    "   ",
			Description: "",
		}, clock)
		if err != nil {
			t.Fatalf("ToWire() error = %v", err)
		}
		raw, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		body := string(raw)
		if strings.Contains(body, `"location"`) {
			t.Errorf("location should be omitted: %s", body)
		}
		if strings.Contains(body, `"description"`) {
			t.Errorf("description should be omitted: %s", body)
		}
	})

	t.Run("Empty attendee list still serialized", func(t *testing.T) {
		d, err := event.ToWire(event.Form{Title: "x", StartLocal: "2024-01-01T10:00"}, clock)
		if err != nil {
			t.Fatalf("ToWire() error = %v", err)
		}
		raw, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !strings.Contains(string(raw), `"attendees":[]`) {
			t.Errorf("attendees key must survive empty: %s", raw)
		}
	})
}

func TestWireTime(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantDate     string
		wantDateTime string
		wantNil      bool
	}{
		{name: "Bare date", in: "2024-01-01", wantDate: "2024-01-01"},
		{name: "Timestamp", in: "2024-01-01T10:00:00+09:00", wantDateTime: "2024-01-01T10:00:00+09:00"},
		{name: "Empty", in: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := event.WireTime(tt.in)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("WireTime() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("WireTime() = nil")
			}
			if got.Date != tt.wantDate || got.DateTime != tt.wantDateTime {
				t.Errorf("WireTime() = %+v", got)
			}
		})
	}
}
