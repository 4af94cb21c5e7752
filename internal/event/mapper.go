package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/yhoon3002/schedule-bot/pkg/localtime"
)

// FromWire normalizes a backend event into the internal model. The
// time-of-day field wins over the date-only field on each boundary,
// and an event is all-day iff its start has only a date.
func FromWire(w Wire) Event {
	e := Event{
		ID:          w.ID,
		Title:       strings.TrimSpace(w.Summary),
		CalendarID:  w.CalendarID,
		Location:    w.Location,
		Description: w.Description,
	}
	if e.Title == "" {
		e.Title = DefaultTitle
	}
	if e.CalendarID == "" {
		e.CalendarID = DefaultCalendarID
	}
	if w.Start != nil {
		e.Start = pickTime(w.Start)
		e.AllDay = w.Start.Date != "" && w.Start.DateTime == ""
	}
	if w.End != nil {
		e.End = pickTime(w.End)
	}
	for _, a := range w.Attendees {
		if a.Email == "" {
			continue
		}
		e.AttendeeEmails = append(e.AttendeeEmails, a.Email)
	}
	return e
}

func pickTime(dt *WireDateTime) string {
	if dt.DateTime != "" {
		return dt.DateTime
	}
	return dt.Date
}

// ToWire converts an editor form into a mutation body. The start is
// required; a missing or too-early end is normalized to start plus one
// hour. Trimmed-empty location and description stay off the wire, the
// attendee list is always carried, even empty.
func ToWire(f Form, clock *localtime.Clock) (Draft, error) {
	start, err := clock.ParseInput(f.StartLocal)
	if err != nil {
		return Draft{}, fmt.Errorf("start: %w", err)
	}

	var end time.Time
	if strings.TrimSpace(f.EndLocal) != "" {
		end, err = clock.ParseInput(f.EndLocal)
		if err != nil {
			return Draft{}, fmt.Errorf("end: %w", err)
		}
	}
	start, end = EnsureEndAfterStart(start, end)

	d := Draft{
		Summary:     strings.TrimSpace(f.Title),
		Start:       &WireDateTime{DateTime: clock.RFC3339(start)},
		End:         &WireDateTime{DateTime: clock.RFC3339(end)},
		Location:    strings.TrimSpace(f.Location),
		Description: strings.TrimSpace(f.Description),
		Attendees:   make([]WireAttendee, 0, len(f.Attendees)),
	}
	if d.Summary == "" {
		d.Summary = DefaultTitle
	}
	for _, email := range f.Attendees {
		d.Attendees = append(d.Attendees, WireAttendee{Email: email})
	}
	return d, nil
}

// EnsureEndAfterStart normalizes an event window at save time. A zero
// end means the form had none. The form itself is never corrected
// while the user types.
func EnsureEndAfterStart(start, end time.Time) (time.Time, time.Time) {
	if end.IsZero() || !end.After(start) {
		end = start.Add(time.Hour)
	}
	return start, end
}

// WireTime wraps a grid-supplied ISO string as a wire boundary: bare
// dates become all-day Date fields, anything else a DateTime. Empty
// input yields nil so the field stays out of a patch.
func WireTime(iso string) *WireDateTime {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return nil
	}
	if localtime.IsDateOnly(iso) {
		return &WireDateTime{Date: iso}
	}
	return &WireDateTime{DateTime: iso}
}
