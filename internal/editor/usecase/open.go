package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/yhoon3002/schedule-bot/internal/editor"
	"github.com/yhoon3002/schedule-bot/internal/event"
)

// OpenCreate implements editor.UseCase.
func (uc *implUseCase) OpenCreate(in editor.OpenCreateInput) {
	form := event.Form{
		Title:           in.Title,
		StartLocal:      in.StartLocal,
		EndLocal:        in.EndLocal,
		Attendees:       make([]string, 0, 4),
		NotifyAttendees: true,
	}

	// An all-day selection spans whole days, which makes its end useless
	// as a meeting end, so it is reseeded one hour after the start. Timed
	// selections keep their end; a bare click gets the same +1h default.
	if start, err := uc.clock.ParseInput(in.StartLocal); err == nil {
		if in.IsAllDay || strings.TrimSpace(in.EndLocal) == "" {
			form.EndLocal = uc.clock.FormatInput(start.Add(time.Hour))
		}
	}

	uc.mu.Lock()
	uc.session = editor.Session{
		Open:       true,
		Mode:       editor.ModeCreate,
		CalendarID: event.DefaultCalendarID,
	}
	uc.form = form
	uc.mu.Unlock()
}

// OpenEdit implements editor.UseCase.
func (uc *implUseCase) OpenEdit(ev event.Event) {
	form := event.Form{
		Title:           ev.Title,
		StartLocal:      uc.localInput(ev.Start),
		EndLocal:        uc.localInput(ev.End),
		Location:        ev.Location,
		Description:     ev.Description,
		Attendees:       append(make([]string, 0, len(ev.AttendeeEmails)), ev.AttendeeEmails...),
		NotifyAttendees: true,
	}

	calendarID := ev.CalendarID
	if calendarID == "" {
		calendarID = event.DefaultCalendarID
	}

	uc.mu.Lock()
	uc.session = editor.Session{
		Open:       true,
		Mode:       editor.ModeEdit,
		EventID:    ev.ID,
		CalendarID: calendarID,
	}
	uc.form = form
	uc.mu.Unlock()
}

// Close implements editor.UseCase. A save or delete still in flight when
// Close runs finalizes against the closed session and leaves it neutral.
func (uc *implUseCase) Close() {
	uc.mu.Lock()
	uc.session = editor.Session{}
	uc.form = event.Form{}
	uc.mu.Unlock()
}

// localInput converts a wire timestamp into the modal's local input
// form. An unparseable timestamp seeds an empty field; the user sees
// the gap instead of a corrupted value.
func (uc *implUseCase) localInput(iso string) string {
	s, err := uc.clock.InputFromISO(iso)
	if err != nil {
		uc.l.Warnf(context.Background(), "editor: unusable event time %q: %v", iso, err)
		return ""
	}
	return s
}
