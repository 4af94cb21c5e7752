package google

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"

	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
	"github.com/yhoon3002/schedule-bot/pkg/gcalendar"
	"github.com/yhoon3002/schedule-bot/pkg/goauth"
	"github.com/yhoon3002/schedule-bot/pkg/localtime"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
)

// eventTypesNoBirthday lists every event type except birthday. The
// events.list eventTypes filter is additive, so excluding one type
// means naming all the others.
var eventTypesNoBirthday = []string{
	"default",
	"fromGmail",
	"outOfOffice",
	"workingLocation",
	"focusTime",
}

type implRepository struct {
	oauth *goauth.Client
	store *goauth.Store
	clock *localtime.Clock
	l     pkgLog.Logger

	// newClient builds the per-session Calendar client; tests swap it
	// to route calls through a local server.
	newClient func(ctx context.Context, ts oauth2.TokenSource) (*gcalendar.Client, error)
}

// New creates the event repository that talks to Google Calendar
// directly with per-session stored tokens, used when no remote
// scheduling API is deployed.
func New(l pkgLog.Logger, oauth *goauth.Client, store *goauth.Store, clock *localtime.Clock) repository.EventRepository {
	return &implRepository{
		oauth:     oauth,
		store:     store,
		clock:     clock,
		l:         l,
		newClient: gcalendar.NewFromTokenSource,
	}
}

// client resolves the session's refreshing token source and wraps it
// in a Calendar client. ErrNoToken surfaces when the session was never
// connected or has been disconnected.
func (r *implRepository) client(ctx context.Context, sessionID string) (*gcalendar.Client, error) {
	ts, err := r.oauth.SessionTokenSource(ctx, r.store, sessionID)
	if err != nil {
		return nil, err
	}
	return r.newClient(ctx, ts)
}

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]event.Wire, error) {
	cli, err := r.client(ctx, opt.SessionID)
	if err != nil {
		return nil, err
	}

	timeMin, timeMax := opt.TimeMin, opt.TimeMax
	if timeMin.IsZero() && timeMax.IsZero() {
		timeMin, timeMax = r.defaultWindow()
	}

	entries, err := cli.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}
	entries = preferSelected(entries)

	all := make([]event.Wire, 0, 64)
	for _, entry := range entries {
		switch classify(entry) {
		case calendarHoliday:
			if !opt.IncludeHolidays {
				continue
			}
		case calendarBirthday:
			if !opt.IncludeBirthdays {
				continue
			}
		}

		req := gcalendar.ListEventsRequest{
			CalendarID: entry.ID,
			TimeMin:    timeMin,
			TimeMax:    timeMax,
			Query:      opt.Query,
		}
		if !opt.IncludeBirthdays {
			req.EventTypes = eventTypesNoBirthday
		}

		items, err := cli.ListEvents(ctx, req)
		if err != nil {
			// One broken calendar must not sink the whole listing.
			r.l.Warnf(ctx, "event repository: list %s failed: %v", entry.ID, err)
			continue
		}
		for _, item := range items {
			if !opt.IncludeBirthdays && item.EventType == "birthday" {
				continue
			}
			all = append(all, wireFromGoogle(item, entry.ID))
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return startKey(all[i]) < startKey(all[j])
	})
	return all, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
	cli, err := r.client(ctx, opt.SessionID)
	if err != nil {
		return event.Wire{}, err
	}
	created, err := cli.InsertEvent(ctx, opt.CalendarID, googleFromDraft(draft, false), opt.SendUpdates)
	if err != nil {
		return event.Wire{}, err
	}
	return wireFromGoogle(created, calendarOrPrimary(opt.CalendarID)), nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
	cli, err := r.client(ctx, opt.SessionID)
	if err != nil {
		return event.Wire{}, err
	}
	return r.patchWithProbe(ctx, cli, opt, googleFromDraft(draft, true))
}

func (r *implRepository) PatchEventTimes(ctx context.Context, opt repository.WriteOptions, patch event.TimePatch) (event.Wire, error) {
	cli, err := r.client(ctx, opt.SessionID)
	if err != nil {
		return event.Wire{}, err
	}
	ev := &calendar.Event{
		Start: googleTime(patch.Start),
		End:   googleTime(patch.End),
	}
	return r.patchWithProbe(ctx, cli, opt, ev)
}

func (r *implRepository) DeleteEvent(ctx context.Context, opt repository.WriteOptions) error {
	cli, err := r.client(ctx, opt.SessionID)
	if err != nil {
		return err
	}
	return cli.DeleteEvent(ctx, opt.CalendarID, opt.EventID)
}

// patchWithProbe patches on the addressed calendar first. A 404 means
// the grid's calendar annotation went stale (the event moved, or the
// annotation was lost on the way through the page), so every calendar
// is probed for the event and the patch retried where it actually
// lives.
func (r *implRepository) patchWithProbe(ctx context.Context, cli *gcalendar.Client, opt repository.WriteOptions, ev *calendar.Event) (event.Wire, error) {
	updated, err := cli.PatchEvent(ctx, opt.CalendarID, opt.EventID, ev, opt.SendUpdates)
	if err == nil {
		return wireFromGoogle(updated, calendarOrPrimary(opt.CalendarID)), nil
	}
	if !isNotFound(err) {
		return event.Wire{}, err
	}

	r.l.Warnf(ctx, "event repository: patch %s on %s missed, probing calendars", opt.EventID, calendarOrPrimary(opt.CalendarID))
	entries, listErr := cli.ListCalendars(ctx)
	if listErr != nil {
		return event.Wire{}, err // report the original miss
	}
	for _, entry := range entries {
		if _, probeErr := cli.GetEvent(ctx, entry.ID, opt.EventID); probeErr != nil {
			continue
		}
		updated, retryErr := cli.PatchEvent(ctx, entry.ID, opt.EventID, ev, opt.SendUpdates)
		if retryErr != nil {
			continue
		}
		r.l.Infof(ctx, "event repository: patch recovered, event %s lives on %s", opt.EventID, entry.ID)
		return wireFromGoogle(updated, entry.ID), nil
	}
	return event.Wire{}, err
}

// defaultWindow is today's midnight through the end of the year in the
// page zone, the window shown before the grid reports a viewport.
func (r *implRepository) defaultWindow() (time.Time, time.Time) {
	now := r.clock.Now()
	loc := r.clock.Location()
	min := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	max := time.Date(now.Year(), 12, 31, 23, 59, 59, 0, loc)
	return min, max
}

type calendarKind int

const (
	calendarNormal calendarKind = iota
	calendarHoliday
	calendarBirthday
)

// classify buckets a calendar-list entry so the holiday and birthday
// toggles can filter whole calendars. Google's holiday and contact
// calendars have stable id shapes; the summary checks catch renamed
// entries ("생일" is the Korean UI's birthday calendar title).
func classify(entry gcalendar.CalendarEntry) calendarKind {
	id := strings.ToLower(entry.ID)
	summary := strings.ToLower(entry.Summary)
	switch {
	case strings.Contains(id, "holiday") || strings.Contains(summary, "holiday"):
		return calendarHoliday
	case strings.HasPrefix(id, "addressbook#"),
		strings.HasSuffix(id, "contacts@group.v.calendar.google.com"),
		strings.Contains(id, "birthday"),
		strings.Contains(summary, "birthdays"),
		strings.Contains(summary, "생일"):
		return calendarBirthday
	}
	return calendarNormal
}

// preferSelected narrows to the calendars the user keeps visible in
// the Google UI, falling back to everything when none are marked.
func preferSelected(entries []gcalendar.CalendarEntry) []gcalendar.CalendarEntry {
	selected := make([]gcalendar.CalendarEntry, 0, len(entries))
	for _, e := range entries {
		if e.Selected {
			selected = append(selected, e)
		}
	}
	if len(selected) > 0 {
		return selected
	}
	return entries
}

// startKey orders merged multi-calendar listings. dateTime and date
// strings both sort lexicographically in time order.
func startKey(w event.Wire) string {
	if w.Start == nil {
		return ""
	}
	if w.Start.DateTime != "" {
		return w.Start.DateTime
	}
	return w.Start.Date
}

func calendarOrPrimary(id string) string {
	if id == "" {
		return event.DefaultCalendarID
	}
	return id
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// wireFromGoogle flattens an API event into the wire shape the rest of
// the app consumes, annotated with its source calendar.
func wireFromGoogle(ev *calendar.Event, calendarID string) event.Wire {
	w := event.Wire{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Location:    ev.Location,
		Description: ev.Description,
		Status:      ev.Status,
		CalendarID:  calendarID,
	}
	if ev.Start != nil {
		w.Start = &event.WireDateTime{Date: ev.Start.Date, DateTime: ev.Start.DateTime, TimeZone: ev.Start.TimeZone}
	}
	if ev.End != nil {
		w.End = &event.WireDateTime{Date: ev.End.Date, DateTime: ev.End.DateTime, TimeZone: ev.End.TimeZone}
	}
	for _, a := range ev.Attendees {
		if a == nil || a.Email == "" {
			continue
		}
		w.Attendees = append(w.Attendees, event.WireAttendee{Email: a.Email, DisplayName: a.DisplayName})
	}
	return w
}

// googleFromDraft converts a mutation body to the API type. On update
// an empty attendee list must still reach the wire so existing guests
// get cleared; ForceSendFields keeps the zero value in the JSON.
func googleFromDraft(d event.Draft, update bool) *calendar.Event {
	ev := &calendar.Event{
		Summary:     d.Summary,
		Location:    d.Location,
		Description: d.Description,
		Start:       googleTime(d.Start),
		End:         googleTime(d.End),
	}
	for _, a := range d.Attendees {
		ev.Attendees = append(ev.Attendees, &calendar.EventAttendee{Email: a.Email, DisplayName: a.DisplayName})
	}
	if update && len(ev.Attendees) == 0 {
		ev.ForceSendFields = append(ev.ForceSendFields, "Attendees")
	}
	return ev
}

func googleTime(dt *event.WireDateTime) *calendar.EventDateTime {
	if dt == nil {
		return nil
	}
	return &calendar.EventDateTime{Date: dt.Date, DateTime: dt.DateTime, TimeZone: dt.TimeZone}
}
