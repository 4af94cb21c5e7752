package calendar

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/editor"
	"github.com/yhoon3002/schedule-bot/internal/event"
)

//go:generate mockery --name UseCase

// UseCase is the sync controller between the grid widget and the
// calendar backend. Every callback honors the connection gate: nothing
// is fetched or mutated unless the session is signed in with calendar
// access.
type UseCase interface {
	// FetchRange is the grid's data source. It never returns an error:
	// a closed gate yields an empty list without touching the backend,
	// and a transport failure is logged, pushed to the grid's error
	// channel, and collapsed to an empty list.
	FetchRange(ctx context.Context, rng Range) []event.Event

	// OnRangeSelect opens the editor in create mode for a selected
	// window, then clears the grid's pending selection highlight.
	// Ignored while the gate is closed.
	OnRangeSelect(ctx context.Context, startISO, endISO string, allDay bool)

	// OnEventActivate opens the editor in edit mode seeded from the
	// activated event's cached data. Ignored while the gate is closed;
	// ErrEventNotFound when the id is not in the displayed set.
	OnEventActivate(ctx context.Context, eventID string) error

	// OnEventMoved and OnEventResized patch only the event's start and
	// end on its original calendar, then refetch. They bypass the
	// editor's validation and notification semantics on purpose: a
	// drag is a direct minimal patch, and no attendee mail parameter
	// is sent.
	OnEventMoved(ctx context.Context, eventID, newStartISO, newEndISO string) error
	OnEventResized(ctx context.Context, eventID, newStartISO, newEndISO string) error

	// OnConnectionChange reacts to the gate flipping: ready refetches
	// the last displayed window, not-ready clears the grid so no stale
	// events linger behind the gate.
	OnConnectionChange(ctx context.Context, ready bool)

	// RequestRefresh refetches the last displayed window, if any. The
	// editor calls this after a successful save or delete.
	RequestRefresh(ctx context.Context)
}

// GridPort is the controller's view of the grid widget: the displayed
// event set plus the signals the page polls for.
type GridPort interface {
	SetEvents(events []event.Event)
	Clear()
	ClearSelection()
	ReportError(err error)
}

// EditorOpener is the slice of the editor the controller drives.
type EditorOpener interface {
	OpenCreate(in editor.OpenCreateInput)
	OpenEdit(ev event.Event)
}

// Gate exposes the connection snapshot the controller gates on.
type Gate interface {
	State() connection.State
}
