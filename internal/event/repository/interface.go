package repository

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/event"
)

// EventRepository is the interface for calendar event data access. Both
// implementations (the scheduling backend and the Google Calendar API)
// speak the same wire schema, so callers never care which one is wired.
type EventRepository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]event.Wire, error)
	CreateEvent(ctx context.Context, opt WriteOptions, draft event.Draft) (event.Wire, error)
	UpdateEvent(ctx context.Context, opt WriteOptions, draft event.Draft) (event.Wire, error)
	PatchEventTimes(ctx context.Context, opt WriteOptions, patch event.TimePatch) (event.Wire, error)
	DeleteEvent(ctx context.Context, opt WriteOptions) error
}
