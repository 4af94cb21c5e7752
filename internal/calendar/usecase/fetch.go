package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
)

// FetchRange implements calendar.UseCase.
func (uc *implUseCase) FetchRange(ctx context.Context, rng calendar.Range) []event.Event {
	if !uc.gate.State().IsReady() {
		return []event.Event{}
	}

	uc.mu.Lock()
	uc.lastRng = rng
	uc.hasRange = true
	uc.mu.Unlock()

	opt := repository.ListEventsOptions{
		SessionID:        uc.ref.SessionID(),
		IncludeHolidays:  uc.flags.IncludeHolidays,
		IncludeBirthdays: uc.flags.IncludeBirthdays,
	}
	var err error
	if opt.TimeMin, err = uc.bound(rng.Start); err != nil {
		return uc.fail(ctx, err)
	}
	if opt.TimeMax, err = uc.bound(rng.End); err != nil {
		return uc.fail(ctx, err)
	}

	wires, err := uc.repo.ListEvents(ctx, opt)
	if err != nil {
		return uc.fail(ctx, err)
	}

	events := make([]event.Event, 0, len(wires))
	byID := make(map[string]event.Event, len(wires))
	for _, w := range wires {
		ev := event.FromWire(w)
		events = append(events, ev)
		byID[ev.ID] = ev
	}

	uc.mu.Lock()
	uc.byID = byID
	uc.mu.Unlock()

	uc.grid.SetEvents(events)
	return events
}

// bound parses a viewport edge. Empty means "let the backend pick".
func (uc *implUseCase) bound(iso string) (time.Time, error) {
	if iso == "" {
		return time.Time{}, nil
	}
	t, err := uc.clock.ParseISO(iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", calendar.ErrInvalidRange, err)
	}
	return t, nil
}

// fail logs a fetch failure, surfaces it on the grid's error channel,
// and collapses the result to an empty list so the grid never crashes
// on a bad round-trip.
func (uc *implUseCase) fail(ctx context.Context, err error) []event.Event {
	uc.l.Errorf(ctx, "calendar.FetchRange: %v", err)
	uc.grid.ReportError(err)
	return []event.Event{}
}

// RequestRefresh implements calendar.UseCase.
func (uc *implUseCase) RequestRefresh(ctx context.Context) {
	uc.mu.Lock()
	rng, ok := uc.lastRng, uc.hasRange
	uc.mu.Unlock()
	if !ok {
		return
	}
	uc.FetchRange(ctx, rng)
}

// OnConnectionChange implements calendar.UseCase.
func (uc *implUseCase) OnConnectionChange(ctx context.Context, ready bool) {
	if ready {
		uc.RequestRefresh(ctx)
		return
	}
	uc.mu.Lock()
	uc.byID = nil
	uc.mu.Unlock()
	uc.grid.Clear()
}
