package usecase

import (
	"context"
	"fmt"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
)

// OnEventMoved implements calendar.UseCase.
func (uc *implUseCase) OnEventMoved(ctx context.Context, eventID, newStartISO, newEndISO string) error {
	return uc.patchTimes(ctx, "OnEventMoved", eventID, newStartISO, newEndISO)
}

// OnEventResized implements calendar.UseCase.
func (uc *implUseCase) OnEventResized(ctx context.Context, eventID, newStartISO, newEndISO string) error {
	return uc.patchTimes(ctx, "OnEventResized", eventID, newStartISO, newEndISO)
}

// patchTimes sends the minimal start/end patch a drag or resize
// produces. No attendee mail parameter is sent and the editor's
// validation is bypassed: the grid already enforced the shape of the
// gesture. The refetch runs on failure too, snapping the dragged event
// back to server truth instead of leaving it where it was dropped.
func (uc *implUseCase) patchTimes(ctx context.Context, op, eventID, newStartISO, newEndISO string) error {
	if !uc.gate.State().IsReady() {
		return nil
	}
	ev, ok := uc.cached(eventID)
	if !ok {
		return fmt.Errorf("%w: %s", calendar.ErrEventNotFound, eventID)
	}

	patch := event.TimePatch{
		Start: event.WireTime(newStartISO),
		End:   event.WireTime(newEndISO),
	}
	_, err := uc.repo.PatchEventTimes(ctx, repository.WriteOptions{
		SessionID:  uc.ref.SessionID(),
		CalendarID: ev.CalendarID,
		EventID:    eventID,
	}, patch)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.%s: %v", op, err)
		uc.grid.ReportError(err)
	}

	uc.RequestRefresh(ctx)
	return err
}
