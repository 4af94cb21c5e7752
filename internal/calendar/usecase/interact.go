package usecase

import (
	"context"
	"fmt"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/internal/editor"
)

// OnRangeSelect implements calendar.UseCase.
func (uc *implUseCase) OnRangeSelect(ctx context.Context, startISO, endISO string, allDay bool) {
	if !uc.gate.State().IsReady() {
		return
	}
	op := uc.opener()
	if op == nil {
		uc.l.Warnf(ctx, "calendar.OnRangeSelect: no editor attached")
		return
	}

	startLocal, err := uc.clock.InputFromISO(startISO)
	if err != nil {
		uc.l.Warnf(ctx, "calendar.OnRangeSelect: unusable selection start %q: %v", startISO, err)
		return
	}
	endLocal := ""
	if endISO != "" {
		if endLocal, err = uc.clock.InputFromISO(endISO); err != nil {
			uc.l.Warnf(ctx, "calendar.OnRangeSelect: unusable selection end %q: %v", endISO, err)
			endLocal = ""
		}
	}

	op.OpenCreate(editor.OpenCreateInput{
		StartLocal: startLocal,
		EndLocal:   endLocal,
		IsAllDay:   allDay,
	})
	uc.grid.ClearSelection()
}

// OnEventActivate implements calendar.UseCase.
func (uc *implUseCase) OnEventActivate(ctx context.Context, eventID string) error {
	if !uc.gate.State().IsReady() {
		return nil
	}
	op := uc.opener()
	if op == nil {
		uc.l.Warnf(ctx, "calendar.OnEventActivate: no editor attached")
		return nil
	}

	ev, ok := uc.cached(eventID)
	if !ok {
		return fmt.Errorf("%w: %s", calendar.ErrEventNotFound, eventID)
	}
	op.OpenEdit(ev)
	return nil
}
