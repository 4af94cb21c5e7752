package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yhoon3002/schedule-bot/internal/editor"
	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
)

// Save implements editor.UseCase. Validation runs before anything goes
// on the wire: an open editor, a non-empty start, and every stored
// attendee syntactically valid. The attendee re-check guards against
// stale invalid entries reaching the backend when the list was mutated
// outside AddAttendee. On success the editor closes and the grid is
// asked to refetch; every failure leaves it open for a retry.
func (uc *implUseCase) Save(ctx context.Context) error {
	uc.mu.Lock()
	if !uc.session.Open {
		uc.mu.Unlock()
		return editor.ErrEditorClosed
	}
	if strings.TrimSpace(uc.form.StartLocal) == "" {
		uc.session.FormError = editor.ErrMissingStart.Error()
		uc.mu.Unlock()
		return editor.ErrMissingStart
	}
	for _, email := range uc.form.Attendees {
		if !emailPattern.MatchString(email) {
			uc.session.FormError = fmt.Sprintf("invalid attendee email: %s", email)
			uc.mu.Unlock()
			return fmt.Errorf("%w: %s", editor.ErrInvalidAttendee, email)
		}
	}

	form := uc.form
	form.Attendees = append(make([]string, 0, len(uc.form.Attendees)), uc.form.Attendees...)
	mode := uc.session.Mode
	eventID := uc.session.EventID
	calendarID := uc.session.CalendarID
	uc.session.Saving = true
	uc.session.FormError = ""
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		uc.session.Saving = false
		uc.mu.Unlock()
	}()

	draft, err := event.ToWire(form, uc.clock)
	if err != nil {
		uc.l.Warnf(ctx, "editor.Save: bad form times: %v", err)
		uc.setFormError(err.Error())
		return fmt.Errorf("%w: %v", editor.ErrInvalidTime, err)
	}

	opt := repository.WriteOptions{
		SessionID:   uc.ref.SessionID(),
		CalendarID:  calendarID,
		EventID:     eventID,
		SendUpdates: notificationMode(form),
	}
	if mode == editor.ModeEdit {
		_, err = uc.repo.UpdateEvent(ctx, opt, draft)
	} else {
		_, err = uc.repo.CreateEvent(ctx, opt, draft)
	}
	if err != nil {
		uc.l.Errorf(ctx, "editor.Save: %v", err)
		return err
	}

	uc.Close()
	uc.fresh.RequestRefresh(ctx)
	return nil
}

// Delete implements editor.UseCase. Only an edit session with a known
// event id has anything to delete.
func (uc *implUseCase) Delete(ctx context.Context) error {
	uc.mu.Lock()
	if !uc.session.Open {
		uc.mu.Unlock()
		return editor.ErrEditorClosed
	}
	if uc.session.Mode != editor.ModeEdit || uc.session.EventID == "" {
		uc.mu.Unlock()
		return editor.ErrNothingToDelete
	}
	eventID := uc.session.EventID
	calendarID := uc.session.CalendarID
	uc.session.Deleting = true
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		uc.session.Deleting = false
		uc.mu.Unlock()
	}()

	err := uc.repo.DeleteEvent(ctx, repository.WriteOptions{
		SessionID:  uc.ref.SessionID(),
		CalendarID: calendarID,
		EventID:    eventID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "editor.Delete: %v", err)
		return err
	}

	uc.Close()
	uc.fresh.RequestRefresh(ctx)
	return nil
}

func (uc *implUseCase) setFormError(msg string) {
	uc.mu.Lock()
	if uc.session.Open {
		uc.session.FormError = msg
	}
	uc.mu.Unlock()
}

// notificationMode picks the attendee-mail instruction: omitted when
// nobody is invited, otherwise "all" or "none" from the form toggle.
func notificationMode(f event.Form) string {
	if len(f.Attendees) == 0 {
		return ""
	}
	if f.NotifyAttendees {
		return repository.SendUpdatesAll
	}
	return repository.SendUpdatesNone
}
