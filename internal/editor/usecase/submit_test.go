package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/yhoon3002/schedule-bot/internal/editor"
	"github.com/yhoon3002/schedule-bot/internal/event"
	"github.com/yhoon3002/schedule-bot/internal/event/repository"
)

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Mode Posts Draft And Closes", func(t *testing.T) {
		repo := &mockEventRepo{}
		fresh := &mockRefresher{}
		uc := newTestEditor(repo, fresh)

		uc.OpenCreate(editor.OpenCreateInput{Title: "Lunch", StartLocal: "2024-01-01T12:00"})
		if err := uc.Save(ctx); err != nil {
			t.Fatalf("Save() = %v", err)
		}

		if repo.createCalls != 1 || repo.updateCalls != 0 {
			t.Errorf("calls = create %d update %d", repo.createCalls, repo.updateCalls)
		}
		if repo.lastOpt.SessionID != "sid-1" || repo.lastOpt.CalendarID != event.DefaultCalendarID {
			t.Errorf("write options = %+v", repo.lastOpt)
		}
		if repo.lastDraft.Summary != "Lunch" {
			t.Errorf("draft summary = %q", repo.lastDraft.Summary)
		}
		if repo.lastDraft.End.DateTime != "2024-01-01T13:00:00+09:00" {
			t.Errorf("draft end = %+v, want start+1h", repo.lastDraft.End)
		}
		if fresh.refreshCalls != 1 {
			t.Errorf("refresh calls = %d, want 1", fresh.refreshCalls)
		}
		if sess, _ := uc.Snapshot(); sess.Open {
			t.Errorf("editor must close on success")
		}
	})

	t.Run("Edit Mode Updates By Id", func(t *testing.T) {
		repo := &mockEventRepo{}
		uc := newTestEditor(repo, &mockRefresher{})

		uc.OpenEdit(event.Event{
			ID:         "ev-9",
			Title:      "Dinner",
			Start:      "2024-01-01T19:00:00+09:00",
			End:        "2024-01-01T20:00:00+09:00",
			CalendarID: "family",
		})
		if err := uc.Save(ctx); err != nil {
			t.Fatalf("Save() = %v", err)
		}

		if repo.updateCalls != 1 || repo.createCalls != 0 {
			t.Errorf("calls = create %d update %d", repo.createCalls, repo.updateCalls)
		}
		if repo.lastOpt.EventID != "ev-9" || repo.lastOpt.CalendarID != "family" {
			t.Errorf("write options = %+v", repo.lastOpt)
		}
	})

	t.Run("Notification Mode Omitted Without Attendees", func(t *testing.T) {
		repo := &mockEventRepo{}
		uc := newTestEditor(repo, &mockRefresher{})

		uc.OpenCreate(editor.OpenCreateInput{StartLocal: "2024-01-01T12:00"})
		uc.Save(ctx)

		if repo.lastOpt.SendUpdates != "" {
			t.Errorf("sendUpdates = %q, want omitted", repo.lastOpt.SendUpdates)
		}
	})

	t.Run("Notification Mode Follows Toggle", func(t *testing.T) {
		repo := &mockEventRepo{}
		uc := newTestEditor(repo, &mockRefresher{})

		uc.OpenCreate(editor.OpenCreateInput{StartLocal: "2024-01-01T12:00"})
		uc.AddAttendee("a@b.com")
		uc.Save(ctx)
		if repo.lastOpt.SendUpdates != "all" {
			t.Errorf("sendUpdates = %q, want all", repo.lastOpt.SendUpdates)
		}

		uc.OpenCreate(editor.OpenCreateInput{StartLocal: "2024-01-01T12:00"})
		uc.AddAttendee("a@b.com")
		notify := false
		uc.UpdateForm(editor.FormPatch{NotifyAttendees: &notify})
		uc.Save(ctx)
		if repo.lastOpt.SendUpdates != "none" {
			t.Errorf("sendUpdates = %q, want none", repo.lastOpt.SendUpdates)
		}
	})

	t.Run("Missing Start Never Reaches Backend", func(t *testing.T) {
		repo := &mockEventRepo{}
		uc := newTestEditor(repo, &mockRefresher{})

		uc.OpenCreate(editor.OpenCreateInput{Title: "no when"})
		err := uc.Save(ctx)
		if !errors.Is(err, editor.ErrMissingStart) {
			t.Fatalf("Save() = %v, want ErrMissingStart", err)
		}
		if repo.createCalls != 0 {
			t.Errorf("backend reached despite missing start")
		}
		sess, _ := uc.Snapshot()
		if !sess.Open || sess.FormError == "" {
			t.Errorf("editor must stay open with a form error: %+v", sess)
		}
	})

	t.Run("Stale Invalid Attendee Aborts Submission", func(t *testing.T) {
		repo := &mockEventRepo{}
		uc := newTestEditor(repo, &mockRefresher{})

		uc.OpenCreate(editor.OpenCreateInput{StartLocal: "2024-01-01T12:00"})
		// Corrupt the list the way programmatic mutation would.
		uc.mu.Lock()
		uc.form.Attendees = append(uc.form.Attendees, "not-an-email")
		uc.mu.Unlock()

		err := uc.Save(ctx)
		if !errors.Is(err, editor.ErrInvalidAttendee) {
			t.Fatalf("Save() = %v, want ErrInvalidAttendee", err)
		}
		if repo.createCalls != 0 {
			t.Errorf("backend reached despite invalid attendee")
		}
	})

	t.Run("Backend Failure Keeps Editor Open", func(t *testing.T) {
		repo := &mockEventRepo{
			createFunc: func(ctx context.Context, opt repository.WriteOptions, draft event.Draft) (event.Wire, error) {
				return event.Wire{}, errors.New("backend down")
			},
		}
		fresh := &mockRefresher{}
		uc := newTestEditor(repo, fresh)

		uc.OpenCreate(editor.OpenCreateInput{StartLocal: "2024-01-01T12:00"})
		if err := uc.Save(ctx); err == nil {
			t.Fatalf("Save() = nil, want transport error")
		}

		sess, form := uc.Snapshot()
		if !sess.Open {
			t.Errorf("editor must stay open for a retry")
		}
		if sess.Saving {
			t.Errorf("saving flag stuck after failure")
		}
		if form.StartLocal != "2024-01-01T12:00" {
			t.Errorf("form wiped on failure: %+v", form)
		}
		if fresh.refreshCalls != 0 {
			t.Errorf("refresh requested despite failure")
		}
	})

	t.Run("Closed Editor Rejects Save", func(t *testing.T) {
		uc := newTestEditor(&mockEventRepo{}, &mockRefresher{})
		if err := uc.Save(ctx); !errors.Is(err, editor.ErrEditorClosed) {
			t.Errorf("Save() = %v, want ErrEditorClosed", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Edit Mode Deletes And Closes", func(t *testing.T) {
		repo := &mockEventRepo{}
		fresh := &mockRefresher{}
		uc := newTestEditor(repo, fresh)

		uc.OpenEdit(event.Event{ID: "ev-9", Start: "2024-01-01T19:00:00+09:00", CalendarID: "family"})
		if err := uc.Delete(ctx); err != nil {
			t.Fatalf("Delete() = %v", err)
		}

		if repo.deleteCalls != 1 {
			t.Errorf("delete calls = %d", repo.deleteCalls)
		}
		if repo.lastOpt.EventID != "ev-9" || repo.lastOpt.CalendarID != "family" {
			t.Errorf("write options = %+v", repo.lastOpt)
		}
		if repo.lastOpt.SendUpdates != "" {
			t.Errorf("delete must not carry a notification mode")
		}
		if fresh.refreshCalls != 1 {
			t.Errorf("refresh calls = %d", fresh.refreshCalls)
		}
		if sess, _ := uc.Snapshot(); sess.Open {
			t.Errorf("editor must close on success")
		}
	})

	t.Run("Create Mode Has Nothing To Delete", func(t *testing.T) {
		repo := &mockEventRepo{}
		uc := newTestEditor(repo, &mockRefresher{})

		uc.OpenCreate(editor.OpenCreateInput{StartLocal: "2024-01-01T12:00"})
		if err := uc.Delete(ctx); !errors.Is(err, editor.ErrNothingToDelete) {
			t.Fatalf("Delete() = %v, want ErrNothingToDelete", err)
		}
		if repo.deleteCalls != 0 {
			t.Errorf("backend reached from create mode")
		}
	})

	t.Run("Backend Failure Clears Deleting And Stays Open", func(t *testing.T) {
		repo := &mockEventRepo{
			deleteFunc: func(ctx context.Context, opt repository.WriteOptions) error {
				return errors.New("backend down")
			},
		}
		fresh := &mockRefresher{}
		uc := newTestEditor(repo, fresh)

		uc.OpenEdit(event.Event{ID: "ev-9", Start: "2024-01-01T19:00:00+09:00"})
		if err := uc.Delete(ctx); err == nil {
			t.Fatalf("Delete() = nil, want transport error")
		}

		sess, _ := uc.Snapshot()
		if !sess.Open || sess.Deleting {
			t.Errorf("session after failure = %+v, want open with Deleting cleared", sess)
		}
		if fresh.refreshCalls != 0 {
			t.Errorf("refresh requested despite failure")
		}
	})

	t.Run("Closed Editor Rejects Delete", func(t *testing.T) {
		uc := newTestEditor(&mockEventRepo{}, &mockRefresher{})
		if err := uc.Delete(ctx); !errors.Is(err, editor.ErrEditorClosed) {
			t.Errorf("Delete() = %v, want ErrEditorClosed", err)
		}
	})
}
