package editor

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/event"
)

//go:generate mockery --name UseCase

// UseCase is the modal editor state machine. One instance backs one modal;
// all methods are safe for concurrent use and Snapshot returns copies.
type UseCase interface {
	// OpenCreate opens the editor in create mode seeded from a grid
	// selection. New events always target the primary calendar.
	OpenCreate(in OpenCreateInput)

	// OpenEdit opens the editor in edit mode seeded from an existing
	// event. The form copies the event's fields, so edits never touch the
	// grid's cached copy before a successful save.
	OpenEdit(ev event.Event)

	// UpdateForm applies the patch's non-nil fields to the form.
	UpdateForm(patch FormPatch)

	// AddAttendee validates and appends an email to the draft's attendee
	// list. A failed validation sets Session.AttendeeError and returns the
	// matching sentinel; adding an email already on the list is silently
	// ignored.
	AddAttendee(email string) error

	// RemoveAttendee drops the attendee at index. Out of range is a no-op.
	RemoveAttendee(index int)

	// Save submits the form: create in create mode, update in edit mode.
	// On success the editor closes and a grid refresh is requested; on
	// failure it stays open with Saving cleared so the user can retry.
	Save(ctx context.Context) error

	// Delete removes the event being edited. Create mode has nothing to
	// delete. Same success and failure contract as Save.
	Delete(ctx context.Context) error

	// Close resets the editor and form to the neutral empty state. Safe to
	// call in any state.
	Close()

	// Snapshot returns the current session and form.
	Snapshot() (Session, event.Form)
}

// FormPatch carries field edits from the modal. Nil fields stay untouched.
// Attendees change only through AddAttendee and RemoveAttendee.
type FormPatch struct {
	Title           *string
	StartLocal      *string
	EndLocal        *string
	Location        *string
	Description     *string
	NotifyAttendees *bool
}

// Refresher is the editor's view of the grid controller: after a successful
// save or delete the editor requests a refetch instead of patching the
// displayed events itself.
type Refresher interface {
	RequestRefresh(ctx context.Context)
}
