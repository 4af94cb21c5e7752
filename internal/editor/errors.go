package editor

import "errors"

// Domain-specific errors for the editor package.
var (
	ErrEditorClosed    = errors.New("editor is not open")
	ErrMissingStart    = errors.New("start time is required")
	ErrInvalidTime     = errors.New("invalid time value")
	ErrEmptyAttendee   = errors.New("attendee email is empty")
	ErrInvalidAttendee = errors.New("attendee email is invalid")
	ErrNothingToDelete = errors.New("no saved event to delete")
)
