package calendar

import "errors"

var (
	// ErrEventNotFound means the activated or dragged event id is not
	// in the controller's displayed set, usually because another
	// client changed the calendar since the last fetch.
	ErrEventNotFound = errors.New("event not found in displayed range")

	// ErrInvalidRange means a viewport bound could not be parsed.
	ErrInvalidRange = errors.New("invalid range bound")
)
