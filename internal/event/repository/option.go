package repository

import "time"

const (
	// SendUpdatesAll asks the backend to mail every attendee about the
	// change; SendUpdatesNone suppresses the mail. An empty SendUpdates
	// omits the parameter entirely, which is how attendee-free saves
	// and drag/resize patches go out.
	SendUpdatesAll  = "all"
	SendUpdatesNone = "none"
)

// ListEventsOptions holds the parameters for a windowed event listing.
// Zero TimeMin/TimeMax means the implementation picks its default window.
type ListEventsOptions struct {
	SessionID        string
	TimeMin          time.Time
	TimeMax          time.Time
	Query            string // Free-text search (q)
	IncludeHolidays  bool
	IncludeBirthdays bool
}

// WriteOptions holds the addressing parameters for a single-event mutation.
type WriteOptions struct {
	SessionID   string
	CalendarID  string // Defaults to "primary" when empty
	EventID     string // Required for update, patch, delete
	SendUpdates string // "all" or "none"; empty omits the parameter
}
