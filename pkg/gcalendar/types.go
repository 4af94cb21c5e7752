package gcalendar

import "time"

// DefaultMaxResults caps one list page. The grid never shows more than
// a few weeks, so paging is not implemented.
const DefaultMaxResults int64 = 2500

// ListEventsRequest is the input for listing events of one calendar.
// Zero times leave the corresponding bound off the request.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Query      string
	EventTypes []string
	MaxResults int64
}

// CalendarEntry is a simplified calendar-list row.
type CalendarEntry struct {
	ID       string
	Summary  string
	Selected bool
	Primary  bool
}
