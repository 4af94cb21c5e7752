package event

// --- Wire Schema (Google Calendar v3 JSON) ---

// WireDateTime is a calendar boundary: all-day events carry Date,
// timed events carry DateTime.
type WireDateTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// WireAttendee is a guest entry on a wire event.
type WireAttendee struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Wire is the event shape read from the calendar backend. The
// _calendarId field is an annotation added by the list endpoint so
// merged multi-calendar responses keep their source calendar.
type Wire struct {
	ID          string         `json:"id,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	Start       *WireDateTime  `json:"start,omitempty"`
	End         *WireDateTime  `json:"end,omitempty"`
	Location    string         `json:"location,omitempty"`
	Description string         `json:"description,omitempty"`
	Attendees   []WireAttendee `json:"attendees,omitempty"`
	Status      string         `json:"status,omitempty"`
	CalendarID  string         `json:"_calendarId,omitempty"`
}

// Draft is the full mutation body the editor submits on create and
// update. Attendees has no omitempty: an update clears guests by
// sending an empty list, so the key must survive serialization.
type Draft struct {
	Summary     string         `json:"summary"`
	Start       *WireDateTime  `json:"start,omitempty"`
	End         *WireDateTime  `json:"end,omitempty"`
	Location    string         `json:"location,omitempty"`
	Description string         `json:"description,omitempty"`
	Attendees   []WireAttendee `json:"attendees"`
}

// TimePatch is the minimal body for drag and resize updates: only the
// boundaries move, everything else on the event is left untouched.
type TimePatch struct {
	Start *WireDateTime `json:"start,omitempty"`
	End   *WireDateTime `json:"end,omitempty"`
}

// --- Internal Model ---

// Event is the grid-facing model every wire event is normalized into.
// Start and End stay ISO strings: they pass straight through to the
// grid, and only the editor ever parses them.
type Event struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Start          string   `json:"start"`
	End            string   `json:"end,omitempty"`
	AllDay         bool     `json:"allDay"`
	CalendarID     string   `json:"calendarId"`
	Location       string   `json:"location,omitempty"`
	Description    string   `json:"description,omitempty"`
	AttendeeEmails []string `json:"attendeeEmails,omitempty"`
}

// Form is the mutable draft bound to the editor modal. StartLocal and
// EndLocal use the page-local "2006-01-02T15:04" layout with no zone.
type Form struct {
	Title           string   `json:"title"`
	StartLocal      string   `json:"startLocal"`
	EndLocal        string   `json:"endLocal"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Attendees       []string `json:"attendees"`
	NotifyAttendees bool     `json:"notifyAttendees"`
}
