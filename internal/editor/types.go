package editor

// Mode selects which submit path Save takes.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Session is the editor lifecycle snapshot the page renders the modal from.
// Saving and Deleting are true only while the matching round-trip is in
// flight; the page disables the modal's controls whenever either is set.
type Session struct {
	Open          bool   `json:"open"`
	Mode          Mode   `json:"mode,omitempty"`
	EventID       string `json:"eventId,omitempty"`
	CalendarID    string `json:"calendarId,omitempty"`
	Saving        bool   `json:"saving"`
	Deleting      bool   `json:"deleting"`
	AttendeeError string `json:"attendeeError,omitempty"`
	FormError     string `json:"formError,omitempty"`
}

// OpenCreateInput seeds a create-mode form from a grid selection.
// StartLocal and EndLocal are page-local "2006-01-02T15:04" strings;
// all-day selections arrive with the day's midnight as StartLocal.
type OpenCreateInput struct {
	Title      string
	StartLocal string
	EndLocal   string
	IsAllDay   bool
}
