package calendar

// Range is a grid viewport in ISO-8601 timestamps. Either bound may be
// empty, in which case the backend applies its default window.
type Range struct {
	Start string
	End   string
}

// ListFlags carries the calendar-set toggles applied to every fetch.
type ListFlags struct {
	IncludeHolidays  bool
	IncludeBirthdays bool
}
