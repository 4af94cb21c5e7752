package event

const (
	// DefaultTitle is shown for events saved or received without a summary.
	DefaultTitle = "(제목 없음)"

	// DefaultCalendarID is the calendar new events are created on and
	// the fallback for wire events that carry no source annotation.
	DefaultCalendarID = "primary"
)
