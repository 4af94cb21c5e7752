package localtime

import (
	"fmt"
	"strings"
	"time"
)

// InputLayout is the wall-clock layout exchanged with the calendar page
// (HTML datetime-local inputs), no zone and no seconds.
const InputLayout = "2006-01-02T15:04"

// DateLayout is the all-day layout used by calendar wire payloads.
const DateLayout = "2006-01-02"

// Clock converts between page-local wall-clock strings and absolute
// time.Time values in one IANA timezone.
type Clock struct {
	location *time.Location
}

// NewClock creates a clock for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc}, nil
}

// Location exposes the clock's zone for code that needs raw conversions.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Now returns the current instant in the clock's zone.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.location)
}

// ParseInput parses a page-local "2006-01-02T15:04" string. Seconds are
// tolerated because some browsers include them.
func (c *Clock) ParseInput(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(InputLayout, s, c.location); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid local time %q: %w", s, err)
	}
	return t, nil
}

// FormatInput renders t as a page-local input string.
func (c *Clock) FormatInput(t time.Time) string {
	return t.In(c.location).Format(InputLayout)
}

// ParseISO parses calendar wire timestamps: RFC 3339 with offset, or a
// bare "2006-01-02" date which is taken as midnight in the clock's zone.
func (c *Clock) ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if IsDateOnly(s) {
		t, err := time.ParseInLocation(DateLayout, s, c.location)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.In(c.location), nil
}

// InputFromISO converts a wire timestamp straight to the page-local
// input form. Empty input stays empty.
func (c *Clock) InputFromISO(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	t, err := c.ParseISO(s)
	if err != nil {
		return "", err
	}
	return c.FormatInput(t), nil
}

// RFC3339 renders t with the clock's offset, e.g. "2024-01-01T10:00:00+09:00".
func (c *Clock) RFC3339(t time.Time) string {
	return t.In(c.location).Format(time.RFC3339)
}

// Date renders t as an all-day wire date in the clock's zone.
func (c *Clock) Date(t time.Time) string {
	return t.In(c.location).Format(DateLayout)
}

// IsDateOnly reports whether s looks like a bare "2006-01-02" date.
func IsDateOnly(s string) bool {
	return len(s) == len(DateLayout) && !strings.ContainsAny(s, "T ")
}
