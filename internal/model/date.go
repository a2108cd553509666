package model

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for dates: ISO-8601 calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date (no time-of-day component) that marshals to and
// from "YYYY-MM-DD" JSON strings. The embedded time.Time is always
// midnight UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: must be formatted as YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// String renders the date in wire format.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON renders the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" JSON string. Anything else,
// including numbers and full timestamps, is rejected.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return fmt.Errorf("invalid date %s: must be a YYYY-MM-DD string", s)
	}

	parsed, err := ParseDate(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}
