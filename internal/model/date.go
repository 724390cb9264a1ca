package model

import (
	"fmt"
	"time"
)

// DateFormat is the wire format the backend uses for date columns.
const DateFormat = "2006-01-02"

// Date is a calendar date with no time-of-day component. It embeds
// time.Time, so comparisons like After and Before come for free.
type Date struct {
	time.Time
}

// ParseDate parses a bare YYYY-MM-DD string. Timestamps and other layouts
// are rejected; lenient parsing belongs to UnmarshalJSON only.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// NewDate constructs a date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date in the local time zone.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) String() string {
	return d.Format(DateFormat)
}

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a bare date, an RFC 3339 timestamp (some backends
// return one for date columns and the time-of-day is dropped), or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("parsing date: not a JSON string: %s", s)
	}
	s = s[1 : len(s)-1]
	if t, err := time.Parse(DateFormat, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", s, err)
	}
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
