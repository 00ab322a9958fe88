// Package logfilter holds the query side of a user's exercise log: calendar
// date validation and the inclusive range-and-limit filter. Everything here
// is pure and safe for concurrent use.
package logfilter

import (
	"strings"
	"time"
)

// Date is the result of validating a candidate calendar date. The zero value
// is invalid; a valid Date is always midnight UTC of its calendar day.
type Date struct {
	t     time.Time
	valid bool
}

// Valid reports whether d holds a real calendar date.
func (d Date) Valid() bool {
	return d.valid
}

// Time returns the calendar day as midnight UTC. It is the zero time for an
// invalid Date.
func (d Date) Time() time.Time {
	return d.t
}

// DateOf drops the time of day and zone from t, keeping the calendar day as
// seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, day := t.Date()
	return Date{t: time.Date(y, m, day, 0, 0, 0, 0, time.UTC), valid: true}
}

// layouts accepted for incoming dates, tried in order.
var layouts = []string{
	"2006-1-2",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01",
	"2006",
	"2006/1/2",
	"1/2/2006",
	"Mon Jan 2 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.UnixDate,
}

// ParseDate validates raw as a calendar date. Anything that does not parse
// to a real day (empty, malformed, out of range such as Feb 30) yields an
// invalid Date; callers treat "not a date" and "invalid date" the same way.
func ParseDate(raw string) Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return DateOf(t)
		}
	}

	return Date{}
}

// ResolveDate returns the calendar day of raw, or the calendar day of now
// when raw is absent or invalid.
func ResolveDate(raw string, now time.Time) time.Time {
	if d := ParseDate(raw); d.Valid() {
		return d.Time()
	}
	return DateOf(now).Time()
}
