// Package dateutil parses the free form timestamps found at the top level of
// exported documents and computes day boundaries for date filters.
package dateutil

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/now"
)

// Parse parses a timestamp in any common layout, e.g. "2012-01-02",
// "2012-01-02T15:04:05.123Z" or "2012-01-02 15:04:05". Timestamps without
// zone are read as UTC.
func Parse(value string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(value), time.UTC)
}

// ISODate normalizes a timestamp to YYYY-MM-DD.
func ISODate(value string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

// BeginningOfDay truncates t to midnight, in t's location.
func BeginningOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return now.With(t).EndOfDay()
}

// OnOrAfter reports whether t falls on the day of cutoff or later.
func OnOrAfter(t, cutoff time.Time) bool {
	return !t.Before(BeginningOfDay(cutoff))
}
