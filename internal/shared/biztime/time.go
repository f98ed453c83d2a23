// Package biztime holds the business timezone used to interpret calendar
// dates. Subscription start and end dates are plain dates with no time of
// day, so they are parsed and compared as midnight in this zone.
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Riyadh"

	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error

	// nowFunc is replaced in tests.
	nowFunc = time.Now
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Riyadh.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, initializing the
// default zone on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// Now returns the current instant in the business timezone.
func Now() time.Time {
	return nowFunc().In(Location())
}

// Today returns midnight of the current business day.
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay truncates t to midnight of its business day.
func StartOfDay(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location())
}

// AddMonths moves a date by n calendar months, keeping midnight.
func AddMonths(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, n, 0)
}

// ParseDate parses a YYYY-MM-DD string as midnight in the business timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in the business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}
