// Package biztime keeps all stored times in UTC and uses the business's
// timezone only to compute calendar boundaries, e.g. "today" for the audit
// log filter.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	mu       sync.RWMutex
	location = time.UTC
	nowFunc  = time.Now
)

// Init sets the business timezone. An empty name keeps UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	location = loc
	mu.Unlock()
	return nil
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return location
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	mu.RLock()
	now := nowFunc
	mu.RUnlock()
	return now().UTC()
}

// SetNowFunc replaces the clock, returning a function that restores it.
// Tests only.
func SetNowFunc(fn func() time.Time) (restore func()) {
	mu.Lock()
	prev := nowFunc
	nowFunc = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		nowFunc = prev
		mu.Unlock()
	}
}

// DayBoundsUTC returns [start, end) of the business day containing t.
func DayBoundsUTC(t time.Time) (start, end time.Time) {
	loc := Location()
	local := t.In(loc)
	startLocal := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return startLocal.UTC(), startLocal.AddDate(0, 0, 1).UTC()
}

// ParseBizDate parses "2006-01-02" in the business timezone and returns the
// UTC bounds of that day.
func ParseBizDate(s string) (start, end time.Time, err error) {
	d, err := time.ParseInLocation("2006-01-02", s, Location())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	start, end = DayBoundsUTC(d)
	return start, end, nil
}
