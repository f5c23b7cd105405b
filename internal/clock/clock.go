package clock

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Clock returns the current wall-clock time. ok is false when the clock is unavailable (e.g. not yet synchronised).
type Clock interface {
	Now() (t time.Time, ok bool)
}

// GetTime returns the current hour and minute of the provided Clock
func GetTime(c Clock) (hour, minute int, ok bool) {
	now, ok := c.Now()
	if !ok {
		return 0, 0, false
	}
	return now.Hour(), now.Minute(), true
}

// syncedAfter is the earliest year a synchronised clock can report. RTCs without a backup battery start at epoch.
const syncedAfter = 2020

// System reads the system clock
type System struct {
	Location *time.Location
}

var _ Clock = System{}

// Now returns the current time, in the configured location (local time if none is set)
func (s System) Now() (time.Time, bool) {
	now := time.Now()
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return now, now.Year() >= syncedAfter
}

// Func adapts a function to the Clock interface
type Func func() (time.Time, bool)

// Now calls f()
func (f Func) Now() (time.Time, bool) {
	return f()
}

// ClockTime is a time of day, with minute resolution
type ClockTime struct {
	Hour   int
	Minute int
}

// Parse parses a time of day in HH:MM notation
func Parse(value string) (ClockTime, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time of day %q: %w", value, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the number of minutes since midnight
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Add returns the time of day d later, wrapping around midnight. d is truncated to whole minutes.
func (c ClockTime) Add(d time.Duration) ClockTime {
	m := (c.Minutes() + int(d/time.Minute)) % (24 * 60)
	if m < 0 {
		m += 24 * 60
	}
	return ClockTime{Hour: m / 60, Minute: m % 60}
}

// On returns the instant of c on the same day as t, in t's location
func (c ClockTime) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// Matches reports whether hour:minute equals c
func (c ClockTime) Matches(hour, minute int) bool {
	return c.Hour == hour && c.Minute == minute
}

// UnmarshalYAML reads a ClockTime in HH:MM notation
func (c *ClockTime) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	t, err := Parse(s)
	if err == nil {
		*c = t
	}
	return err
}
