// Package sunset provides the time of today's sunset to the fade engine.
package sunset

import (
	"errors"

	"github.com/clambin/ledhub/internal/clock"
)

// Source returns today's sunset time
type Source interface {
	SunsetTime() (clock.ClockTime, error)
}

// ErrNoSunset is returned when no sunset time is known
var ErrNoSunset = errors.New("sunset time not configured")

// Fixed returns a configured sunset time
type Fixed struct {
	Time *clock.ClockTime
}

var _ Source = Fixed{}

// SunsetTime returns the configured time
func (f Fixed) SunsetTime() (clock.ClockTime, error) {
	if f.Time == nil {
		return clock.ClockTime{}, ErrNoSunset
	}
	return *f.Time, nil
}

// Func adapts a function to the Source interface
type Func func() (clock.ClockTime, error)

// SunsetTime calls f()
func (f Func) SunsetTime() (clock.ClockTime, error) {
	return f()
}
