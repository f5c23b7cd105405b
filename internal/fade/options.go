package fade

import (
	"time"

	"github.com/clambin/ledhub/internal/clock"
)

// Option configures an Engine
type Option func(*Engine)

// WithBounds sets the lowest and highest brightness of a fade, in [0, 1]. Default: 0 and 1.
func WithBounds(low, high float64) Option {
	return func(e *Engine) {
		e.low = low
		e.high = high
	}
}

// WithAlarmDuration sets the duration of an Alarm fade. Default: 30 minutes.
func WithAlarmDuration(d time.Duration) Option {
	return func(e *Engine) {
		e.alarmDuration = d
	}
}

// WithAutoStop determines what happens when a fade completes: if true, the engine returns to None
// (and brightness is no longer overridden). Otherwise, the final brightness is held until Stop is called.
func WithAutoStop(autoStop bool) Option {
	return func(e *Engine) {
		e.autoStop = autoStop
	}
}

// WithAlarm makes Handle start an Alarm fade when the clock reaches the specified time
func WithAlarm(at clock.ClockTime) Option {
	return func(e *Engine) {
		e.alarm = &at
	}
}

// WithSunset makes Handle start a Sunset fade duration before sunset. The fade ends at sunset + offset.
func WithSunset(duration, offset time.Duration) Option {
	return func(e *Engine) {
		e.sunsetTrigger = true
		e.sunsetDuration = duration
		e.sunsetOffset = offset
	}
}
