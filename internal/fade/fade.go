// Package fade computes a brightness level that ramps up at wake-up time (Alarm) or down towards sunset (Sunset).
//
// An Engine is driven by a single scheduler loop, calling Handle once per cycle. It is not safe for concurrent use.
package fade

import (
	"errors"
	"fmt"
	"time"

	"github.com/clambin/ledhub/internal/clock"
	"github.com/clambin/ledhub/internal/mathx"
	"github.com/clambin/ledhub/internal/sunset"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidMode      = errors.New("invalid fade mode")
	ErrNotInitialized   = errors.New("fade engine not initialized")
	ErrClockUnavailable = errors.New("clock unavailable")
	ErrInvalidOptions   = errors.New("invalid fade options")
)

// Output receives the brightness computed by the Engine
type Output interface {
	SetBrightness(value uint8)
	Show() error
}

// Engine runs Alarm and Sunset fades
type Engine struct {
	clock  clock.Clock
	sunset sunset.Source
	output Output

	low, high     float64
	alarmDuration time.Duration
	autoStop      bool

	alarm          *clock.ClockTime
	sunsetTrigger  bool
	sunsetDuration time.Duration
	sunsetOffset   time.Duration

	initialized bool
	mode        Mode
	session     session
	level       float64

	overriding  bool
	lastApplied uint8

	lastMinute  minute
	sunsetStart dailyTime
}

type session struct {
	start     time.Time
	end       time.Time
	from, to  float64
	completed bool
}

type minute struct {
	valid        bool
	hour, minute int
}

type dailyTime struct {
	day   int
	at    clock.ClockTime
	ok    bool
	tried bool
}

// New returns an Engine. Initialize must be called before the Engine is used.
func New(c clock.Clock, s sunset.Source, output Output, options ...Option) *Engine {
	e := Engine{
		clock:         c,
		sunset:        s,
		output:        output,
		low:           0,
		high:          1,
		alarmDuration: 30 * time.Minute,
	}
	for _, option := range options {
		option(&e)
	}
	return &e
}

// Initialize validates the Engine's configuration and puts it in None mode
func (e *Engine) Initialize() error {
	if e.clock == nil || e.sunset == nil {
		return fmt.Errorf("%w: clock and sunset source are required", ErrInvalidOptions)
	}
	if e.low < 0 || e.high > 1 || e.low > e.high {
		return fmt.Errorf("%w: bounds must satisfy 0 <= low (%.2f) <= high (%.2f) <= 1", ErrInvalidOptions, e.low, e.high)
	}
	if e.alarmDuration <= 0 {
		return fmt.Errorf("%w: alarm duration must be positive", ErrInvalidOptions)
	}
	if e.sunsetDuration < 0 {
		return fmt.Errorf("%w: sunset duration cannot be negative", ErrInvalidOptions)
	}
	e.mode = None
	e.session = session{}
	e.level = e.high
	e.initialized = true
	return nil
}

// Mode returns the active mode
func (e *Engine) Mode() Mode {
	return e.mode
}

// Level returns the last computed brightness, in [0, 1]
func (e *Engine) Level() float64 {
	return e.level
}

// Brightness returns the brightness multiplier to apply: the current level during a fade, 1 otherwise.
func (e *Engine) Brightness() float64 {
	if e.mode == None {
		return 1
	}
	return e.level
}

// Completed reports whether the active fade has reached its final level
func (e *Engine) Completed() bool {
	return e.mode != None && e.session.completed
}

// Begin starts a new fade, replacing any active one. For Sunset, the sunset time is resolved once, when the fade starts.
func (e *Engine) Begin(mode Mode) error {
	if !e.initialized {
		return ErrNotInitialized
	}
	if mode != Alarm && mode != Sunset {
		return fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	now, ok := e.clock.Now()
	if !ok {
		return ErrClockUnavailable
	}

	s := session{start: now}
	switch mode {
	case Alarm:
		s.end = now.Add(e.alarmDuration)
		s.from, s.to = e.low, e.high
	case Sunset:
		at, err := e.sunset.SunsetTime()
		if err != nil {
			return fmt.Errorf("sunset: %w", err)
		}
		s.end = at.On(now).Add(e.sunsetOffset)
		s.from, s.to = e.high, e.low
	}

	e.mode = mode
	e.session = s
	e.level = s.from
	log.WithFields(log.Fields{"mode": mode, "end": s.end.Format(time.TimeOnly)}).Info("fade started")
	return nil
}

// Stop ends the active fade, if any
func (e *Engine) Stop() {
	if e.mode != None {
		log.WithField("mode", e.mode).Info("fade stopped")
	}
	e.mode = None
	e.session = session{}
}

// Tick updates the brightness level of the active fade. If the clock is unavailable, the level is left unchanged.
func (e *Engine) Tick() {
	if e.mode == None {
		return
	}
	now, ok := e.clock.Now()
	if !ok {
		log.Debug("clock unavailable. holding fade level")
		return
	}

	fraction := 1.0
	if total := e.session.end.Sub(e.session.start); total > 0 {
		fraction = mathx.Clamp(float64(now.Sub(e.session.start))/float64(total), 0, 1)
	}
	level := mathx.Lerp(e.session.from, e.session.to, fraction)

	// a fade only moves in one direction, even if the clock is set back
	if e.session.to > e.session.from {
		e.level = max(e.level, level)
	} else {
		e.level = min(e.level, level)
	}

	if fraction < 1 {
		return
	}
	e.session.completed = true
	if e.autoStop {
		log.WithField("mode", e.mode).Info("fade completed")
		e.Stop()
	}
}

// Handle starts any fade scheduled for the current time, updates the level and applies it to the output
func (e *Engine) Handle() {
	if !e.initialized {
		return
	}
	e.checkTriggers()
	e.Tick()
	e.apply()
}

func (e *Engine) checkTriggers() {
	now, ok := e.clock.Now()
	if !ok {
		return
	}
	current := minute{valid: true, hour: now.Hour(), minute: now.Minute()}
	if current == e.lastMinute {
		return
	}
	e.lastMinute = current

	if e.alarm != nil && e.alarm.Matches(current.hour, current.minute) {
		if err := e.Begin(Alarm); err != nil {
			log.WithError(err).Warning("failed to start alarm")
		}
	}
	if e.sunsetTrigger {
		if at, ok := e.sunsetStartTime(now); ok && at.Matches(current.hour, current.minute) {
			if err := e.Begin(Sunset); err != nil {
				log.WithError(err).Warning("failed to start sunset")
			}
		}
	}
}

// sunsetStartTime returns the time at which today's Sunset fade should start. It is resolved once per day.
func (e *Engine) sunsetStartTime(now time.Time) (clock.ClockTime, bool) {
	if !e.sunsetStart.tried || e.sunsetStart.day != now.YearDay() {
		e.sunsetStart = dailyTime{day: now.YearDay(), tried: true}
		at, err := e.sunset.SunsetTime()
		if err != nil {
			log.WithError(err).Warning("failed to determine sunset time")
			return clock.ClockTime{}, false
		}
		e.sunsetStart.at = at.Add(e.sunsetOffset - e.sunsetDuration)
		e.sunsetStart.ok = true
		log.WithField("start", e.sunsetStart.at).Debug("sunset fade scheduled")
	}
	return e.sunsetStart.at, e.sunsetStart.ok
}

func (e *Engine) apply() {
	if e.output == nil {
		return
	}
	if e.mode == None {
		if e.overriding {
			e.overriding = false
			e.write(255)
		}
		return
	}
	if value := mathx.Scale8(e.level); !e.overriding || value != e.lastApplied {
		e.overriding = true
		e.lastApplied = value
		e.write(value)
	}
}

func (e *Engine) write(value uint8) {
	e.output.SetBrightness(value)
	if err := e.output.Show(); err != nil {
		log.WithError(err).Warning("failed to update LEDs")
	}
}
