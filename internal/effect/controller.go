package effect

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Controller holds the active effect and decides when it should tick.
//
// A Controller is driven by a single scheduler loop and is not safe for concurrent use.
type Controller struct {
	registry *Registry
	current  Descriptor
	active   bool
	anchored bool
	anchor   time.Duration
	ran      bool
	lastRun  time.Duration
	now      func() time.Duration
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithSchedulerTime gives the Controller access to the scheduler's time, so Activate can start the
// time since activation immediately. Without it, the time since activation starts at the first Tick after Activate.
func WithSchedulerTime(now func() time.Duration) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController returns a Controller for the effects in registry. No effect is active.
func NewController(registry *Registry, options ...ControllerOption) *Controller {
	c := Controller{registry: registry}
	for _, option := range options {
		option(&c)
	}
	return &c
}

// Activate makes d the current effect and resets it. d must be registered.
func (c *Controller) Activate(d Descriptor) error {
	registered, ok := c.registry.Get(d.Name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEffect, d.Name)
	}
	c.current = registered
	c.active = true
	c.anchored = false
	if c.now != nil {
		c.anchor = c.now()
		c.anchored = true
	}
	c.ran = false
	c.current.Effect.Reset()
	log.WithField("effect", d.Name).Debug("effect activated")
	return nil
}

// ActivateByName activates the registered effect with the specified name
func (c *Controller) ActivateByName(name string) error {
	d, ok := c.registry.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return c.Activate(d)
}

// Current returns the active effect
func (c *Controller) Current() (Descriptor, bool) {
	return c.current, c.active
}

// Tick calls the active effect's Tick if its interval has elapsed. now is the scheduler's monotonic time.
// At most one Tick is performed per call: missed intervals are not caught up. Returns true if the effect ran.
func (c *Controller) Tick(now time.Duration) bool {
	if !c.active {
		return false
	}
	if !c.anchored || now < c.anchor {
		c.anchor = now
		c.anchored = true
		c.ran = false
	}
	elapsed := now - c.anchor

	if !c.ran {
		if elapsed < c.current.IntervalZeroOffset {
			return false
		}
	} else if elapsed-c.lastRun < c.current.IntervalStepSize {
		return false
	}

	c.current.Effect.Tick()
	c.ran = true
	c.lastRun = elapsed
	return true
}
