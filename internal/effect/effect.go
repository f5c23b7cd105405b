// Package effect registers LED effects and dispatches timed ticks to the active one.
package effect

import (
	"errors"
	"fmt"
	"time"
)

// Effect is a self-contained LED animation. An Effect owns its own animation state.
type Effect interface {
	// Reset prepares the effect (and the LEDs) for a new activation
	Reset()
	// Tick renders the next step of the animation
	Tick()
}

// Descriptor holds an Effect and its timing
type Descriptor struct {
	// Name identifies the effect
	Name   string
	Effect Effect
	// IntervalZeroOffset is the delay before the first Tick after activation
	IntervalZeroOffset time.Duration
	// IntervalStepSize is the delay between subsequent Ticks. Zero means every scheduler cycle.
	IntervalStepSize time.Duration
}

var (
	ErrUnknownEffect   = errors.New("unknown effect")
	ErrDuplicateEffect = errors.New("duplicate effect")
	ErrInvalidEffect   = errors.New("invalid effect")
)

// Registry holds all available effects, in registration order
type Registry struct {
	effects []Descriptor
	index   map[string]int
}

// NewRegistry returns an empty Registry
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds effects to the registry. Either all descriptors are added, or none are.
func (r *Registry) Register(descriptors ...Descriptor) error {
	seen := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		if d.Name == "" || d.Effect == nil {
			return fmt.Errorf("%w: %q", ErrInvalidEffect, d.Name)
		}
		if d.IntervalZeroOffset < 0 || d.IntervalStepSize < 0 {
			return fmt.Errorf("%w: %q has a negative interval", ErrInvalidEffect, d.Name)
		}
		if _, ok := r.index[d.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateEffect, d.Name)
		}
		if _, ok := seen[d.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateEffect, d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	for _, d := range descriptors {
		r.index[d.Name] = len(r.effects)
		r.effects = append(r.effects, d)
	}
	return nil
}

// Get returns the effect with the specified name
func (r *Registry) Get(name string) (Descriptor, bool) {
	i, ok := r.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.effects[i], true
}

// Names returns the names of all registered effects
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.effects))
	for _, d := range r.effects {
		names = append(names, d.Name)
	}
	return names
}
