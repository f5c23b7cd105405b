// Package effects contains the LED effects available to the effect controller.
package effects

import (
	"fmt"
	"image/color"
	"time"

	"github.com/clambin/ledhub/internal/configuration"
	"github.com/clambin/ledhub/internal/effect"
	"github.com/clambin/ledhub/internal/led"
	log "github.com/sirupsen/logrus"
)

var patterns = []struct {
	name  string
	mode  string
	color color.RGBA
}{
	{name: "Linear", mode: "linear", color: color.RGBA{R: 255, A: 255}},
	{name: "Alternating", mode: "alternating", color: color.RGBA{R: 255, G: 60, A: 255}},
	{name: "Binary", mode: "binary", color: color.RGBA{G: 255, A: 255}},
	{name: "ReverseBinary", mode: "reverse-binary", color: color.RGBA{G: 180, B: 255, A: 255}},
	{name: "Random", mode: "random", color: color.RGBA{R: 200, B: 255, A: 255}},
}

// Descriptors returns all effects for strip, with their default timing
func Descriptors(strip led.Strip) ([]effect.Descriptor, error) {
	descriptors := []effect.Descriptor{
		{Name: "Nox", Effect: NewNox(strip), IntervalZeroOffset: 25 * time.Millisecond},
		{Name: "LeftRightLeftRightLeft", Effect: NewWipe(strip), IntervalStepSize: 20 * time.Millisecond},
	}
	for _, p := range patterns {
		e, err := NewPattern(p.name, strip, p.mode, p.color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		descriptors = append(descriptors, effect.Descriptor{Name: p.name, Effect: e, IntervalStepSize: 100 * time.Millisecond})
	}
	return descriptors, nil
}

// Register adds all effects to registry. Timing found in cfg overrides the effect's default timing.
// cfg may not refer to unknown effects.
func Register(registry *effect.Registry, strip led.Strip, cfg map[string]configuration.EffectConfiguration) error {
	descriptors, err := Descriptors(strip)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(descriptors))
	for i := range descriptors {
		known[descriptors[i].Name] = struct{}{}
		override, ok := cfg[descriptors[i].Name]
		if !ok {
			continue
		}
		if override.ZeroOffset != nil {
			descriptors[i].IntervalZeroOffset = *override.ZeroOffset
		}
		if override.StepSize != nil {
			descriptors[i].IntervalStepSize = *override.StepSize
		}
		log.WithFields(log.Fields{
			"effect": descriptors[i].Name,
			"offset": descriptors[i].IntervalZeroOffset,
			"step":   descriptors[i].IntervalStepSize,
		}).Debug("effect timing overridden")
	}
	for name := range cfg {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: %q", effect.ErrUnknownEffect, name)
		}
	}
	return registry.Register(descriptors...)
}

func show(strip led.Strip, name string) {
	if err := strip.Show(); err != nil {
		log.WithError(err).WithField("effect", name).Warning("failed to update LEDs")
	}
}
