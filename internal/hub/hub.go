// Package hub runs the scheduler loop: once per cycle, it ticks the active effect and updates the fade.
package hub

import (
	"context"
	"fmt"
	"time"

	"github.com/clambin/ledhub/internal/clock"
	"github.com/clambin/ledhub/internal/configuration"
	"github.com/clambin/ledhub/internal/effect"
	"github.com/clambin/ledhub/internal/effect/effects"
	"github.com/clambin/ledhub/internal/fade"
	"github.com/clambin/ledhub/internal/led"
	"github.com/clambin/ledhub/internal/sunset"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Hub drives the effect controller and the fade engine from a single loop
type Hub struct {
	Registry   *effect.Registry
	Controller *effect.Controller
	Fade       *fade.Engine
	interval   time.Duration
	metrics    metrics
	// now is the scheduler time of the current cycle
	now         time.Duration
	fadeEffects fadeEffects
	fadeMode    fade.Mode
	fadeDone    bool
}

// fadeEffects are the effects to activate when a fade starts or completes. Empty names leave the active effect alone.
type fadeEffects struct {
	alarm     string
	postAlarm string
	sunset    string
}

var _ prometheus.Collector = &Hub{}

// New creates a Hub for strip, with all effects registered and the configured effect active
func New(cfg configuration.Configuration, strip led.Strip, c clock.Clock) (*Hub, error) {
	if err := cfg.FileConfiguration.Validate(); err != nil {
		return nil, err
	}
	h := Hub{
		Registry: effect.NewRegistry(),
		interval: cfg.Interval,
		metrics:  newMetrics(),
		fadeEffects: fadeEffects{
			alarm:     cfg.Fade.Alarm.Effect,
			postAlarm: cfg.Fade.Alarm.PostEffect,
			sunset:    cfg.Fade.Sunset.Effect,
		},
	}
	if err := effects.Register(h.Registry, strip, cfg.Effects); err != nil {
		return nil, fmt.Errorf("effects: %w", err)
	}
	for _, name := range []string{h.fadeEffects.alarm, h.fadeEffects.postAlarm, h.fadeEffects.sunset} {
		if _, ok := h.Registry.Get(name); name != "" && !ok {
			return nil, fmt.Errorf("fade: %w: %q", effect.ErrUnknownEffect, name)
		}
	}
	h.Controller = effect.NewController(h.Registry, effect.WithSchedulerTime(func() time.Duration { return h.now }))
	if err := h.Controller.ActivateByName(cfg.Effect); err != nil {
		return nil, fmt.Errorf("effects: %w", err)
	}

	h.Fade = fade.New(c, sunset.Fixed{Time: cfg.Fade.Sunset.Time}, strip, fadeOptions(cfg.Fade)...)
	if err := h.Fade.Initialize(); err != nil {
		return nil, fmt.Errorf("fade: %w", err)
	}
	h.fadeMode = h.Fade.Mode()
	return &h, nil
}

func fadeOptions(cfg configuration.FadeConfiguration) []fade.Option {
	options := []fade.Option{
		fade.WithBounds(cfg.Low, cfg.High),
		fade.WithAlarmDuration(cfg.Alarm.Duration),
		fade.WithAutoStop(cfg.AutoStop),
	}
	if cfg.Alarm.Enabled && cfg.Alarm.Time != nil {
		options = append(options, fade.WithAlarm(*cfg.Alarm.Time))
	}
	if cfg.Sunset.Enabled {
		options = append(options, fade.WithSunset(cfg.Sunset.Duration, cfg.Sunset.Offset))
	}
	return options
}

// Run runs the scheduler loop until the context is canceled
func (h *Hub) Run(ctx context.Context) error {
	log.WithField("interval", h.interval).Info("hub started")
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Info("hub stopped")
			return nil
		case <-ticker.C:
			h.Cycle(time.Since(start))
		}
	}
}

// Cycle performs one scheduler cycle. now is the time since the scheduler started.
func (h *Hub) Cycle(now time.Duration) {
	begin := time.Now()
	h.now = now
	if h.Controller.Tick(now) {
		if d, ok := h.Controller.Current(); ok {
			h.metrics.effectTicks.WithLabelValues(d.Name).Inc()
		}
	}
	h.Fade.Handle()
	h.followFade()
	h.metrics.observe(h.Fade, time.Since(begin))
}

// followFade switches to the configured effect when a fade starts, or when an alarm fade completes or ends.
func (h *Hub) followFade() {
	mode, done := h.Fade.Mode(), h.Fade.Completed()
	switch {
	case mode != h.fadeMode:
		switch mode {
		case fade.Alarm:
			h.activate(h.fadeEffects.alarm)
		case fade.Sunset:
			h.activate(h.fadeEffects.sunset)
		case fade.None:
			if h.fadeMode == fade.Alarm && !h.fadeDone {
				h.activate(h.fadeEffects.postAlarm)
			}
		}
	case mode == fade.Alarm && done && !h.fadeDone:
		h.activate(h.fadeEffects.postAlarm)
	}
	h.fadeMode, h.fadeDone = mode, done
}

func (h *Hub) activate(name string) {
	if name == "" {
		return
	}
	if err := h.Controller.ActivateByName(name); err != nil {
		log.WithError(err).Warning("failed to activate effect")
	}
}

func (h *Hub) Describe(ch chan<- *prometheus.Desc) {
	h.metrics.Describe(ch)
}

func (h *Hub) Collect(ch chan<- prometheus.Metric) {
	h.metrics.Collect(ch)
}
