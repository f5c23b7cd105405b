//go:build tinygo

// ledhub-pico runs the effect controller and fade engine directly on a microcontroller driving a WS2812 strip.
package main

import (
	"machine"
	"time"

	"github.com/clambin/ledhub/internal/clock"
	"github.com/clambin/ledhub/internal/effect"
	"github.com/clambin/ledhub/internal/effect/effects"
	"github.com/clambin/ledhub/internal/fade"
	"github.com/clambin/ledhub/internal/led"
	"github.com/clambin/ledhub/internal/sunset"
)

const (
	count    = 60
	interval = time.Millisecond
	initial  = "LeftRightLeftRightLeft"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	strip := led.NewBuffer(count, led.NewWS2812(machine.GPIO16))

	registry := effect.NewRegistry()
	if err := effects.Register(registry, strip, nil); err != nil {
		panic(err)
	}
	start := time.Now()
	now := func() time.Duration { return time.Since(start) }
	controller := effect.NewController(registry, effect.WithSchedulerTime(now))
	if err := controller.ActivateByName(initial); err != nil {
		panic(err)
	}

	// without an RTC, the clock reports unavailable until it has been set: fades are held until then
	engine := fade.New(clock.System{}, sunset.Fixed{}, strip)
	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for range tick.C {
		controller.Tick(now())
		engine.Handle()
	}
}
