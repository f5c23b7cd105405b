//go:build tinygo

package led

import (
	"image/color"
	"machine"
	"runtime/interrupt"

	"tinygo.org/x/drivers/ws2812"
)

// WS2812 writes frames to a WS2812 (NeoPixel) strip connected to a single data pin
type WS2812 struct {
	device ws2812.Device
}

var _ Writer = WS2812{}

// NewWS2812 configures pin as output and returns a Writer for the strip connected to it
func NewWS2812(pin machine.Pin) WS2812 {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return WS2812{device: ws2812.New(pin)}
}

// WriteColors sends the frame to the strip, with interrupts disabled
func (w WS2812) WriteColors(buf []color.RGBA) error {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	return w.device.WriteColors(buf)
}
