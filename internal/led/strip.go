package led

import (
	"image/color"
)

// Strip is the hardware sink that effects and the fade engine render to
type Strip interface {
	Len() int
	Set(index int, c color.RGBA)
	Clear()
	Show() error
	SetBrightness(value uint8)
}

// Writer sends a frame to the physical LEDs
type Writer interface {
	WriteColors(buf []color.RGBA) error
}

// Buffer implements a Strip on top of a Writer.  Pixels are scaled by the strip's brightness when shown.
type Buffer struct {
	writer     Writer
	pixels     []color.RGBA
	frame      []color.RGBA
	brightness uint8
}

var _ Strip = &Buffer{}

// NewBuffer creates a Buffer for count LEDs, at full brightness
func NewBuffer(count int, writer Writer) *Buffer {
	return &Buffer{
		writer:     writer,
		pixels:     make([]color.RGBA, count),
		frame:      make([]color.RGBA, count),
		brightness: 255,
	}
}

// Len returns the number of LEDs in the strip
func (b *Buffer) Len() int {
	return len(b.pixels)
}

// Set sets the color of a LED. Out of range indices are ignored.
func (b *Buffer) Set(index int, c color.RGBA) {
	if index >= 0 && index < len(b.pixels) {
		b.pixels[index] = c
	}
}

// Get returns the color of a LED, before brightness scaling
func (b *Buffer) Get(index int) color.RGBA {
	if index >= 0 && index < len(b.pixels) {
		return b.pixels[index]
	}
	return color.RGBA{}
}

// Clear blanks all LEDs.  Clear does not write to the hardware: call Show to do so.
func (b *Buffer) Clear() {
	for i := range b.pixels {
		b.pixels[i] = color.RGBA{}
	}
}

// SetBrightness sets the brightness applied by the next Show
func (b *Buffer) SetBrightness(value uint8) {
	b.brightness = value
}

// Brightness returns the current brightness
func (b *Buffer) Brightness() uint8 {
	return b.brightness
}

// Show writes the buffer to the hardware
func (b *Buffer) Show() error {
	for i, p := range b.pixels {
		b.frame[i] = color.RGBA{
			R: scale8(p.R, b.brightness),
			G: scale8(p.G, b.brightness),
			B: scale8(p.B, b.brightness),
			A: p.A,
		}
	}
	return b.writer.WriteColors(b.frame)
}

func scale8(value, scale uint8) uint8 {
	return uint8((uint16(value) * (uint16(scale) + 1)) >> 8)
}

// Discard is a Writer that drops all frames
type Discard struct{}

// WriteColors does nothing
func (Discard) WriteColors(_ []color.RGBA) error { return nil }
