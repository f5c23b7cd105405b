package effects

import (
	"image/color"

	"github.com/clambin/ledhub/internal/effect"
	"github.com/clambin/ledhub/internal/led"
)

// Wipe fills the strip one LED at a time from left to right, then empties it from right to left.
// Every pass uses the next color of the palette.
type Wipe struct {
	strip   led.Strip
	palette []color.RGBA
	color   int
	// position is the number of lit LEDs
	position int
	filling  bool
}

var _ effect.Effect = &Wipe{}

var defaultPalette = []color.RGBA{
	{R: 255, G: 40, A: 255},
	{R: 10, G: 150, B: 204, A: 255},
	{R: 255, G: 94, B: 155, A: 255},
}

// NewWipe returns a Wipe effect for strip. If palette is empty, a default palette is used.
func NewWipe(strip led.Strip, palette ...color.RGBA) *Wipe {
	if len(palette) == 0 {
		palette = defaultPalette
	}
	return &Wipe{strip: strip, palette: palette}
}

// Reset blanks the strip and starts a new fill with the first color
func (w *Wipe) Reset() {
	w.color = 0
	w.position = 0
	w.filling = true
	w.strip.Clear()
	show(w.strip, "LeftRightLeftRightLeft")
}

// Tick lights or clears the next LED
func (w *Wipe) Tick() {
	count := w.strip.Len()
	if count == 0 {
		return
	}
	if w.filling {
		w.strip.Set(w.position, w.palette[w.color])
		w.position++
		if w.position >= count {
			w.filling = false
		}
	} else {
		w.position--
		w.strip.Set(w.position, color.RGBA{})
		if w.position <= 0 {
			w.filling = true
			w.color = (w.color + 1) % len(w.palette)
		}
	}
	show(w.strip, "LeftRightLeftRightLeft")
}
