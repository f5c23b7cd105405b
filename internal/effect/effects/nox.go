package effects

import (
	"github.com/clambin/ledhub/internal/effect"
	"github.com/clambin/ledhub/internal/led"
)

// Nox keeps the strip dark
type Nox struct {
	strip led.Strip
}

var _ effect.Effect = &Nox{}

// NewNox returns a Nox effect for strip
func NewNox(strip led.Strip) *Nox {
	return &Nox{strip: strip}
}

// Reset blanks the strip
func (n *Nox) Reset() {
	n.strip.Clear()
	show(n.strip, "Nox")
}

// Tick clears the buffer. Nothing is written to the strip.
func (n *Nox) Tick() {
	n.strip.Clear()
}
