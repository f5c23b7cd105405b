package effects

import (
	"image/color"

	"github.com/clambin/ledhub/internal/effect"
	"github.com/clambin/ledhub/internal/effect/schedule"
	"github.com/clambin/ledhub/internal/led"
)

// Pattern renders a schedule on the strip: every Tick shows the schedule's next on/off pattern in a single color
type Pattern struct {
	name     string
	strip    led.Strip
	schedule schedule.Schedule
	color    color.RGBA
}

var _ effect.Effect = &Pattern{}

// NewPattern returns a Pattern effect for the schedule mode (see schedule.New)
func NewPattern(name string, strip led.Strip, mode string, c color.RGBA) (*Pattern, error) {
	s, err := schedule.New(mode)
	if err != nil {
		return nil, err
	}
	return &Pattern{name: name, strip: strip, schedule: s, color: c}, nil
}

// Reset restarts the schedule and blanks the strip
func (p *Pattern) Reset() {
	p.schedule.Reset()
	p.strip.Clear()
	show(p.strip, p.name)
}

// Tick shows the next pattern
func (p *Pattern) Tick() {
	for i, on := range p.schedule.Next(p.strip.Len()) {
		if on {
			p.strip.Set(i, p.color)
		} else {
			p.strip.Set(i, color.RGBA{})
		}
	}
	show(p.strip, p.name)
}
