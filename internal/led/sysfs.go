package led

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Sysfs writes frames to a LED exposed through the Linux LED class (e.g. /sys/class/leds/led1).
// A sysfs LED only has a single brightness: Sysfs uses the brightest channel of the frame.
type Sysfs struct {
	LEDPath string
	claimed bool
	written bool
	level   uint8
}

var _ Writer = &Sysfs{}

// WriteColors sets the LED's brightness to the frame's brightest channel. The brightness file is only
// written when the level changes.
func (s *Sysfs) WriteColors(buf []color.RGBA) error {
	if err := s.claim(); err != nil {
		return err
	}
	var level uint8
	for _, c := range buf {
		level = max(level, c.R, c.G, c.B)
	}
	if s.written && level == s.level {
		return nil
	}
	if err := os.WriteFile(path.Join(s.LEDPath, "brightness"), []byte(strconv.Itoa(int(level))), 0644); err != nil {
		return fmt.Errorf("sysfs brightness: %w", err)
	}
	s.level, s.written = level, true
	log.WithField("level", level).Debug("sysfs brightness set")
	return nil
}

// claim detaches any kernel trigger (mmc0, heartbeat, ...) from the LED, so it only follows our writes.
// The kernel accepts "none" whatever the active trigger is.
func (s *Sysfs) claim() error {
	if s.claimed {
		return nil
	}
	if err := os.WriteFile(path.Join(s.LEDPath, "trigger"), []byte("none"), 0644); err != nil {
		return fmt.Errorf("sysfs trigger: %w", err)
	}
	s.claimed = true
	return nil
}

// brightness returns the current brightness of the LED. Only used for testing.
func (s *Sysfs) brightness() (int, error) {
	content, err := os.ReadFile(path.Join(s.LEDPath, "brightness"))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(string(bytes.TrimSpace(content)))
}
