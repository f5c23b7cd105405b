// Package schedule generates on/off patterns for a row of LEDs.
package schedule

import "fmt"

// Schedule determines which LEDs to switch on next
type Schedule interface {
	// Next returns the next pattern for count LEDs
	Next(count int) []bool
	// Reset restarts the schedule from its initial state
	Reset()
}

// New creates a new Schedule for the specified mode
func New(mode string) (Schedule, error) {
	var s Schedule
	switch mode {
	case "linear":
		s = &LinearSchedule{}
	case "alternating":
		s = &AlternatingSchedule{}
	case "random":
		s = &RandomSchedule{}
	case "binary":
		s = &BinarySchedule{}
	case "reverse-binary":
		s = &BinarySchedule{Reversed: true}
	default:
		return nil, fmt.Errorf("invalid schedule: %s", mode)
	}
	return s, nil
}

func single(index, count int) []bool {
	bits := make([]bool, count)
	if index >= 0 && index < count {
		bits[index] = true
	}
	return bits
}
