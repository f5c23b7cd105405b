package schedule

import (
	"math/rand"
)

// RandomSchedule switches on a LED at random
type RandomSchedule struct {
	started bool
	last    int
}

var _ Schedule = &RandomSchedule{}

// Next returns the next pattern
func (s *RandomSchedule) Next(count int) []bool {
	if count <= 0 {
		return nil
	}
	var next int
	for attempt := 0; attempt < 5; attempt++ {
		next = rand.Intn(count)
		if !s.started || next != s.last {
			break
		}
	}
	s.started = true
	s.last = next
	return single(s.last, count)
}

// Reset forgets the previously selected LED
func (s *RandomSchedule) Reset() {
	s.started = false
}
