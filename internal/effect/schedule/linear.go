package schedule

// LinearSchedule moves the active LED from first to last and then starts from the beginning again
type LinearSchedule struct {
	index int
}

var _ Schedule = &LinearSchedule{}

// Next returns the next pattern
func (s *LinearSchedule) Next(count int) []bool {
	if count <= 0 {
		return nil
	}
	s.index %= count
	next := single(s.index, count)
	s.index = (s.index + 1) % count
	return next
}

// Reset moves the active LED back to the first one
func (s *LinearSchedule) Reset() {
	s.index = 0
}
