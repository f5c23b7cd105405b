package schedule

// BinarySchedule represents an increasing number as a set of bits. By default, the most significant bit
// is the first LED. Reversed puts the least significant bit first.
type BinarySchedule struct {
	Reversed bool
	// bits holds the counter, least significant bit first
	bits []bool
}

var _ Schedule = &BinarySchedule{}

// Next returns the next pattern
func (s *BinarySchedule) Next(count int) []bool {
	if count <= 0 {
		return nil
	}
	s.resize(count)
	for i := range s.bits {
		s.bits[i] = !s.bits[i]
		if s.bits[i] {
			break
		}
	}

	next := make([]bool, count)
	for i, bit := range s.bits {
		if s.Reversed {
			next[i] = bit
		} else {
			next[count-1-i] = bit
		}
	}
	return next
}

// resize keeps the count least significant bits of the counter
func (s *BinarySchedule) resize(count int) {
	if len(s.bits) >= count {
		s.bits = s.bits[:count]
		return
	}
	s.bits = append(s.bits, make([]bool, count-len(s.bits))...)
}

// Reset sets the counter back to zero
func (s *BinarySchedule) Reset() {
	s.bits = nil
}
