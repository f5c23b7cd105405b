package schedule_test

import (
	"fmt"
	"github.com/clambin/ledhub/internal/effect/schedule"
	"github.com/stretchr/testify/assert"
	"testing"
)

type step struct {
	count int
	next  string
}

func run(t *testing.T, s schedule.Schedule, steps []step) {
	t.Helper()
	for index, testCase := range steps {
		next := s.Next(testCase.count)
		assert.Equal(t, testCase.next, boolToString(next), fmt.Sprintf("testcase: %d", index+1))
	}
}

func TestLinearSchedule(t *testing.T) {
	s := schedule.LinearSchedule{}
	run(t, &s, []step{
		{count: 4, next: "1000"},
		{count: 4, next: "0100"},
		{count: 4, next: "0010"},
		{count: 4, next: "0001"},
		{count: 4, next: "1000"},
		{count: 4, next: "0100"},
		{count: 3, next: "001"},
		{count: 3, next: "100"},
		{count: 1, next: "1"},
	})
	s.Reset()
	run(t, &s, []step{{count: 4, next: "1000"}})
}

func TestAlternatingSchedule(t *testing.T) {
	s := schedule.AlternatingSchedule{}
	run(t, &s, []step{
		{count: 4, next: "1000"},
		{count: 4, next: "0100"},
		{count: 4, next: "0010"},
		{count: 4, next: "0001"},
		{count: 4, next: "0010"},
		{count: 4, next: "0100"},
		{count: 4, next: "1000"},
		{count: 4, next: "0100"},
		{count: 1, next: "1"},
		{count: 1, next: "1"},
	})
	s.Reset()
	run(t, &s, []step{{count: 3, next: "100"}, {count: 3, next: "010"}})
}

func TestBinarySchedule(t *testing.T) {
	s := schedule.BinarySchedule{}
	run(t, &s, []step{
		{count: 3, next: "001"},
		{count: 3, next: "010"},
		{count: 3, next: "011"},
		{count: 3, next: "100"},
		{count: 3, next: "101"},
		{count: 3, next: "110"},
		{count: 3, next: "111"},
		{count: 3, next: "000"},
		{count: 2, next: "01"},
		{count: 2, next: "10"},
		{count: 2, next: "11"},
		{count: 3, next: "100"},
		{count: 1, next: "1"},
		{count: 1, next: "0"},
		{count: 1, next: "1"},
		{count: 2, next: "10"},
		{count: 3, next: "011"},
	})
	s.Reset()
	run(t, &s, []step{{count: 2, next: "01"}})
}

func TestBinarySchedule_Reversed(t *testing.T) {
	s := schedule.BinarySchedule{Reversed: true}
	run(t, &s, []step{
		{count: 3, next: "100"},
		{count: 3, next: "010"},
		{count: 3, next: "110"},
		{count: 3, next: "001"},
	})
}

func TestBinarySchedule_LongStrip(t *testing.T) {
	s := schedule.BinarySchedule{}
	next := s.Next(150)
	assert.Len(t, next, 150)
	assert.True(t, next[149])
}

func TestRandomSchedule(t *testing.T) {
	s := schedule.RandomSchedule{}
	for i := 0; i < 100; i++ {
		next := s.Next(4)
		assert.Len(t, next, 4)
		var on int
		for _, b := range next {
			if b {
				on++
			}
		}
		assert.Equal(t, 1, on)
	}
}

func boolToString(input []bool) (output string) {
	for _, i := range input {
		if i {
			output += "1"
		} else {
			output += "0"
		}
	}
	return
}
