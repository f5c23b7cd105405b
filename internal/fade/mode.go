package fade

// Mode is the active fade
type Mode int

const (
	// None means no fade is active: brightness is not overridden
	None Mode = iota
	// Alarm ramps up from the low to the high bound over the alarm duration
	Alarm
	// Sunset ramps down from the high to the low bound, reaching the low bound at sunset
	Sunset
)

// Modes lists all valid modes
var Modes = []Mode{None, Alarm, Sunset}

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Alarm:
		return "alarm"
	case Sunset:
		return "sunset"
	default:
		return "unknown"
	}
}
