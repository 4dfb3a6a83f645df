package hardware

// MaxDuty is the top of the PWM duty range on the driver board.
const MaxDuty = 1023

type Direction uint8

const (
	Off Direction = iota
	Forward
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "off"
	}
}

// Pins returns the level for pin A and pin B of an H-bridge channel.
// At most one of the two is ever high.
func (d Direction) Pins() (a, b bool) {
	switch d {
	case Forward:
		return true, false
	case Reverse:
		return false, true
	default:
		return false, false
	}
}

// Inverted returns the opposite rotation. Off stays off.
func (d Direction) Inverted() Direction {
	switch d {
	case Forward:
		return Reverse
	case Reverse:
		return Forward
	default:
		return Off
	}
}

type ChannelState struct {
	Direction Direction
	Duty      uint16
}

// Pin is a single digital output.
type Pin interface {
	Set(high bool) error
}

// PWM is a duty-cycle output in the range [0, MaxDuty].
type PWM interface {
	SetDuty(duty uint16) error
}

// MotorInterface is the capability set the command resolver drives.
type MotorInterface interface {
	SetDuty(left, right int) error
	ApplyDirection(left, right Direction) error
	Apply(intent DriveIntent) error
	Stop() error
	State() (left, right ChannelState)
}

// DriveIntent is the per-wheel direction and duty for one command.
type DriveIntent struct {
	LeftDirection, RightDirection Direction
	LeftDuty, RightDuty           uint16
}

// Normalise clamps both duties and reports 0 for any channel that is off.
func (i DriveIntent) Normalise() DriveIntent {
	i.LeftDuty = ClampDuty(int(i.LeftDuty))
	i.RightDuty = ClampDuty(int(i.RightDuty))
	if i.LeftDirection == Off {
		i.LeftDuty = 0
	}
	if i.RightDirection == Off {
		i.RightDuty = 0
	}
	return i
}

func ClampDuty(duty int) uint16 {
	if duty < 0 {
		return 0
	}
	if duty > MaxDuty {
		return MaxDuty
	}
	return uint16(duty)
}
