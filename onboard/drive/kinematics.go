package drive

import (
	"github.com/CodedInternet/gorccar/onboard/hardware"
)

const (
	DEFAULT_DRIVE_CAP = hardware.MaxDuty
	DEFAULT_TURN_CAP  = 700
	DEFAULT_SPEED     = 80
)

// Calibration holds the two independent percent-to-duty scales. Turning in
// place needs less torque than driving straight at the same nominal percent.
type Calibration struct {
	DriveCap uint16 `yaml:"drive_cap"`
	TurnCap  uint16 `yaml:"turn_cap"`
}

func DefaultCalibration() Calibration {
	return Calibration{DriveCap: DEFAULT_DRIVE_CAP, TurnCap: DEFAULT_TURN_CAP}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func scale(p int, max uint16) uint16 {
	return hardware.ClampDuty(clampPercent(p) * int(max) / 100)
}

func (c Calibration) DriveDuty(percent int) uint16 {
	return scale(percent, c.DriveCap)
}

func (c Calibration) TurnDuty(percent int) uint16 {
	return scale(percent, c.TurnCap)
}

func straight(d hardware.Direction, duty uint16) hardware.DriveIntent {
	return hardware.DriveIntent{
		LeftDirection: d, RightDirection: d,
		LeftDuty: duty, RightDuty: duty,
	}
}

// rotate spins in place: the named side runs in reverse.
func rotate(left bool, duty uint16) hardware.DriveIntent {
	i := straight(hardware.Forward, duty)
	if left {
		i.LeftDirection = hardware.Reverse
	} else {
		i.RightDirection = hardware.Reverse
	}
	return i
}

// pivot curves while progressing: the inside wheel runs at half duty.
func pivot(d hardware.Direction, left bool, duty uint16) hardware.DriveIntent {
	i := straight(d, duty)
	if left {
		i.LeftDuty = duty / 2
	} else {
		i.RightDuty = duty / 2
	}
	return i
}

// Intent computes the per-wheel drive for an action at a speed percentage.
// Speeds outside [0, 100] are clamped.
//
// TurnLeft/TurnRight use the same pin pattern as SpinLeft/SpinRight and only
// differ in using the turn scale.
func (c Calibration) Intent(action Action, speed int) hardware.DriveIntent {
	switch action {
	case Forward:
		return straight(hardware.Forward, c.DriveDuty(speed))
	case Backward:
		return straight(hardware.Reverse, c.DriveDuty(speed))
	case TurnLeft:
		return rotate(true, c.TurnDuty(speed))
	case TurnRight:
		return rotate(false, c.TurnDuty(speed))
	case SpinLeft:
		return rotate(true, c.DriveDuty(speed))
	case SpinRight:
		return rotate(false, c.DriveDuty(speed))
	case ForwardLeft:
		return pivot(hardware.Forward, true, c.DriveDuty(speed))
	case ForwardRight:
		return pivot(hardware.Forward, false, c.DriveDuty(speed))
	case BackwardLeft:
		return pivot(hardware.Reverse, true, c.DriveDuty(speed))
	case BackwardRight:
		return pivot(hardware.Reverse, false, c.DriveDuty(speed))
	case Stop:
		return hardware.DriveIntent{}
	}
	return hardware.DriveIntent{}
}
