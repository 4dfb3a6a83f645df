package drive

import (
	"testing"

	"github.com/CodedInternet/gorccar/onboard/hardware"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCalibrationScaling(t *testing.T) {
	cal := DefaultCalibration()

	Convey("drive and turn scales are linear and monotone", t, func() {
		So(cal.DriveDuty(100), ShouldEqual, hardware.MaxDuty)
		So(cal.TurnDuty(100), ShouldEqual, DEFAULT_TURN_CAP)
		So(cal.TurnDuty(100), ShouldBeLessThan, hardware.MaxDuty)
		So(cal.DriveDuty(0), ShouldEqual, 0)
		So(cal.TurnDuty(0), ShouldEqual, 0)

		for p := 1; p <= 100; p++ {
			So(cal.DriveDuty(p), ShouldBeGreaterThanOrEqualTo, cal.DriveDuty(p-1))
			So(cal.TurnDuty(p), ShouldBeGreaterThanOrEqualTo, cal.TurnDuty(p-1))
			So(cal.DriveDuty(p), ShouldEqual, p*hardware.MaxDuty/100)
			So(cal.TurnDuty(p), ShouldEqual, p*DEFAULT_TURN_CAP/100)
		}
	})

	Convey("the default control page speed", t, func() {
		So(cal.DriveDuty(DEFAULT_SPEED), ShouldEqual, 818)
		So(cal.TurnDuty(DEFAULT_SPEED), ShouldEqual, 560)
	})

	Convey("out of range percentages are clamped", t, func() {
		So(cal.DriveDuty(250), ShouldEqual, hardware.MaxDuty)
		So(cal.TurnDuty(250), ShouldEqual, DEFAULT_TURN_CAP)
		So(cal.DriveDuty(-20), ShouldEqual, 0)
	})
}

func TestIntent(t *testing.T) {
	cal := DefaultCalibration()

	Convey("straight actions share direction and duty", t, func() {
		So(cal.Intent(Forward, 50), ShouldResemble, hardware.DriveIntent{LeftDirection: hardware.Forward, RightDirection: hardware.Forward, LeftDuty: 511, RightDuty: 511})
		So(cal.Intent(Backward, 50), ShouldResemble, hardware.DriveIntent{LeftDirection: hardware.Reverse, RightDirection: hardware.Reverse, LeftDuty: 511, RightDuty: 511})
	})

	Convey("pivot actions halve the inside wheel", t, func() {
		pivots := map[Action]bool{ForwardLeft: true, ForwardRight: false, BackwardLeft: true, BackwardRight: false}
		for action, leftInside := range pivots {
			for _, speed := range []int{0, 20, 33, 80, 100} {
				i := cal.Intent(action, speed)
				So(i.LeftDirection, ShouldEqual, i.RightDirection)

				inside, outside := i.RightDuty, i.LeftDuty
				if leftInside {
					inside, outside = i.LeftDuty, i.RightDuty
				}
				So(outside, ShouldEqual, cal.DriveDuty(speed))
				So(inside, ShouldEqual, outside/2)
			}
		}
		So(cal.Intent(ForwardLeft, 80).LeftDirection, ShouldEqual, hardware.Forward)
		So(cal.Intent(BackwardRight, 80).LeftDirection, ShouldEqual, hardware.Reverse)
	})

	Convey("spin and turn actions oppose the wheels at equal duty", t, func() {
		for _, action := range []Action{TurnLeft, TurnRight, SpinLeft, SpinRight} {
			for _, speed := range []int{0, 20, 80, 100} {
				i := cal.Intent(action, speed)
				So(i.LeftDirection, ShouldEqual, i.RightDirection.Inverted())
				So(i.LeftDuty, ShouldEqual, i.RightDuty)
			}
		}
	})

	Convey("turn and spin share a pin pattern and differ only by scale", t, func() {
		turn, spin := cal.Intent(TurnLeft, 100), cal.Intent(SpinLeft, 100)
		So(turn.LeftDirection, ShouldEqual, spin.LeftDirection)
		So(turn.RightDirection, ShouldEqual, spin.RightDirection)
		So(turn.LeftDirection, ShouldEqual, hardware.Reverse)
		So(turn.LeftDuty, ShouldEqual, DEFAULT_TURN_CAP)
		So(spin.LeftDuty, ShouldEqual, hardware.MaxDuty)

		So(cal.Intent(TurnRight, 100).RightDirection, ShouldEqual, hardware.Reverse)
	})

	Convey("stop is a zero intent", t, func() {
		So(cal.Intent(Stop, 100), ShouldResemble, hardware.DriveIntent{})
	})
}

func TestParseAction(t *testing.T) {
	Convey("every action round trips through its wire name", t, func() {
		So(len(Actions()), ShouldEqual, 11)
		for _, a := range Actions() {
			parsed, err := ParseAction(a.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, a)
		}
	})

	Convey("unknown names are errors", t, func() {
		_, err := ParseAction("warp")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "warp")
		_, err = ParseAction("")
		So(err, ShouldNotBeNil)
		_, err = ParseAction("Forward")
		So(err, ShouldNotBeNil)
	})
}
