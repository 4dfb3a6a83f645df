package drive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CodedInternet/gorccar/onboard/hardware"
	. "github.com/smartystreets/goconvey/convey"
)

// recordingMotors logs every call so ordering can be asserted.
type recordingMotors struct {
	calls    []string
	applied  []hardware.DriveIntent
	applyErr error
}

func (m *recordingMotors) SetDuty(left, right int) error { return nil }
func (m *recordingMotors) ApplyDirection(left, right hardware.Direction) error {
	return nil
}
func (m *recordingMotors) Apply(intent hardware.DriveIntent) error {
	m.calls = append(m.calls, "apply")
	m.applied = append(m.applied, intent)
	return m.applyErr
}
func (m *recordingMotors) Stop() error {
	m.calls = append(m.calls, "stop")
	return nil
}
func (m *recordingMotors) State() (left, right hardware.ChannelState) { return }

func TestResolver(t *testing.T) {
	Convey("with a simulated driver", t, func() {
		driver, left, right := hardware.NewSimulatedMotorDriver()
		r := NewResolver(driver, DefaultCalibration(), nil)

		Convey("forward drives both wheels", func() {
			res, err := r.Resolve(Forward, 80)
			So(err, ShouldBeNil)
			So(res, ShouldEqual, ResultOK)
			So(left.PWM.Duty(), ShouldEqual, 818)
			So(right.PWM.Duty(), ShouldEqual, 818)

			Convey("stop ignores speed", func() {
				res, err := r.Resolve(Stop, 100)
				So(err, ShouldBeNil)
				So(res, ShouldEqual, ResultOK)
				So(left.PWM.Duty(), ShouldEqual, 0)
				So(left.PinA.High(), ShouldBeFalse)
			})
		})

		Convey("an unknown name stops the motors and is not ok", func() {
			_, _ = r.Resolve(Forward, 80)
			res, err := r.ResolveNamed("moonwalk", 80)
			So(err, ShouldNotBeNil)
			So(res, ShouldEqual, ResultUnknown)
			l, rr := driver.State()
			So(l, ShouldResemble, hardware.ChannelState{Direction: hardware.Off})
			So(rr, ShouldResemble, hardware.ChannelState{Direction: hardware.Off})
		})

		Convey("an excessive speed never exceeds max duty", func() {
			res, err := r.ResolveNamed("forward", 250)
			So(err, ShouldBeNil)
			So(res, ShouldEqual, ResultOK)
			So(left.PWM.Duty(), ShouldEqual, hardware.MaxDuty)
		})
	})

	Convey("a driver failure reports an error and stops", t, func() {
		m := &recordingMotors{applyErr: errors.New("pwm fault")}
		r := NewResolver(m, DefaultCalibration(), nil)
		res, err := r.Resolve(SpinRight, 60)
		So(err, ShouldNotBeNil)
		So(res, ShouldEqual, ResultError)
		So(m.calls, ShouldResemble, []string{"apply", "stop"})
	})

	Convey("stop is a distinct outcome from unknown", t, func() {
		m := &recordingMotors{}
		r := NewResolver(m, DefaultCalibration(), nil)
		res, _ := r.ResolveNamed("stop", 80)
		So(res, ShouldEqual, ResultOK)
		res, _ = r.ResolveNamed("bogus", 80)
		So(res, ShouldEqual, ResultUnknown)
		So(m.calls, ShouldResemble, []string{"stop", "stop"})
	})
}

func TestSelfTest(t *testing.T) {
	Convey("self test pulses both directions and ends stopped", t, func() {
		m := &recordingMotors{}
		err := SelfTest(context.Background(), m)
		So(err, ShouldBeNil)
		So(m.calls, ShouldResemble, []string{"apply", "apply", "apply", "stop"})
		So(m.applied[0].LeftDirection, ShouldEqual, hardware.Forward)
		So(m.applied[0].LeftDuty, ShouldEqual, SELFTEST_DUTY)
		So(m.applied[2].RightDirection, ShouldEqual, hardware.Reverse)
	})

	Convey("cancelling the self test still stops the motors", t, func() {
		m := &recordingMotors{}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := SelfTest(ctx, m)
		So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		So(m.calls[len(m.calls)-1], ShouldEqual, "stop")
	})
}
