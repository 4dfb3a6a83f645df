package drive

import (
	"context"
	"time"

	"github.com/CodedInternet/gorccar/onboard/hardware"
)

const (
	SELFTEST_DUTY  = 300
	SELFTEST_PULSE = 200 * time.Millisecond
	SELFTEST_PAUSE = 100 * time.Millisecond
)

type selfTestStep struct {
	intent hardware.DriveIntent
	hold   time.Duration
}

var selfTestSteps = []selfTestStep{
	{straight(hardware.Forward, SELFTEST_DUTY), SELFTEST_PULSE},
	{hardware.DriveIntent{}, SELFTEST_PAUSE},
	{straight(hardware.Reverse, SELFTEST_DUTY), SELFTEST_PULSE},
}

// SelfTest briefly pulses both wheels forward then backward. The motors are
// stopped on return whatever the outcome.
func SelfTest(ctx context.Context, motors hardware.MotorInterface) (err error) {
	defer func() {
		if serr := motors.Stop(); err == nil {
			err = serr
		}
	}()

	for _, step := range selfTestSteps {
		if err = motors.Apply(step.intent); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step.hold):
		}
	}
	return
}
