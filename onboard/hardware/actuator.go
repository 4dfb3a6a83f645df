package hardware

import (
	errs "github.com/CodedInternet/gorccar/onboard/errors"
)

// Channel is one H-bridge output: two direction pins and an enable PWM.
type Channel struct {
	Name   string
	A, B   Pin
	Enable PWM
	State  ChannelState
}

func (c *Channel) setDuty(duty uint16) (err error) {
	if err = c.Enable.SetDuty(duty); err != nil {
		return errs.PinError{Channel: c.Name, Pin: "enable", Err: err}
	}
	c.State.Duty = duty
	return
}

// setDirection always lowers the released pin before raising the other one so
// both pins are never high together, even if the second write fails.
func (c *Channel) setDirection(d Direction) (err error) {
	a, b := d.Pins()

	if !a {
		if err = c.A.Set(false); err != nil {
			return errs.PinError{Channel: c.Name, Pin: "a", Err: err}
		}
	}
	if !b {
		if err = c.B.Set(false); err != nil {
			return errs.PinError{Channel: c.Name, Pin: "b", Err: err}
		}
	}
	if a {
		if err = c.A.Set(true); err != nil {
			return errs.PinError{Channel: c.Name, Pin: "a", Err: err}
		}
	}
	if b {
		if err = c.B.Set(true); err != nil {
			return errs.PinError{Channel: c.Name, Pin: "b", Err: err}
		}
	}

	c.State.Direction = d
	return
}

// coast drops both pins and the duty. Every write is attempted; the first error is returned.
func (c *Channel) coast() (err error) {
	if e := c.Enable.SetDuty(0); e != nil {
		err = errs.PinError{Channel: c.Name, Pin: "enable", Err: e}
	}
	if e := c.A.Set(false); e != nil && err == nil {
		err = errs.PinError{Channel: c.Name, Pin: "a", Err: e}
	}
	if e := c.B.Set(false); e != nil && err == nil {
		err = errs.PinError{Channel: c.Name, Pin: "b", Err: e}
	}

	c.State = ChannelState{Direction: Off}
	return
}

// apply sets direction and duty together. A direction change coasts the channel first.
func (c *Channel) apply(d Direction, duty uint16) (err error) {
	if d == Off {
		return c.coast()
	}

	if c.State.Direction != d {
		if err = c.coast(); err != nil {
			return
		}
		if err = c.setDirection(d); err != nil {
			return
		}
	}

	return c.setDuty(duty)
}
