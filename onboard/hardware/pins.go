package hardware

import (
	"io"
)

const DEFAULT_SYSFS_ROOT = "/sys/class"

// ChannelPins maps one H-bridge channel onto board resources.
type ChannelPins struct {
	A          int `yaml:"a"`
	B          int `yaml:"b"`
	PWMChip    int `yaml:"pwm_chip"`
	PWMChannel int `yaml:"pwm_channel"`
}

type PinConfig struct {
	Left         ChannelPins `yaml:"left"`
	Right        ChannelPins `yaml:"right"`
	PWMFrequency int         `yaml:"pwm_frequency"` // Hz
	SysfsRoot    string      `yaml:"sysfs_root"`
}

// DefaultPinConfig mirrors the wiring of the reference board.
func DefaultPinConfig() PinConfig {
	return PinConfig{
		Left:         ChannelPins{A: 5, B: 4, PWMChip: 0, PWMChannel: 0},
		Right:        ChannelPins{A: 0, B: 2, PWMChip: 0, PWMChannel: 1},
		PWMFrequency: 1000,
		SysfsRoot:    DEFAULT_SYSFS_ROOT,
	}
}

// NewMotorDriver builds a driver on the simulated backend or on sysfs GPIO/PWM.
// The returned closer releases any file handles held by the backend.
func NewMotorDriver(cfg PinConfig, simulated bool) (driver *MotorDriver, closer io.Closer, err error) {
	if simulated {
		driver, _, _ = NewSimulatedMotorDriver()
		return driver, nopCloser{}, nil
	}

	root := cfg.SysfsRoot
	if root == "" {
		root = DEFAULT_SYSFS_ROOT
	}

	var handles closers
	defer func() {
		if err != nil {
			handles.Close()
		}
	}()

	build := func(p ChannelPins) (c *Channel, err error) {
		a, err := NewSysfsPin(root, p.A)
		if err != nil {
			return
		}
		handles = append(handles, a)
		b, err := NewSysfsPin(root, p.B)
		if err != nil {
			return
		}
		handles = append(handles, b)
		pwm, err := NewSysfsPWM(root, p.PWMChip, p.PWMChannel, cfg.PWMFrequency)
		if err != nil {
			return
		}
		handles = append(handles, pwm)
		return &Channel{A: a, B: b, Enable: pwm}, nil
	}

	left, err := build(cfg.Left)
	if err != nil {
		return
	}
	right, err := build(cfg.Right)
	if err != nil {
		return
	}

	return NewMotorDriverFromChannels(left, right), handles, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closers []io.Closer

func (cs closers) Close() (err error) {
	for _, c := range cs {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return
}
