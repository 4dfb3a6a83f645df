package onboard

import (
	"fmt"
	"io/ioutil"

	"github.com/CodedInternet/gorccar/onboard/drive"
	"github.com/CodedInternet/gorccar/onboard/hardware"
	"github.com/CodedInternet/gorccar/onboard/server"
	"github.com/Masterminds/semver"
	"gopkg.in/yaml.v2"
)

// CONFIG_VERSION is the range of config file versions this build understands.
const CONFIG_VERSION = "~1.0"

type VehicleConfig struct {
	Version     string             `yaml:"version"`
	Pins        hardware.PinConfig `yaml:"pins"`
	Calibration drive.Calibration  `yaml:"calibration"`
	Server      server.Config      `yaml:"server"`
	SelfTest    bool               `yaml:"selftest"`
}

func DefaultVehicleConfig() VehicleConfig {
	return VehicleConfig{
		Version:     "1.0.0",
		Pins:        hardware.DefaultPinConfig(),
		Calibration: drive.DefaultCalibration(),
		Server:      server.DefaultConfig(),
		SelfTest:    true,
	}
}

// ParseVehicleConfig overlays the yaml document on the defaults and validates it.
func ParseVehicleConfig(raw []byte) (config VehicleConfig, err error) {
	config = DefaultVehicleConfig()
	if err = yaml.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("unable to unmarshal yaml: %v", err)
	}

	err = config.Validate()
	return
}

func LoadVehicleConfig(filename string) (config VehicleConfig, err error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("unable to read yaml file: %v", err)
	}
	return ParseVehicleConfig(raw)
}

func (c VehicleConfig) Validate() error {
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("bad config version %q: %v", c.Version, err)
	}
	constraint, err := semver.NewConstraint(CONFIG_VERSION)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unable to work with config version %s - require %s", c.Version, CONFIG_VERSION)
	}

	cal := c.Calibration
	if cal.DriveCap == 0 || cal.DriveCap > hardware.MaxDuty {
		return fmt.Errorf("drive_cap %d outside (0, %d]", cal.DriveCap, hardware.MaxDuty)
	}
	if cal.TurnCap == 0 || cal.TurnCap >= hardware.MaxDuty {
		return fmt.Errorf("turn_cap %d outside (0, %d)", cal.TurnCap, hardware.MaxDuty)
	}

	s := c.Server
	if s.BindAttempts < 1 || s.Backlog < 1 || s.ReadLimit < 1 {
		return fmt.Errorf("server bind_attempts, backlog and read_limit must be positive")
	}
	if s.AcceptTimeout <= 0 || s.ConnTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	return nil
}
