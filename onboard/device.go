package onboard

import (
	"context"
	"io"

	"github.com/CodedInternet/gorccar/onboard/drive"
	"github.com/CodedInternet/gorccar/onboard/hardware"
	"github.com/CodedInternet/gorccar/onboard/server"
	"go.uber.org/zap"
)

// Vehicle wires the motor driver, resolver and server for one board. The
// driver is owned here and injected everywhere else.
type Vehicle struct {
	Config   VehicleConfig
	Driver   *hardware.MotorDriver
	Resolver *drive.Resolver
	Server   *server.Server
	Log      *zap.Logger

	pins io.Closer
}

func NewVehicle(config VehicleConfig, simulated bool, restartMode string, log *zap.Logger) (v *Vehicle, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err = config.Validate(); err != nil {
		return
	}

	restarter, err := server.NewRestarter(restartMode, log)
	if err != nil {
		return
	}

	v = &Vehicle{Config: config, Log: log}
	v.Driver, v.pins, err = hardware.NewMotorDriver(config.Pins, simulated)
	if err != nil {
		return nil, err
	}

	// motors start de-energised
	if err = v.Driver.Stop(); err != nil {
		v.pins.Close()
		return nil, err
	}

	v.Resolver = drive.NewResolver(v.Driver, config.Calibration, log.Named("drive"))
	v.Server = server.NewServer(config.Server, v.Resolver, restarter, log.Named("server"))
	return
}

// Run performs the optional self test then serves until ctx is done.
func (v *Vehicle) Run(ctx context.Context) error {
	if v.Config.SelfTest {
		if err := v.SelfTest(ctx); err != nil {
			v.Log.Warn("self test failed", zap.Error(err))
		}
	}
	return v.Server.Run(ctx)
}

func (v *Vehicle) SelfTest(ctx context.Context) error {
	v.Log.Info("motor test")
	err := drive.SelfTest(ctx, v.Driver)
	if err == nil {
		v.Log.Info("motor test ok")
	}
	return err
}

// Close stops the motors and releases the pins. It is the last hardware action.
func (v *Vehicle) Close() error {
	err := v.Driver.Stop()
	if cerr := v.pins.Close(); err == nil {
		err = cerr
	}
	return err
}
