package main

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/CodedInternet/gorccar/onboard"
	"github.com/CodedInternet/gorccar/onboard/hardware"
	"github.com/CodedInternet/gorccar/onboard/server"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadConfig(t *testing.T) {
	Convey("without a file the defaults are used", t, func() {
		ENV = &EnvConfig{}
		config, err := loadConfig()
		So(err, ShouldBeNil)
		So(config.Server.Addr, ShouldEqual, server.DEFAULT_ADDR)

		Convey("and the address can be overridden", func() {
			ENV.ADDR = "127.0.0.1:8080"
			config, err := loadConfig()
			So(err, ShouldBeNil)
			So(config.Server.Addr, ShouldEqual, "127.0.0.1:8080")
		})
	})

	Convey("a config file is read", t, func() {
		filename := filepath.Join(t.TempDir(), "car.yaml")
		So(os.WriteFile(filename, []byte("version: 1.0.0\ncalibration: {turn_cap: 600}\n"), 0644), ShouldBeNil)
		ENV = &EnvConfig{CONFIG: filename}
		config, err := loadConfig()
		So(err, ShouldBeNil)
		So(config.Calibration.TurnCap, ShouldEqual, 600)
	})
}

func TestShell(t *testing.T) {
	Convey("shell commands drive the simulated motors", t, func() {
		vehicle, err := onboard.NewVehicle(onboard.DefaultVehicleConfig(), true, server.RESTART_EXIT, nil)
		So(err, ShouldBeNil)
		defer vehicle.Close()
		shell := newShell(vehicle)

		So(shell.Process("drive", "backward", "100"), ShouldBeNil)
		l, r := vehicle.Driver.State()
		So(l, ShouldResemble, hardware.ChannelState{Direction: hardware.Reverse, Duty: hardware.MaxDuty})
		So(r, ShouldResemble, hardware.ChannelState{Direction: hardware.Reverse, Duty: hardware.MaxDuty})

		So(shell.Process("stop"), ShouldBeNil)
		l, _ = vehicle.Driver.State()
		So(l.Direction, ShouldEqual, hardware.Off)

		err = shell.Process("drive", "forward", "fast")
		So(err, ShouldNotBeNil)
		So(errors.Is(err, strconv.ErrSyntax), ShouldBeTrue)
		l, _ = vehicle.Driver.State()
		So(l.Direction, ShouldEqual, hardware.Off)
	})

	Convey("the root command exposes its subcommands", t, func() {
		ENV = &EnvConfig{RESTART: server.RESTART_EXEC}
		root := newRootCmd()
		names := []string{}
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		So(names, ShouldContain, "serve")
		So(names, ShouldContain, "selftest")
		So(names, ShouldContain, "shell")
	})
}
