package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/CodedInternet/gorccar/log"
	"github.com/CodedInternet/gorccar/onboard"
	"github.com/caarlos0/env/v6"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type EnvConfig struct {
	SIM     bool   `env:"RCCAR_SIM" envDefault:"false"`
	DEBUG   bool   `env:"RCCAR_DEBUG" envDefault:"false"`
	CONFIG  string `env:"RCCAR_CONFIG" envDefault:""`
	ADDR    string `env:"RCCAR_ADDR" envDefault:""`
	RESTART string `env:"RCCAR_RESTART" envDefault:"exec"`
}

var (
	ENV *EnvConfig
)

func main() {
	ENV = new(EnvConfig)
	if err := env.Parse(ENV); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse environment: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rccar",
		Short:         "WiFi RC car firmware",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(ENV.DEBUG)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Logger.Sync()
		},
	}

	// flags default to the environment so either can be used on the device
	root.PersistentFlags().BoolVar(&ENV.SIM, "sim", ENV.SIM, "Run on simulated pins instead of sysfs")
	root.PersistentFlags().BoolVar(&ENV.DEBUG, "debug", ENV.DEBUG, "Development logging")
	root.PersistentFlags().StringVarP(&ENV.CONFIG, "config", "c", ENV.CONFIG, "Path to the vehicle yaml config")
	root.PersistentFlags().StringVar(&ENV.RESTART, "restart", ENV.RESTART, "Restart mode on bind failure (exec, reboot, exit)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the control page and drive commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	serve.Flags().StringVar(&ENV.ADDR, "addr", ENV.ADDR, "Override the ip:port to listen on")

	root.AddCommand(serve, newSelfTestCmd(), newShellCmd())
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func newSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Pulse both motors forward and backward",
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicle, err := buildVehicle()
			if err != nil {
				return err
			}
			defer vehicle.Close()

			return vehicle.SelfTest(cmd.Context())
		},
	}
}

func loadConfig() (config onboard.VehicleConfig, err error) {
	if ENV.CONFIG == "" {
		config = onboard.DefaultVehicleConfig()
	} else {
		var filename string
		filename, err = filepath.Abs(ENV.CONFIG)
		if err != nil {
			return
		}
		config, err = onboard.LoadVehicleConfig(filename)
		if err != nil {
			return
		}
	}

	if ENV.ADDR != "" {
		config.Server.Addr = ENV.ADDR
	}
	return
}

func buildVehicle() (*onboard.Vehicle, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log.Logger.Info("establishing vehicle",
		zap.Bool("simulated", ENV.SIM),
		zap.String("addr", config.Server.Addr),
		zap.String("version", config.Version))

	return onboard.NewVehicle(config, ENV.SIM, ENV.RESTART, log.Logger)
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	vehicle, err := buildVehicle()
	if err != nil {
		return err
	}
	defer vehicle.Close()

	return vehicle.Run(ctx)
}
