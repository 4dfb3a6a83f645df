package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/CodedInternet/gorccar/onboard"
	"github.com/CodedInternet/gorccar/onboard/drive"
	"github.com/abiosoft/ishell/v2"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Bench shell for driving the motors without the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicle, err := buildVehicle()
			if err != nil {
				return err
			}
			defer vehicle.Close()

			newShell(vehicle).Run()
			return nil
		},
	}
}

func actionNames([]string) []string {
	names := make([]string, 0, len(drive.Actions()))
	for _, a := range drive.Actions() {
		names = append(names, a.String())
	}
	return names
}

// newShell builds the development shell. Commands run on the shell goroutine
// only, so the driver keeps a single caller.
func newShell(vehicle *onboard.Vehicle) *ishell.Shell {
	shell := ishell.New()
	shell.Println("RC car development shell")
	shell.AddCmd(&ishell.Cmd{
		Name:      "drive",
		Completer: actionNames,
		Help:      "drive <action> [speed 0-100]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Println("usage: drive <action> [speed]")
				return
			}
			speed := drive.DEFAULT_SPEED
			if len(c.Args) > 1 {
				var err error
				if speed, err = strconv.Atoi(c.Args[1]); err != nil {
					vehicle.Resolver.Stop()
					c.Err(err)
					return
				}
			}

			result, err := vehicle.Resolver.ResolveNamed(c.Args[0], speed)
			if err != nil {
				c.Err(err)
			}
			c.Printf("%s %d: %s\n", c.Args[0], speed, result)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "stop",
		Help: "stop both motors",
		Func: func(c *ishell.Context) {
			vehicle.Resolver.Stop()
			c.Println("stopped")
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "state",
		Help: "show the current channel state",
		Func: func(c *ishell.Context) {
			l, r := vehicle.Driver.State()
			c.Printf("left:  %s %d\nright: %s %d\n", l.Direction, l.Duty, r.Direction, r.Duty)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "selftest",
		Help: "pulse both motors forward and backward",
		Func: func(c *ishell.Context) {
			if err := vehicle.SelfTest(context.Background()); err != nil {
				c.Err(err)
				return
			}
			c.Println("motor test ok")
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "actions",
		Help: "list the drive actions",
		Func: func(c *ishell.Context) {
			c.Println(strings.Join(actionNames(nil), " "))
		},
	})
	return shell
}
