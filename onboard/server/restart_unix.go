//go:build unix

package server

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// ExecRestarter replaces the running process with a fresh copy of itself.
type ExecRestarter struct {
	Log *zap.Logger
}

func (r ExecRestarter) Restart(reason error) {
	r.Log.Error("restarting process", zap.Error(reason))
	r.Log.Sync()

	exe, err := os.Executable()
	if err == nil {
		err = unix.Exec(exe, os.Args, os.Environ())
	}

	// only reached if exec failed
	ExitRestarter{Log: r.Log}.Restart(err)
}
