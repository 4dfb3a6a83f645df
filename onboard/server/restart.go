package server

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

const (
	RESTART_EXEC   = "exec"
	RESTART_REBOOT = "reboot"
	RESTART_EXIT   = "exit"
)

// Restarter performs the hard restart taken when the server cannot bind.
// Implementations normally do not return.
type Restarter interface {
	Restart(reason error)
}

type RestarterFunc func(reason error)

func (f RestarterFunc) Restart(reason error) { f(reason) }

// ExitRestarter leaves restarting to the process supervisor.
type ExitRestarter struct {
	Log *zap.Logger
}

func (r ExitRestarter) Restart(reason error) {
	r.Log.Error("exiting for restart", zap.Error(reason))
	r.Log.Sync()
	os.Exit(1)
}

func NewRestarter(mode string, log *zap.Logger) (Restarter, error) {
	if log == nil {
		log = zap.NewNop()
	}

	switch mode {
	case RESTART_EXEC, "":
		return ExecRestarter{Log: log}, nil
	case RESTART_REBOOT:
		return RebootRestarter{Log: log}, nil
	case RESTART_EXIT:
		return ExitRestarter{Log: log}, nil
	}
	return nil, fmt.Errorf("unknown restart mode %q", mode)
}
