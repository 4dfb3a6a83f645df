//go:build !unix

package server

import (
	"go.uber.org/zap"
)

type ExecRestarter struct {
	Log *zap.Logger
}

func (r ExecRestarter) Restart(reason error) {
	ExitRestarter{Log: r.Log}.Restart(reason)
}
