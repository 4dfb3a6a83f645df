//go:build !linux

package server

import (
	"go.uber.org/zap"
)

type RebootRestarter struct {
	Log *zap.Logger
}

func (r RebootRestarter) Restart(reason error) {
	r.Log.Warn("reboot not supported on this platform, exiting instead")
	ExitRestarter{Log: r.Log}.Restart(reason)
}
