//go:build linux

package server

import (
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// RebootRestarter power cycles the board. Requires CAP_SYS_BOOT.
type RebootRestarter struct {
	Log *zap.Logger
}

func (r RebootRestarter) Restart(reason error) {
	r.Log.Error("rebooting device", zap.Error(reason))
	r.Log.Sync()

	unix.Sync()
	err := unix.Reboot(unix.LINUX_REBOOT_CMD_RESTART)

	ExitRestarter{Log: r.Log}.Restart(err)
}
