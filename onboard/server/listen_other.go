//go:build !unix

package server

import (
	"net"
)

// listenTCP falls back to the runtime listener; the backlog is left to the OS.
func listenTCP(addr string, backlog int) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
