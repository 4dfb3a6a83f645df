//go:build unix

package server

import (
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// listenTCP builds the socket by hand so SO_REUSEADDR and the listen backlog
// are set explicitly; a crash restart must not fail with "address in use".
func listenTCP(addr string, backlog int) (ln net.Listener, err error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return
	}

	domain := unix.AF_INET
	var sa unix.Sockaddr
	if ip4 := tcpAddr.IP.To4(); tcpAddr.IP == nil || ip4 != nil {
		a := &unix.SockaddrInet4{Port: tcpAddr.Port}
		copy(a.Addr[:], ip4)
		sa = a
	} else {
		domain = unix.AF_INET6
		a := &unix.SockaddrInet6{Port: tcpAddr.Port}
		copy(a.Addr[:], tcpAddr.IP.To16())
		sa = a
	}

	fd, err := unix.Socket(domain, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}
	unix.CloseOnExec(fd)

	f := os.NewFile(uintptr(fd), "rccar-listener")
	defer f.Close() // FileListener holds its own dup

	if err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return nil, os.NewSyscallError("setsockopt", err)
	}
	if err = unix.Bind(fd, sa); err != nil {
		return nil, os.NewSyscallError("bind", err)
	}
	if err = unix.Listen(fd, backlog); err != nil {
		return nil, os.NewSyscallError("listen", err)
	}

	return net.FileListener(f)
}
