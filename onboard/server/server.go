package server

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/CodedInternet/gorccar/onboard/drive"
	errs "github.com/CodedInternet/gorccar/onboard/errors"
	"go.uber.org/zap"
)

const (
	DEFAULT_ADDR           = "0.0.0.0:80"
	DEFAULT_BIND_ATTEMPTS  = 5
	DEFAULT_BIND_DELAY     = 3 * time.Second
	DEFAULT_BACKLOG        = 3
	DEFAULT_ACCEPT_TIMEOUT = time.Second
	DEFAULT_CONN_TIMEOUT   = 3 * time.Second
	DEFAULT_READ_LIMIT     = 512
)

type Config struct {
	Addr          string        `yaml:"addr"`
	BindAttempts  int           `yaml:"bind_attempts"`
	BindDelay     time.Duration `yaml:"bind_delay"`
	Backlog       int           `yaml:"backlog"`
	AcceptTimeout time.Duration `yaml:"accept_timeout"`
	ConnTimeout   time.Duration `yaml:"conn_timeout"`
	ReadLimit     int           `yaml:"read_limit"`
}

func DefaultConfig() Config {
	return Config{
		Addr:          DEFAULT_ADDR,
		BindAttempts:  DEFAULT_BIND_ATTEMPTS,
		BindDelay:     DEFAULT_BIND_DELAY,
		Backlog:       DEFAULT_BACKLOG,
		AcceptTimeout: DEFAULT_ACCEPT_TIMEOUT,
		ConnTimeout:   DEFAULT_CONN_TIMEOUT,
		ReadLimit:     DEFAULT_READ_LIMIT,
	}
}

// Server is the single threaded accept loop. Exactly one connection is handled
// at a time; further clients wait in the listen backlog.
type Server struct {
	Config    Config
	Router    *Router
	Resolver  *drive.Resolver
	Restarter Restarter
	Log       *zap.Logger

	listen func(addr string, backlog int) (net.Listener, error)
}

func NewServer(cfg Config, resolver *drive.Resolver, restarter Restarter, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Config:    cfg,
		Router:    NewRouter(resolver, log),
		Resolver:  resolver,
		Restarter: restarter,
		Log:       log,
		listen:    listenTCP,
	}
}

// Listen binds the configured address, retrying with a fixed delay. Running
// out of attempts yields a BindError.
func (s *Server) Listen(ctx context.Context) (ln net.Listener, err error) {
	attempts := s.Config.BindAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 1; i <= attempts; i++ {
		ln, err = s.listen(s.Config.Addr, s.Config.Backlog)
		if err == nil {
			s.Log.Info("listening", zap.String("addr", ln.Addr().String()))
			return
		}

		s.Log.Warn("bind failed",
			zap.Int("attempt", i),
			zap.Int("of", attempts),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Config.BindDelay):
		}
	}

	return nil, errs.BindError{Addr: s.Config.Addr, Attempts: attempts, Err: err}
}

// Run stops the motors, binds and serves until ctx ends. A bind failure hands
// over to the restarter; there is no degraded mode.
func (s *Server) Run(ctx context.Context) error {
	s.Resolver.Stop()

	ln, err := s.Listen(ctx)
	if err != nil {
		var bindErr errs.BindError
		if errors.As(err, &bindErr) {
			s.Log.Error("all bind attempts failed", zap.Error(err))
			s.Restarter.Restart(err)
		}
		return err
	}

	return s.Serve(ctx, ln)
}

type deadliner interface {
	SetDeadline(t time.Time) error
}

// Serve runs accept, handle, close until ctx is cancelled. Accept timeouts are
// the idle case and are not logged. The listener is closed and the motors
// stopped on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.Resolver.Stop()
	defer ln.Close()

	dl, _ := ln.(deadliner)

	for {
		if ctx.Err() != nil {
			return nil
		}

		if dl != nil {
			dl.SetDeadline(time.Now().Add(s.Config.AcceptTimeout))
		}

		conn, err := ln.Accept()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Log.Warn("accept failed", zap.Error(err))
			select {
			case <-ctx.Done():
			case <-time.After(100 * time.Millisecond):
			}
			continue
		}

		s.handleConn(conn)
	}
}

// handleConn reads one bounded chunk, routes it and writes the response. The
// connection is closed on every path. Longer requests are truncated.
func (s *Server) handleConn(conn net.Conn) {
	log := s.Log.With(zap.Stringer("remote", conn.RemoteAddr()))
	defer func() {
		if r := recover(); r != nil {
			log.Error("request panic", zap.Any("panic", r))
		}
		conn.Close()
	}()

	conn.SetDeadline(time.Now().Add(s.Config.ConnTimeout))

	buf := make([]byte, s.Config.ReadLimit)
	n, err := conn.Read(buf)
	if n == 0 {
		if err != nil {
			log.Debug("no request", zap.Error(err))
		}
		return
	}

	req, err := ParseRequestLine(buf[:n])
	if err != nil {
		log.Debug("unparseable request", zap.Error(err))
		return
	}

	resp := s.Router.Route(req.Path)
	log.Debug("request", zap.String("method", req.Method), zap.String("path", req.Path), zap.Int("status", resp.Status))

	if _, err = resp.WriteTo(conn); err != nil {
		log.Warn("write failed", zap.Error(err))
	}
}
