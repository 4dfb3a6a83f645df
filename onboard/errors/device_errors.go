package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRequest    = errors.New("malformed request line")
	ErrUnsupportedPlatform = errors.New("hardware backend not supported on this platform")
)

type UnknownActionError struct {
	Name string
}

func (err UnknownActionError) Error() string {
	if len(err.Name) == 0 {
		err.Name = "EMPTY"
	}

	return fmt.Sprintf("unknown action %q", err.Name)
}

// SpeedError is returned when the speed parameter is not an integer.
type SpeedError struct {
	Value string
	Err   error
}

func (err SpeedError) Error() string {
	return fmt.Sprintf("invalid speed %q: %v", err.Value, err.Err)
}

func (err SpeedError) Unwrap() error {
	return err.Err
}

type QueryError struct {
	Pair string
}

func (err QueryError) Error() string {
	return fmt.Sprintf("malformed query parameter %q", err.Pair)
}

// BindError is fatal: the device restarts rather than run without a server.
type BindError struct {
	Addr     string
	Attempts int
	Err      error
}

func (err BindError) Error() string {
	return fmt.Sprintf("unable to bind %s after %d attempts: %v", err.Addr, err.Attempts, err.Err)
}

func (err BindError) Unwrap() error {
	return err.Err
}

// PinError wraps a failed write to a single direction pin or PWM channel.
type PinError struct {
	Channel string
	Pin     string
	Err     error
}

func (err PinError) Error() string {
	return fmt.Sprintf("channel %s pin %s: %v", err.Channel, err.Pin, err.Err)
}

func (err PinError) Unwrap() error {
	return err.Err
}
