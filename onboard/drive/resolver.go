package drive

import (
	"github.com/CodedInternet/gorccar/onboard/hardware"
	"go.uber.org/zap"
)

// Result is the outcome kind of a resolved command.
type Result uint8

const (
	ResultOK Result = iota
	ResultUnknown
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultUnknown:
		return "unknown"
	default:
		return "error"
	}
}

// Resolver turns actions into motor driver calls.
type Resolver struct {
	Motors      hardware.MotorInterface
	Calibration Calibration
	Log         *zap.Logger
}

func NewResolver(motors hardware.MotorInterface, cal Calibration, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{Motors: motors, Calibration: cal, Log: log}
}

// Resolve applies an action. A driver failure stops the motors and reports ResultError.
func (r *Resolver) Resolve(action Action, speed int) (Result, error) {
	var err error
	if action == Stop {
		err = r.Motors.Stop()
	} else {
		intent := r.Calibration.Intent(action, speed)
		err = r.Motors.Apply(intent)
		if err == nil {
			r.Log.Debug("drive",
				zap.Stringer("action", action),
				zap.Int("speed", speed),
				zap.Uint16("left", intent.LeftDuty),
				zap.Uint16("right", intent.RightDuty))
		}
	}

	if err != nil {
		r.Stop()
		r.Log.Warn("drive command failed", zap.Stringer("action", action), zap.Error(err))
		return ResultError, err
	}
	return ResultOK, nil
}

// ResolveNamed parses the wire name first. Unknown names stop the motors and
// report ResultUnknown, which is distinct from an explicit stop.
func (r *Resolver) ResolveNamed(name string, speed int) (Result, error) {
	action, err := ParseAction(name)
	if err != nil {
		if serr := r.Motors.Stop(); serr != nil {
			r.Log.Warn("stop failed", zap.Error(serr))
		}
		r.Log.Info("unknown action", zap.String("action", name))
		return ResultUnknown, err
	}
	return r.Resolve(action, speed)
}

// Stop de-energises the motors, logging rather than returning a failure.
func (r *Resolver) Stop() {
	if err := r.Motors.Stop(); err != nil {
		r.Log.Error("unable to stop motors", zap.Error(err))
	}
}
