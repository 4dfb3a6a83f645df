package drive

import (
	errs "github.com/CodedInternet/gorccar/onboard/errors"
)

type Action uint8

const (
	Stop Action = iota
	Forward
	Backward
	TurnLeft
	TurnRight
	ForwardLeft
	ForwardRight
	BackwardLeft
	BackwardRight
	SpinLeft
	SpinRight
)

var actionNames = [...]string{
	Stop:          "stop",
	Forward:       "forward",
	Backward:      "backward",
	TurnLeft:      "left",
	TurnRight:     "right",
	ForwardLeft:   "forward_left",
	ForwardRight:  "forward_right",
	BackwardLeft:  "backward_left",
	BackwardRight: "backward_right",
	SpinLeft:      "spin_left",
	SpinRight:     "spin_right",
}

// Actions lists every action in declaration order.
func Actions() []Action {
	all := make([]Action, len(actionNames))
	for i := range actionNames {
		all[i] = Action(i)
	}
	return all
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "invalid"
}

// ParseAction maps a wire name onto an Action. It is the only place an
// unknown action can appear.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return Stop, errs.UnknownActionError{Name: name}
}
