package hardware

import (
	"sync"
)

// SimulatedPin records the last level written. Used by --sim mode and tests.
type SimulatedPin struct {
	lock   sync.Mutex
	high   bool
	writes int
	Fail   error // returned from Set when non nil
}

func (p *SimulatedPin) Set(high bool) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.Fail != nil {
		return p.Fail
	}
	p.high = high
	p.writes++
	return nil
}

func (p *SimulatedPin) High() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.high
}

func (p *SimulatedPin) Writes() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.writes
}

type SimulatedPWM struct {
	lock   sync.Mutex
	duty   uint16
	writes int
	Fail   error
}

func (p *SimulatedPWM) SetDuty(duty uint16) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.Fail != nil {
		return p.Fail
	}
	p.duty = duty
	p.writes++
	return nil
}

func (p *SimulatedPWM) Duty() uint16 {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.duty
}

func (p *SimulatedPWM) Writes() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.writes
}

// SimulatedChannel wires a Channel to in-memory pins and keeps typed handles to them.
type SimulatedChannel struct {
	*Channel
	PinA, PinB *SimulatedPin
	PWM        *SimulatedPWM
}

func NewSimulatedChannel() *SimulatedChannel {
	sc := &SimulatedChannel{
		PinA: new(SimulatedPin),
		PinB: new(SimulatedPin),
		PWM:  new(SimulatedPWM),
	}
	sc.Channel = &Channel{A: sc.PinA, B: sc.PinB, Enable: sc.PWM}
	return sc
}

// BothHigh reports the forbidden shoot-through state.
func (sc *SimulatedChannel) BothHigh() bool {
	return sc.PinA.High() && sc.PinB.High()
}

func NewSimulatedMotorDriver() (driver *MotorDriver, left, right *SimulatedChannel) {
	left = NewSimulatedChannel()
	right = NewSimulatedChannel()
	driver = NewMotorDriverFromChannels(left.Channel, right.Channel)
	return
}
