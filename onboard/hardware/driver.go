package hardware

// MotorDriver owns the two H-bridge channels of the vehicle. It is not safe for
// concurrent use; the accept loop serialises every call.
type MotorDriver struct {
	Left, Right *Channel
}

func NewMotorDriverFromChannels(left, right *Channel) *MotorDriver {
	left.Name = "left"
	right.Name = "right"
	return &MotorDriver{Left: left, Right: right}
}

// SetDuty clamps both values into [0, MaxDuty]; out of range input never errors.
func (m *MotorDriver) SetDuty(left, right int) (err error) {
	if err = m.Left.setDuty(ClampDuty(left)); err != nil {
		m.Stop()
		return
	}
	if err = m.Right.setDuty(ClampDuty(right)); err != nil {
		m.Stop()
	}
	return
}

func (m *MotorDriver) ApplyDirection(left, right Direction) (err error) {
	if err = m.Left.setDirection(left); err != nil {
		m.Stop()
		return
	}
	if err = m.Right.setDirection(right); err != nil {
		m.Stop()
	}
	return
}

// Apply writes a complete intent. On any failure the driver is stopped before
// the error is returned, so the hardware never keeps a half-applied command.
func (m *MotorDriver) Apply(intent DriveIntent) (err error) {
	intent = intent.Normalise()

	if err = m.Left.apply(intent.LeftDirection, intent.LeftDuty); err != nil {
		m.Stop()
		return
	}
	if err = m.Right.apply(intent.RightDirection, intent.RightDuty); err != nil {
		m.Stop()
	}
	return
}

// Stop de-energises both channels. It is idempotent and safe before any other call.
func (m *MotorDriver) Stop() error {
	lerr := m.Left.coast()
	rerr := m.Right.coast()
	if lerr != nil {
		return lerr
	}
	return rerr
}

// State reports what the pins currently hold. An off channel always reports duty 0.
func (m *MotorDriver) State() (left, right ChannelState) {
	left, right = m.Left.State, m.Right.State
	if left.Direction == Off {
		left.Duty = 0
	}
	if right.Direction == Off {
		right.Duty = 0
	}
	return
}

var _ MotorInterface = (*MotorDriver)(nil)
