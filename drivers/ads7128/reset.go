package ads7128

// ResetPhase is a state of the reset handshake.
type ResetPhase uint8

const (
	PhaseIdle ResetPhase = iota
	PhaseResetAsserted
	PhaseAwaitResetAck
	PhaseStatusClearAsserted
	PhaseAwaitStatusClear
	PhaseDone
	PhaseFailed
)

func (p ResetPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseResetAsserted:
		return "reset-asserted"
	case PhaseAwaitResetAck:
		return "await-reset-ack"
	case PhaseStatusClearAsserted:
		return "status-clear-asserted"
	case PhaseAwaitStatusClear:
		return "await-status-clear"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "phase?"
	}
}

// Reset runs the software reset handshake:
//
//	set GENERAL_CFG.RST, wait 50ms
//	poll (5x, 10ms) until SYSTEM_STATUS.bit0 == 1 and GENERAL_CFG.RST == 0
//	set SYSTEM_STATUS.bit0 to clear it, wait 50ms
//	poll (10x, 10ms) until SYSTEM_STATUS.bit0 == 0
//
// Bus errors while polling count as "not yet". Bus errors on the two
// command writes are returned as *TxError. Running out of attempts returns a
// *ResetError naming the phase; the chip state is then indeterminate.
func (d *Device) Reset() error {
	phase := PhaseIdle
	for {
		switch phase {
		case PhaseIdle:
			if err := d.SetBits(RegGeneralConfig, flagBit0); err != nil {
				return err
			}
			phase = PhaseResetAsserted

		case PhaseResetAsserted:
			d.sleep(resetSettle)
			phase = PhaseAwaitResetAck

		case PhaseAwaitResetAck:
			if err := d.poll(phase, resetAckAttempts, d.resetAcked); err != nil {
				return err
			}
			phase = PhaseStatusClearAsserted

		case PhaseStatusClearAsserted:
			if err := d.SetBits(RegSystemStatus, flagBit0); err != nil {
				return err
			}
			d.sleep(resetSettle)
			phase = PhaseAwaitStatusClear

		case PhaseAwaitStatusClear:
			if err := d.poll(phase, statusClearAttempts, d.statusCleared); err != nil {
				return err
			}
			phase = PhaseDone

		case PhaseDone:
			return nil
		}
	}
}

// poll calls cond up to attempts times, sleeping the poll interval after each
// miss. An error from cond is a miss, not a failure.
func (d *Device) poll(phase ResetPhase, attempts int, cond func() (bool, error)) error {
	var last error
	for i := 0; i < attempts; i++ {
		ok, err := cond()
		if err != nil {
			last = err
		} else if ok {
			return nil
		}
		d.sleep(resetPollInterval)
	}
	return &ResetError{Phase: phase, Attempts: attempts, Last: last}
}

// resetAcked: reset done flag raised and RST bit self-cleared.
func (d *Device) resetAcked() (bool, error) {
	st, err := d.ReadRegister(RegSystemStatus)
	if err != nil {
		return false, err
	}
	gen, err := d.ReadRegister(RegGeneralConfig)
	if err != nil {
		return false, err
	}
	return st&flagBit0 == 1 && gen&flagBit0 == 0, nil
}

func (d *Device) statusCleared() (bool, error) {
	st, err := d.ReadRegister(RegSystemStatus)
	if err != nil {
		return false, err
	}
	return st&flagBit0 == 0, nil
}
