package ads7128

import "errors"

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrInvalidPin     = errors.New("ads7128: pin out of range 0..7")
	ErrInvalidAddress = errors.New("ads7128: address out of range 0x10..0x13")
	ErrInvalidLength  = errors.New("ads7128: invalid block length")
	ErrInvalidMode    = errors.New("ads7128: unknown pin mode")
	ErrResetTimeout   = errors.New("ads7128: reset timeout")
)

// TxError reports a failed bus transaction together with the register
// operation that was in progress.
type TxError struct {
	Op  Op
	Reg Register // unused for OpBlockRead
	Err error
}

func (e *TxError) Error() string {
	s := "ads7128: " + e.Op.String()
	if e.Op != OpBlockRead {
		s += " " + e.Reg.String()
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *TxError) Unwrap() error { return e.Err }

// ResetError reports which phase of the reset handshake ran out of attempts.
// It matches ErrResetTimeout with errors.Is.
type ResetError struct {
	Phase    ResetPhase
	Attempts int
	// Last is the most recent transport error tolerated while polling, if any.
	Last error
}

func (e *ResetError) Error() string {
	s := "ads7128: reset timeout in " + e.Phase.String()
	if e.Last != nil {
		s += " (last: " + e.Last.Error() + ")"
	}
	return s
}

func (e *ResetError) Is(target error) bool { return target == ErrResetTimeout }

func (e *ResetError) Unwrap() error { return e.Last }
