package expio

import (
	"errors"

	"expio-go/drivers/ads7128"
	"expio-go/errcode"
)

// driverCode maps ads7128 errors to a Code.
func driverCode(err error) errcode.Code {
	var txe *ads7128.TxError
	switch {
	case err == nil:
		return errcode.OK
	case errors.Is(err, ads7128.ErrInvalidPin):
		return errcode.UnknownPin
	case errors.Is(err, ads7128.ErrInvalidAddress),
		errors.Is(err, ads7128.ErrInvalidLength),
		errors.Is(err, ads7128.ErrInvalidMode):
		return errcode.InvalidParams
	case errors.Is(err, ads7128.ErrResetTimeout):
		return errcode.Timeout
	case errors.As(err, &txe):
		return errcode.IOError
	default:
		return errcode.MapDriverErr(err)
	}
}

// wrap returns nil for a nil err, otherwise an *errcode.E carrying the
// mapped code.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &errcode.E{C: driverCode(err), Op: op, Err: err}
}
