package ads7128

// Opcode transactions. One call = one bus exchange; nothing here retries.

// ReadRegister returns the value of a single register.
func (d *Device) ReadRegister(reg Register) (uint8, error) {
	d.w[0] = byte(OpRegisterRead)
	d.w[1] = byte(reg)
	if err := d.bus.Tx(d.addr, d.w[:2], d.r[:1]); err != nil {
		return 0, &TxError{Op: OpRegisterRead, Reg: reg, Err: err}
	}
	return d.r[0], nil
}

// WriteRegister overwrites a whole register.
func (d *Device) WriteRegister(reg Register, val uint8) error {
	return d.write3(OpRegisterWrite, reg, val)
}

// SetBits sets the bits of mask in reg, leaving the others untouched.
func (d *Device) SetBits(reg Register, mask uint8) error {
	return d.write3(OpSetBits, reg, mask)
}

// ClearBits clears the bits of mask in reg, leaving the others untouched.
func (d *Device) ClearBits(reg Register, mask uint8) error {
	return d.write3(OpClearBits, reg, mask)
}

// BlockWrite writes payload to consecutive registers starting at reg.
func (d *Device) BlockWrite(reg Register, payload []byte) error {
	w := make([]byte, 0, 2+len(payload))
	w = append(w, byte(OpBlockWrite), byte(reg))
	w = append(w, payload...)
	if err := d.bus.Tx(d.addr, w, nil); err != nil {
		return &TxError{Op: OpBlockWrite, Reg: reg, Err: err}
	}
	return nil
}

// BlockRead fills buf from the chip's data buffer. In manual mode the data
// buffer holds the conversion result of the selected channel.
func (d *Device) BlockRead(buf []byte) error {
	if len(buf) == 0 {
		return ErrInvalidLength
	}
	d.w[0] = byte(OpBlockRead)
	if err := d.bus.Tx(d.addr, d.w[:1], buf); err != nil {
		return &TxError{Op: OpBlockRead, Err: err}
	}
	return nil
}

func (d *Device) write3(op Op, reg Register, val uint8) error {
	d.w[0] = byte(op)
	d.w[1] = byte(reg)
	d.w[2] = val
	if err := d.bus.Tx(d.addr, d.w[:3], nil); err != nil {
		return &TxError{Op: op, Reg: reg, Err: err}
	}
	return nil
}
