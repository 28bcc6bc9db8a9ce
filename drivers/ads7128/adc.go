package ads7128

import "expio-go/x/mathx"

// Full scale of a 12-bit conversion.
const adcCounts = 1 << 12

// SetOversamplingRatio writes OSR_CFG. Required once before reading analog
// pins.
func (d *Device) SetOversamplingRatio(osr uint8) error {
	return d.WriteRegister(RegOSRConfig, osr)
}

// ReadAnalog selects the pin on the ADC mux and reads one 12-bit result.
// The pin must already be an analog input with OSR set; otherwise the value
// is meaningless but no error is reported.
func (d *Device) ReadAnalog(pin uint8) (uint16, error) {
	return d.ReadAnalogN(pin, 2)
}

// ReadAnalogN is ReadAnalog with an explicit block-read length. Only the
// first two bytes carry the result; n must be at least 2.
func (d *Device) ReadAnalogN(pin uint8, n uint8) (uint16, error) {
	if _, err := pinMask(pin); err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, ErrInvalidLength
	}
	if err := d.WriteRegister(RegChannelSelect, pin); err != nil {
		return 0, err
	}
	var small [2]byte
	buf := small[:]
	if n > 2 {
		buf = make([]byte, n)
	}
	if err := d.BlockRead(buf); err != nil {
		return 0, err
	}
	return Decode12(buf[0], buf[1]), nil
}

// Decode12 assembles a conversion result: [vvvvvvvv][vvvv0000].
func Decode12(b0, b1 byte) uint16 {
	return uint16(b0)<<4 | uint16(b1)>>4
}

// MilliVolts scales a 12-bit code against the reference voltage, rounding to
// the nearest millivolt.
func MilliVolts(raw uint16, vrefMilliV uint32) uint32 {
	return mathx.RoundDiv(uint32(raw&(adcCounts-1))*vrefMilliV, adcCounts)
}
