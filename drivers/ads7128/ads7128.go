// Package ads7128 provides a TinyGo driver for the TI ADS7128 8-channel
// 12-bit ADC with GPIOs, as fitted on relay, IO and AIN expansion boards.
//
// Design notes (datasheet references):
// • I2C, opcode-based protocol: every transaction starts with an opcode byte
//   (register read/write, set/clear bits, block read/write).
// • Pin registers are shared by all eight pins; configuration is done with
//   single-bit set/clear so other pins are never disturbed.
// • Reset is a two-phase handshake polled with bounded retries.
// • Conversion result is 12 bits, MSB first, left-aligned in two bytes.
//
// The driver keeps no pin state and does not serialise access. Callers that
// share a Device between goroutines must hold their own lock around each
// logical operation.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
package ads7128

import (
	"time"

	"tinygo.org/x/drivers"
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to AddressBase if zero. Must be within
	// AddressBase..AddressMax.
	Address uint16
}

// Device represents an ADS7128 instance on an I²C bus.
type Device struct {
	bus  drivers.I2C
	addr uint16

	// sleep is time.Sleep outside tests.
	sleep func(time.Duration)

	// Fixed buffers to avoid per-call heap allocations.
	w [3]byte
	r [1]byte
}

// Address returns the bus address for a given address selector (0..3).
func Address(selector uint8) uint16 {
	return AddressBase + uint16(selector&0x03)
}

// New creates a Device on an already configured bus. It does not touch the
// chip; call Reset before configuring pins.
func New(bus drivers.I2C, cfg Config) (*Device, error) {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressBase
	}
	if addr < AddressBase || addr > AddressMax {
		return nil, ErrInvalidAddress
	}
	return &Device{
		bus:   bus,
		addr:  addr,
		sleep: time.Sleep,
	}, nil
}

// Addr returns the 7-bit bus address of the chip.
func (d *Device) Addr() uint16 { return d.addr }

// Registers is a snapshot of the chip's configuration and value registers.
type Registers struct {
	SystemStatus   uint8
	GeneralConfig  uint8
	OSRConfig      uint8
	PinConfig      uint8
	GPIOConfig     uint8
	GPODriveConfig uint8
	GPOValue       uint8
	GPIValue       uint8
}

// Dump reads every register in address order. It stops at the first failure.
func (d *Device) Dump() (Registers, error) {
	var out Registers
	for _, f := range []struct {
		reg Register
		dst *uint8
	}{
		{RegSystemStatus, &out.SystemStatus},
		{RegGeneralConfig, &out.GeneralConfig},
		{RegOSRConfig, &out.OSRConfig},
		{RegPinConfig, &out.PinConfig},
		{RegGPIOConfig, &out.GPIOConfig},
		{RegGPODriveConfig, &out.GPODriveConfig},
		{RegGPOValue, &out.GPOValue},
		{RegGPIValue, &out.GPIValue},
	} {
		v, err := d.ReadRegister(f.reg)
		if err != nil {
			return out, err
		}
		*f.dst = v
	}
	return out, nil
}
