// Package ads7128 provides constants for opcodes, register addresses and
// timing used in the operation of the ADS7128 I/O expander.
package ads7128

import "time"

const (
	// 7-bit I2C address with both address selector resistors absent.
	AddressBase = 0x10
	// Highest address reachable through the 2-bit selector.
	AddressMax = AddressBase + 3

	// Number of analog/digital pins.
	NumPins = 8
)

// Op is one of the fixed opcodes understood by the chip. The opcode is the
// first byte of every transaction.
type Op uint8

const (
	OpRegisterRead  Op = 0b0001_0000
	OpRegisterWrite Op = 0b0000_1000
	OpSetBits       Op = 0b0001_1000
	OpClearBits     Op = 0b0010_0000
	OpBlockWrite    Op = 0b0010_1000
	OpBlockRead     Op = 0b0011_0000
)

func (o Op) String() string {
	switch o {
	case OpRegisterRead:
		return "read"
	case OpRegisterWrite:
		return "write"
	case OpSetBits:
		return "set-bits"
	case OpClearBits:
		return "clear-bits"
	case OpBlockWrite:
		return "block-write"
	case OpBlockRead:
		return "block-read"
	default:
		return "op?"
	}
}

// Register is an 8-bit register address. For the pin registers bit i maps to
// pin i.
type Register uint8

const (
	RegSystemStatus   Register = 0x00 // bit0: BOR / reset done
	RegGeneralConfig  Register = 0x01 // bit0: RST command
	RegOSRConfig      Register = 0x03
	RegPinConfig      Register = 0x05 // 0 = analog, 1 = GPIO
	RegGPIOConfig     Register = 0x07 // 0 = input, 1 = output
	RegGPODriveConfig Register = 0x09 // 0 = open-drain, 1 = push-pull
	RegGPOValue       Register = 0x0B
	RegGPIValue       Register = 0x0D
	RegChannelSelect  Register = 0x11 // holds a pin index, not a mask
)

func (r Register) String() string {
	switch r {
	case RegSystemStatus:
		return "SYSTEM_STATUS"
	case RegGeneralConfig:
		return "GENERAL_CFG"
	case RegOSRConfig:
		return "OSR_CFG"
	case RegPinConfig:
		return "PIN_CFG"
	case RegGPIOConfig:
		return "GPIO_CFG"
	case RegGPODriveConfig:
		return "GPO_DRIVE_CFG"
	case RegGPOValue:
		return "GPO_VALUE"
	case RegGPIValue:
		return "GPI_VALUE"
	case RegChannelSelect:
		return "CHANNEL_SEL"
	default:
		return "REG?"
	}
}

// Bit 0 of SYSTEM_STATUS and GENERAL_CFG.
const flagBit0 = 1 << 0

// Reset handshake timing. These values are what the hardware expects.
const (
	resetSettle         = 50 * time.Millisecond
	resetPollInterval   = 10 * time.Millisecond
	resetAckAttempts    = 5
	statusClearAttempts = 10
)
