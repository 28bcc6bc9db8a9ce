package ads7128

import "expio-go/x/mathx"

// PinMode is one of the four mutually exclusive pin configurations.
//
//	mode          PIN_CFG  GPIO_CFG  GPO_DRIVE_CFG
//	analog           0        -          -
//	input            1        0          -
//	push-pull        1        1          1
//	open-drain       1        1          0
type PinMode uint8

const (
	ModeAnalogInput PinMode = iota
	ModeDigitalInput
	ModeOutputPushPull
	ModeOutputOpenDrain
)

func (m PinMode) String() string {
	switch m {
	case ModeAnalogInput:
		return "analog"
	case ModeDigitalInput:
		return "input"
	case ModeOutputPushPull:
		return "push_pull"
	case ModeOutputOpenDrain:
		return "open_drain"
	default:
		return "mode?"
	}
}

// IsOutput reports whether the mode drives the pin.
func (m PinMode) IsOutput() bool {
	return m == ModeOutputPushPull || m == ModeOutputOpenDrain
}

// ParsePinMode is the inverse of PinMode.String.
func ParsePinMode(s string) (PinMode, bool) {
	switch s {
	case "analog":
		return ModeAnalogInput, true
	case "input":
		return ModeDigitalInput, true
	case "push_pull":
		return ModeOutputPushPull, true
	case "open_drain":
		return ModeOutputOpenDrain, true
	default:
		return 0, false
	}
}

func pinMask(pin uint8) (uint8, error) {
	if !mathx.Between(pin, 0, NumPins-1) {
		return 0, ErrInvalidPin
	}
	return 1 << pin, nil
}

// ---------------- Configuration ----------------

// ConfigureAnalogInput routes the pin to the ADC mux. The oversampling ratio
// must be written separately (SetOversamplingRatio) before the first
// conversion; this call does not touch OSR_CFG.
func (d *Device) ConfigureAnalogInput(pin uint8) error {
	bit, err := pinMask(pin)
	if err != nil {
		return err
	}
	return d.ClearBits(RegPinConfig, bit)
}

// ConfigureDigitalInput makes the pin a digital input without pull.
func (d *Device) ConfigureDigitalInput(pin uint8) error {
	bit, err := pinMask(pin)
	if err != nil {
		return err
	}
	if err := d.SetBits(RegPinConfig, bit); err != nil {
		return err
	}
	return d.ClearBits(RegGPIOConfig, bit)
}

// ConfigureOutputPushPull makes the pin a push-pull digital output.
func (d *Device) ConfigureOutputPushPull(pin uint8) error {
	bit, err := pinMask(pin)
	if err != nil {
		return err
	}
	if err := d.SetBits(RegPinConfig, bit); err != nil {
		return err
	}
	if err := d.SetBits(RegGPIOConfig, bit); err != nil {
		return err
	}
	return d.SetBits(RegGPODriveConfig, bit)
}

// ConfigureOutputOpenDrain makes the pin an open-drain digital output.
func (d *Device) ConfigureOutputOpenDrain(pin uint8) error {
	bit, err := pinMask(pin)
	if err != nil {
		return err
	}
	if err := d.SetBits(RegPinConfig, bit); err != nil {
		return err
	}
	if err := d.SetBits(RegGPIOConfig, bit); err != nil {
		return err
	}
	return d.ClearBits(RegGPODriveConfig, bit)
}

// ConfigurePin dispatches to the Configure* call for mode.
func (d *Device) ConfigurePin(pin uint8, mode PinMode) error {
	switch mode {
	case ModeAnalogInput:
		return d.ConfigureAnalogInput(pin)
	case ModeDigitalInput:
		return d.ConfigureDigitalInput(pin)
	case ModeOutputPushPull:
		return d.ConfigureOutputPushPull(pin)
	case ModeOutputOpenDrain:
		return d.ConfigureOutputOpenDrain(pin)
	default:
		return ErrInvalidMode
	}
}

// PinMode reads the three configuration registers back and decodes the
// pin's current mode.
func (d *Device) PinMode(pin uint8) (PinMode, error) {
	bit, err := pinMask(pin)
	if err != nil {
		return 0, err
	}
	cfg, err := d.ReadRegister(RegPinConfig)
	if err != nil {
		return 0, err
	}
	if cfg&bit == 0 {
		return ModeAnalogInput, nil
	}
	dir, err := d.ReadRegister(RegGPIOConfig)
	if err != nil {
		return 0, err
	}
	if dir&bit == 0 {
		return ModeDigitalInput, nil
	}
	drv, err := d.ReadRegister(RegGPODriveConfig)
	if err != nil {
		return 0, err
	}
	if drv&bit == 0 {
		return ModeOutputOpenDrain, nil
	}
	return ModeOutputPushPull, nil
}

// ---------------- Digital I/O ----------------

// WritePin sets or clears the pin's output latch.
func (d *Device) WritePin(pin uint8, v bool) error {
	bit, err := pinMask(pin)
	if err != nil {
		return err
	}
	if v {
		return d.SetBits(RegGPOValue, bit)
	}
	return d.ClearBits(RegGPOValue, bit)
}

// ReadOutputLatch returns the last value written to an output pin. This is
// the latch, not the level on the wire.
func (d *Device) ReadOutputLatch(pin uint8) (bool, error) {
	return d.readPinBit(RegGPOValue, pin)
}

// ReadInputPin returns the sampled level of a digital input pin.
func (d *Device) ReadInputPin(pin uint8) (bool, error) {
	return d.readPinBit(RegGPIValue, pin)
}

// TogglePin inverts the output latch. On a pin that is not an output the
// latch changes but nothing is driven.
func (d *Device) TogglePin(pin uint8) error {
	v, err := d.ReadOutputLatch(pin)
	if err != nil {
		return err
	}
	return d.WritePin(pin, !v)
}

// ReadOutputLatches returns GPO_VALUE, one bit per pin.
func (d *Device) ReadOutputLatches() (uint8, error) { return d.ReadRegister(RegGPOValue) }

// ReadInputs returns GPI_VALUE, one bit per pin.
func (d *Device) ReadInputs() (uint8, error) { return d.ReadRegister(RegGPIValue) }

func (d *Device) readPinBit(reg Register, pin uint8) (bool, error) {
	bit, err := pinMask(pin)
	if err != nil {
		return false, err
	}
	v, err := d.ReadRegister(reg)
	if err != nil {
		return false, err
	}
	return v&bit != 0, nil
}
