// Package expio runs one ADS7128 expander from a parameter set: it resets
// the chip, applies pin modes and initial levels, and then serves pin
// operations with one lock held per logical operation.
//
// All errors are *errcode.E values; use errcode.Of to get the code.
package expio

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"tinygo.org/x/drivers"

	"expio-go/drivers/ads7128"
	"expio-go/errcode"
	"expio-go/internal/drvshim"
)

type Expander struct {
	mu    sync.Mutex
	dev   *ads7128.Device
	log   *logrus.Entry
	p     Params
	modes map[uint8]ads7128.PinMode
	ready bool
}

// New validates p and binds the expander to bus. It does not touch the chip;
// call Init.
func New(bus drivers.I2C, p Params, log *logrus.Entry) (*Expander, error) {
	modes, err := p.validate()
	if err != nil {
		return nil, err
	}
	dev, err := ads7128.New(bus, ads7128.Config{Address: p.Addr})
	if err != nil {
		return nil, wrap("new", err)
	}
	if p.VrefMilliV == 0 {
		p.VrefMilliV = defaultVrefMilliV
	}
	if log == nil {
		log = drvshim.DiscardLogger()
	}
	return &Expander{
		dev:   dev,
		log:   log.WithField("addr", dev.Addr()),
		p:     p,
		modes: modes,
	}, nil
}

// Init resets the chip (unless disabled) and applies the pin table in order.
// Output latches are written before the pin is switched to output.
func (e *Expander) Init(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initLocked(ctx, e.p.resetOnInit())
}

// Reset always resets the chip, whatever the reset param says, then
// reapplies the pin table: a chip reset loses every pin setting.
func (e *Expander) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initLocked(ctx, true)
}

func (e *Expander) initLocked(ctx context.Context, reset bool) error {
	e.ready = false
	if reset {
		if err := e.dev.Reset(); err != nil {
			e.log.WithError(err).Warn("reset failed")
			return wrap("reset", err)
		}
		e.log.Debug("reset done")
	}
	for _, pp := range e.p.Pins {
		if err := ctx.Err(); err != nil {
			return &errcode.E{C: errcode.NotReady, Op: "init", Err: err}
		}
		m := e.modes[pp.Pin]
		if m.IsOutput() {
			if err := e.dev.WritePin(pp.Pin, pp.Initial); err != nil {
				return wrap("init", err)
			}
		}
		if err := e.dev.ConfigurePin(pp.Pin, m); err != nil {
			return wrap("init", err)
		}
		e.log.WithFields(logrus.Fields{"pin": pp.Pin, "mode": m.String()}).Debug("pin configured")
	}
	if e.p.OSR != nil {
		if err := e.dev.SetOversamplingRatio(*e.p.OSR); err != nil {
			return wrap("init", err)
		}
	}
	e.ready = true
	e.log.WithField("pins", len(e.p.Pins)).Info("expander ready")
	return nil
}

// Mode returns the configured mode of pin.
func (e *Expander) Mode(pin uint8) (ads7128.PinMode, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("mode", pin, anyMode); err != nil {
		return 0, err
	}
	return e.modes[pin], nil
}

// Write sets an output pin's latch.
func (e *Expander) Write(pin uint8, v bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("write", pin, ads7128.PinMode.IsOutput); err != nil {
		return err
	}
	return wrap("write", e.dev.WritePin(pin, v))
}

// Toggle inverts an output pin's latch; read and write happen under one lock.
func (e *Expander) Toggle(pin uint8) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("toggle", pin, ads7128.PinMode.IsOutput); err != nil {
		return err
	}
	return wrap("toggle", e.dev.TogglePin(pin))
}

// Latch returns the last value written to an output pin.
func (e *Expander) Latch(pin uint8) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("latch", pin, ads7128.PinMode.IsOutput); err != nil {
		return false, err
	}
	v, err := e.dev.ReadOutputLatch(pin)
	return v, wrap("latch", err)
}

// Input samples a digital input pin.
func (e *Expander) Input(pin uint8) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("input", pin, is(ads7128.ModeDigitalInput)); err != nil {
		return false, err
	}
	v, err := e.dev.ReadInputPin(pin)
	return v, wrap("input", err)
}

// Analog returns a raw 12-bit conversion of an analog pin.
func (e *Expander) Analog(pin uint8) (uint16, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("analog", pin, is(ads7128.ModeAnalogInput)); err != nil {
		return 0, err
	}
	v, err := e.dev.ReadAnalog(pin)
	return v, wrap("analog", err)
}

// MilliVolts converts one analog reading using the configured reference.
func (e *Expander) MilliVolts(pin uint8) (uint32, error) {
	raw, err := e.Analog(pin)
	if err != nil {
		return 0, err
	}
	return ads7128.MilliVolts(raw, e.p.VrefMilliV), nil
}

func anyMode(ads7128.PinMode) bool { return true }

func is(want ads7128.PinMode) func(ads7128.PinMode) bool {
	return func(m ads7128.PinMode) bool { return m == want }
}

func (e *Expander) check(op string, pin uint8, ok func(ads7128.PinMode) bool) error {
	if !e.ready {
		return &errcode.E{C: errcode.NotReady, Op: op}
	}
	m, known := e.modes[pin]
	if !known {
		return &errcode.E{C: errcode.UnknownPin, Op: op}
	}
	if !ok(m) {
		return &errcode.E{C: errcode.Unsupported, Op: op, Msg: "pin is " + m.String()}
	}
	return nil
}
