// Package drvshim adapts host I²C buses to the tinygo driver Tx shape.
package drvshim

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*I2C)(nil)

// I2C wraps a periph bus. Tx is serialised so several chips may share one
// bus from different goroutines; one Tx is one bus transaction.
type I2C struct {
	mu  sync.Mutex
	bus i2c.Bus
	log *logrus.Entry
}

// NewI2C wraps bus. A nil log discards output.
func NewI2C(bus i2c.Bus, log *logrus.Entry) *I2C {
	if log == nil {
		log = DiscardLogger()
	}
	return &I2C{bus: bus, log: log.WithField("bus", bus.String())}
}

// Tx performs a write followed by a repeated-start read when both w and r
// are non-empty. Errors are returned unchanged.
func (s *I2C) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.bus.Tx(addr, w, r)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"addr": addr,
			"w":    len(w),
			"r":    len(r),
		}).WithError(err).Debug("i2c tx failed")
	}
	return err
}

func (s *I2C) String() string { return s.bus.String() }

// DiscardLogger returns an entry that writes nowhere.
func DiscardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
