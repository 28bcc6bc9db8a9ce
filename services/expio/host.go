package expio

import (
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"

	"expio-go/internal/drvshim"
)

// NewHost binds an expander to a periph I²C bus, e.g. one opened with
// i2creg.Open on Linux. Transactions on bus are serialised by the shim.
func NewHost(bus i2c.Bus, p Params, log *logrus.Entry) (*Expander, error) {
	if log == nil {
		log = drvshim.DiscardLogger()
	}
	return New(drvshim.NewI2C(bus, log), p, log)
}
