package ads7128

import (
	"errors"
	"sync"
	"time"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeChip)(nil)

var errNACK = errors.New("nack")

type txRec struct {
	Addr uint16
	W    []byte
	Rn   int
}

// fakeChip is a register-file model of the ADS7128 opcode protocol.
type fakeChip struct {
	mu   sync.Mutex
	regs [0x12]byte
	adc  []byte
	txs  []txRec

	// Reset behaviour knobs.
	stuckReset  bool // GENERAL_CFG.RST never self-clears
	stuckStatus bool // SYSTEM_STATUS.bit0 ignores write-1-to-clear
	failReads   int  // number of upcoming register reads to fail
	failWrites  bool // every write-only exchange fails
}

func newFakeChip() *fakeChip {
	return &fakeChip{adc: []byte{0x00, 0x00}}
}

func (f *fakeChip) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txs = append(f.txs, txRec{Addr: addr, W: append([]byte(nil), w...), Rn: len(r)})

	if len(w) == 0 {
		return errors.New("fake: empty write")
	}
	switch Op(w[0]) {
	case OpRegisterRead:
		if f.failReads > 0 {
			f.failReads--
			return errNACK
		}
		r[0] = f.regs[w[1]]
	case OpBlockRead:
		for i := range r {
			if i < len(f.adc) {
				r[i] = f.adc[i]
			} else {
				r[i] = 0
			}
		}
	case OpRegisterWrite:
		if f.failWrites {
			return errNACK
		}
		f.regs[w[1]] = w[2]
	case OpSetBits:
		if f.failWrites {
			return errNACK
		}
		f.setBits(Register(w[1]), w[2])
	case OpClearBits:
		if f.failWrites {
			return errNACK
		}
		f.regs[w[1]] &^= w[2]
	case OpBlockWrite:
		if f.failWrites {
			return errNACK
		}
		copy(f.regs[w[1]:], w[2:])
	default:
		return errors.New("fake: bad opcode")
	}
	return nil
}

func (f *fakeChip) setBits(reg Register, mask byte) {
	switch {
	case reg == RegGeneralConfig && mask&flagBit0 != 0:
		// Software reset: registers to defaults, BOR flag raised.
		f.regs = [0x12]byte{}
		f.regs[RegSystemStatus] = flagBit0
		if f.stuckReset {
			f.regs[RegGeneralConfig] = flagBit0
		}
	case reg == RegSystemStatus && mask&flagBit0 != 0:
		// Write 1 to clear.
		if !f.stuckStatus {
			f.regs[RegSystemStatus] &^= flagBit0
		}
	default:
		f.regs[reg] |= mask
	}
}

func (f *fakeChip) reg(r Register) byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.regs[r]
}

func (f *fakeChip) setReg(r Register, v byte) {
	f.mu.Lock()
	f.regs[r] = v
	f.mu.Unlock()
}

func (f *fakeChip) log() []txRec {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]txRec(nil), f.txs...)
}

// sleepRecorder replaces time.Sleep in reset tests.
type sleepRecorder struct{ calls []time.Duration }

func (s *sleepRecorder) sleep(d time.Duration) { s.calls = append(s.calls, d) }

func newTestDevice(f *fakeChip) (*Device, *sleepRecorder) {
	d, err := New(f, Config{})
	if err != nil {
		panic(err)
	}
	s := &sleepRecorder{}
	d.sleep = s.sleep
	return d, s
}
