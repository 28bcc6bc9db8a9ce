package expio

import (
	"encoding/json"
	"strconv"

	"expio-go/drivers/ads7128"
	"expio-go/errcode"
)

// PinParams configures one chip pin.
type PinParams struct {
	Pin     uint8  `json:"pin"`
	Mode    string `json:"mode"`              // "analog" | "input" | "push_pull" | "open_drain"
	Initial bool   `json:"initial,omitempty"` // outputs only
}

// Params defines one expander instance.
type Params struct {
	Addr       uint16      `json:"addr,omitempty"`    // 0 => ads7128.AddressBase
	Reset      *bool       `json:"reset,omitempty"`   // default true
	OSR        *uint8      `json:"osr,omitempty"`     // required when any pin is analog
	VrefMilliV uint32      `json:"vref_mv,omitempty"` // default 3300
	Pins       []PinParams `json:"pins"`
}

const defaultVrefMilliV = 3300

// DecodeParams accepts raw JSON (bytes or string) or an already decoded
// value such as map[string]any.
func DecodeParams(src any) (Params, error) {
	var p Params
	var err error
	switch v := src.(type) {
	case []byte:
		err = json.Unmarshal(v, &p)
	case string:
		err = json.Unmarshal([]byte(v), &p)
	default:
		var b []byte
		b, err = json.Marshal(v)
		if err == nil {
			err = json.Unmarshal(b, &p)
		}
	}
	if err != nil {
		return Params{}, &errcode.E{C: errcode.InvalidParams, Op: "decode", Err: err}
	}
	return p, nil
}

func (p Params) resetOnInit() bool { return p.Reset == nil || *p.Reset }

// validate checks pins and modes and returns the pin → mode table.
func (p Params) validate() (map[uint8]ads7128.PinMode, error) {
	modes := make(map[uint8]ads7128.PinMode, len(p.Pins))
	analog := false
	for _, pp := range p.Pins {
		if pp.Pin >= ads7128.NumPins {
			return nil, invalid("pin " + strconv.Itoa(int(pp.Pin)) + " out of range")
		}
		if _, dup := modes[pp.Pin]; dup {
			return nil, invalid("duplicate pin " + strconv.Itoa(int(pp.Pin)))
		}
		m, ok := ads7128.ParsePinMode(pp.Mode)
		if !ok {
			return nil, invalid("pin " + strconv.Itoa(int(pp.Pin)) + ": unknown mode " + strconv.Quote(pp.Mode))
		}
		if pp.Initial && !m.IsOutput() {
			return nil, invalid("pin " + strconv.Itoa(int(pp.Pin)) + ": initial level on non-output")
		}
		if m == ads7128.ModeAnalogInput {
			analog = true
		}
		modes[pp.Pin] = m
	}
	if analog && p.OSR == nil {
		return nil, invalid("analog pins need osr")
	}
	return modes, nil
}

func invalid(msg string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: "params", Msg: msg}
}
