package ads8688

import (
	"errors"
	"testing"
	"time"

	"github.com/l0nax/go-spew/spew"
)

var pprint = spew.ConfigState{
	Indent:                  "\t",
	MaxDepth:                0,
	DisableMethods:          false,
	DisablePointerMethods:   false,
	DisablePointerAddresses: false,
	DisableCapacities:       false,
	ContinueOnMethod:        true,
	SortKeys:                true,
	SpewKeys:                true,
	HighlightValues:         true,
	HighlightHex:            true,
}

var errBus = errors.New("bus fault")

// fakeSPI records every frame and chip-select edge, and replays queued
// responses. Exchanges without a queued response read back zeros.
type fakeSPI struct {
	selected  bool
	frames    [][]byte
	cs        []bool
	responses [][]byte

	// outside counts exchanges made while chip-select was high
	outside int

	// failAt makes the exchange with this index (0-based) fail; -1 disables.
	failAt int
	csErr  error
	closes int
}

func newFakeSPI() *fakeSPI {
	return &fakeSPI{failAt: -1}
}

func (f *fakeSPI) queue(rx ...[]byte) {
	f.responses = append(f.responses, rx...)
}

func (f *fakeSPI) Exchange(p []byte) ([]byte, error) {
	if !f.selected {
		f.outside++
	}
	idx := len(f.frames)
	f.frames = append(f.frames, append([]byte(nil), p...))
	if idx == f.failAt {
		return nil, errBus
	}
	in := make([]byte, len(p))
	if len(f.responses) > 0 {
		copy(in, f.responses[0])
		f.responses = f.responses[1:]
	}
	return in, nil
}

func (f *fakeSPI) SetCS(high bool) error {
	f.cs = append(f.cs, high)
	if f.csErr != nil {
		return f.csErr
	}
	f.selected = !high
	return nil
}

func (f *fakeSPI) Close() error {
	f.closes++
	return nil
}

func (f *fakeSPI) reset() {
	f.frames = nil
	f.cs = nil
	f.responses = nil
}

func (f *fakeSPI) dump(t *testing.T) {
	t.Helper()
	if t.Failed() {
		t.Log(pprint.Sdump(f.frames))
	}
}

// testADC returns a driver bound to a fake transport, with sleeps recorded
// instead of performed.
func testADC(t *testing.T) (*ADS8688, *fakeSPI, *[]time.Duration) {
	t.Helper()
	f := newFakeSPI()
	adc, err := NewADS8688(f, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slept := new([]time.Duration)
	adc.sleep = func(d time.Duration) {
		*slept = append(*slept, d)
	}
	t.Cleanup(func() { f.dump(t) })
	return adc, f, slept
}
