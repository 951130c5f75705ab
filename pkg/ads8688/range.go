package ads8688

import "fmt"

// Range is an input range select code, as written to the RegRangeChN registers.
type Range byte

// Input ranges, as fractions of the reference voltage.
// The comments give the span for the internal 4.096V reference.
const (
	RangePM2p5     Range = 0x00 // ±2.5*Vref     ±10.24V (default)
	RangePM1p25    Range = 0x01 // ±1.25*Vref     ±5.12V
	RangePM0p625   Range = 0x02 // ±0.625*Vref    ±2.56V
	RangePM0p3125  Range = 0x03 // ±0.3125*Vref   ±1.28V
	RangePM0p15625 Range = 0x0B // ±0.15625*Vref  ±0.64V
	RangeP2p5      Range = 0x05 // 0..2.5*Vref    10.24V
	RangeP1p25     Range = 0x06 // 0..1.25*Vref    5.12V
	RangeP0p625    Range = 0x07 // 0..0.625*Vref   2.56V
	RangeP0p3125   Range = 0x0F // 0..0.3125*Vref  1.28V
)

// Ranges lists every input range the device accepts.
var Ranges = []Range{
	RangePM2p5, RangePM1p25, RangePM0p625, RangePM0p3125, RangePM0p15625,
	RangeP2p5, RangeP1p25, RangeP0p625, RangeP0p3125,
}

// factors returns the span of r as multiples of Vref.
func (r Range) factors() (lo, hi float64, ok bool) {
	switch r {
	case RangePM2p5:
		return -2.5, 2.5, true
	case RangePM1p25:
		return -1.25, 1.25, true
	case RangePM0p625:
		return -0.625, 0.625, true
	case RangePM0p3125:
		return -0.3125, 0.3125, true
	case RangePM0p15625:
		return -0.15625, 0.15625, true
	case RangeP2p5:
		return 0, 2.5, true
	case RangeP1p25:
		return 0, 1.25, true
	case RangeP0p625:
		return 0, 0.625, true
	case RangeP0p3125:
		return 0, 0.3125, true
	default:
		return 0, 0, false
	}
}

func (r Range) Valid() bool {
	_, _, ok := r.factors()
	return ok
}

func (r Range) Byte() byte {
	return byte(r)
}

// Bipolar reports whether the range spans negative voltages.
func (r Range) Bipolar() bool {
	lo, _, _ := r.factors()
	return lo < 0
}

// Bounds returns the voltage span of r for the given reference voltage.
func (r Range) Bounds(vref float64) (lo, hi float64, err error) {
	flo, fhi, ok := r.factors()
	if !ok {
		return 0, 0, fmt.Errorf("%w: 0x%02X", ErrInvalidRange, byte(r))
	}
	return flo * vref, fhi * vref, nil
}

func (r Range) String() string {
	switch r {
	case RangePM2p5:
		return "±2.5*Vref"
	case RangePM1p25:
		return "±1.25*Vref"
	case RangePM0p625:
		return "±0.625*Vref"
	case RangePM0p3125:
		return "±0.3125*Vref"
	case RangePM0p15625:
		return "±0.15625*Vref"
	case RangeP2p5:
		return "0..2.5*Vref"
	case RangeP1p25:
		return "0..1.25*Vref"
	case RangeP0p625:
		return "0..0.625*Vref"
	case RangeP0p3125:
		return "0..0.3125*Vref"
	default:
		return "(invalid range)"
	}
}

// ParseRange decodes a range register value. Bits 7-4 are ignored.
func ParseRange(b byte) (Range, error) {
	r := Range(b & 0x0F)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidRange, b)
	}
	return r, nil
}
