package ads8688

// Convert16 interprets two bytes, MSB first, as an unsigned 16-bit value.
func Convert16(data []byte) uint16 {
	return uint16(data[0])<<8 | uint16(data[1])
}

// RawToVolts maps a conversion code onto the voltage span of r.
//
//	volts = raw * (max - min) / 65535 + min
func RawToVolts(raw uint16, r Range, vref float64) (float64, error) {
	lo, hi, err := r.Bounds(vref)
	if err != nil {
		return 0, err
	}
	return float64(raw)*(hi-lo)/FullScale + lo, nil
}

// VoltsToRaw is the inverse of [RawToVolts]. The result is not rounded or
// clamped, so voltages outside the span yield codes outside [0, 65535].
func VoltsToRaw(volts float64, r Range, vref float64) (float64, error) {
	lo, hi, err := r.Bounds(vref)
	if err != nil {
		return 0, err
	}
	return (volts - lo) * FullScale / (hi - lo), nil
}

// RawToVolts converts a conversion code using the reference voltage of adc.
func (adc *ADS8688) RawToVolts(raw uint16, r Range) (float64, error) {
	return RawToVolts(raw, r, adc.vref)
}

// VoltsToRaw converts a voltage to a conversion code using the reference voltage of adc.
func (adc *ADS8688) VoltsToRaw(volts float64, r Range) (float64, error) {
	return VoltsToRaw(volts, r, adc.vref)
}
