package ads8688

// AlarmOverview reads the alarm overview tripped flags, bit N = channel N.
func (adc *ADS8688) AlarmOverview() (byte, error) {
	return adc.ReadRegister(RegAlarmOverview)
}

// TrippedFlags returns the tripped flags of channels 0-3 in the high byte
// and channels 4-7 in the low byte.
func (adc *ADS8688) TrippedFlags() (uint16, error) {
	return adc.readPair(RegAlarmCh0Tripped, RegAlarmCh4Tripped)
}

// ActiveFlags returns the active flags of channels 0-3 in the high byte and
// channels 4-7 in the low byte.
func (adc *ADS8688) ActiveFlags() (uint16, error) {
	return adc.readPair(RegAlarmCh0Active, RegAlarmCh4Active)
}

// CommandReadback returns the opcode of the last command the device executed.
func (adc *ADS8688) CommandReadback() (byte, error) {
	return adc.ReadRegister(RegCmdReadback)
}

func alarmRegister(ch Channel, base Register) (Register, error) {
	if err := ch.checkAnalog(); err != nil {
		return 0, err
	}
	return base + Register(ch)*alarmRegStride, nil
}

func (adc *ADS8688) ChannelHysteresis(ch Channel) (byte, error) {
	reg, err := alarmRegister(ch, RegCh0Hysteresis)
	if err != nil {
		return 0, err
	}
	return adc.ReadRegister(reg)
}

func (adc *ADS8688) SetChannelHysteresis(ch Channel, val byte) error {
	reg, err := alarmRegister(ch, RegCh0Hysteresis)
	if err != nil {
		return err
	}
	_, err = adc.WriteRegister(reg, val)
	return err
}

func (adc *ADS8688) ChannelHighThreshold(ch Channel) (uint16, error) {
	reg, err := alarmRegister(ch, RegCh0HighMSB)
	if err != nil {
		return 0, err
	}
	return adc.readPair(reg, reg+1)
}

func (adc *ADS8688) SetChannelHighThreshold(ch Channel, val uint16) error {
	reg, err := alarmRegister(ch, RegCh0HighMSB)
	if err != nil {
		return err
	}
	return adc.writePair(reg, val)
}

func (adc *ADS8688) ChannelLowThreshold(ch Channel) (uint16, error) {
	reg, err := alarmRegister(ch, RegCh0LowMSB)
	if err != nil {
		return 0, err
	}
	return adc.readPair(reg, reg+1)
}

func (adc *ADS8688) SetChannelLowThreshold(ch Channel, val uint16) error {
	reg, err := alarmRegister(ch, RegCh0LowMSB)
	if err != nil {
		return err
	}
	return adc.writePair(reg, val)
}

// readPair reads msb then lsb and joins them.
func (adc *ADS8688) readPair(msb, lsb Register) (uint16, error) {
	hi, err := adc.ReadRegister(msb)
	if err != nil {
		return 0, err
	}
	lo, err := adc.ReadRegister(lsb)
	if err != nil {
		return 0, err
	}
	return Convert16([]byte{hi, lo}), nil
}

// writePair writes the high byte of val to reg and the low byte to reg+1.
func (adc *ADS8688) writePair(reg Register, val uint16) error {
	if _, err := adc.WriteRegister(reg, byte(val>>8)); err != nil {
		return err
	}
	_, err := adc.WriteRegister(reg+1, byte(val))
	return err
}
