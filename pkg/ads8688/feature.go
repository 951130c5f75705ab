package ads8688

import "fmt"

// FeatureSelect is the decoded content of RegFeatureSelect.
type FeatureSelect struct {
	DaisyChainID uint8 // 0-3
	Alarm        bool
	SDO          uint8 // SDO data format, 0-7
}

func ParseFeatureSelect(b byte) FeatureSelect {
	return FeatureSelect{
		DaisyChainID: (b & FeatureIDMask) >> FeatureIDShift,
		Alarm:        b&FeatureAlarmBit != 0,
		SDO:          b & FeatureSDOMask,
	}
}

func (fs FeatureSelect) Byte() byte {
	b := (fs.DaisyChainID << FeatureIDShift) & FeatureIDMask
	if fs.Alarm {
		b |= FeatureAlarmBit
	}
	b |= fs.SDO & FeatureSDOMask
	return b
}

func (fs FeatureSelect) validate() error {
	if fs.DaisyChainID > 3 {
		return fmt.Errorf("%w: daisy chain id %d out of range 0-3", ErrInvalidFeature, fs.DaisyChainID)
	}
	if fs.SDO > 7 {
		return fmt.Errorf("%w: sdo format %d out of range 0-7", ErrInvalidFeature, fs.SDO)
	}
	return nil
}

// SetFeatureSelect writes fs to the device.
func (adc *ADS8688) SetFeatureSelect(fs FeatureSelect) error {
	if err := fs.validate(); err != nil {
		return err
	}
	adc.mu.Lock()
	defer adc.mu.Unlock()
	return adc.writeFeature(fs.Byte())
}

// ReadFeatureSelect reads the feature select register and caches it.
func (adc *ADS8688) ReadFeatureSelect() (FeatureSelect, error) {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return FeatureSelect{}, ErrClosed
	}
	b, err := adc.readRegister(RegFeatureSelect)
	if err != nil {
		return FeatureSelect{}, err
	}
	adc.feature = b & featureValidBits
	return ParseFeatureSelect(b), nil
}

// SetDeviceID changes the daisy chain ID, keeping the other feature bits.
func (adc *ADS8688) SetDeviceID(id uint8) error {
	if id > 3 {
		return fmt.Errorf("%w: daisy chain id %d out of range 0-3", ErrInvalidFeature, id)
	}
	adc.mu.Lock()
	defer adc.mu.Unlock()
	return adc.writeFeature(adc.feature&^FeatureIDMask | id<<FeatureIDShift)
}

// SetAlarm enables or disables the alarm feature, keeping the other feature bits.
func (adc *ADS8688) SetAlarm(enabled bool) error {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	b := adc.feature &^ FeatureAlarmBit
	if enabled {
		b |= FeatureAlarmBit
	}
	return adc.writeFeature(b)
}

// SetSDO changes the SDO data format, keeping the other feature bits.
func (adc *ADS8688) SetSDO(sdo uint8) error {
	if sdo > 7 {
		return fmt.Errorf("%w: sdo format %d out of range 0-7", ErrInvalidFeature, sdo)
	}
	adc.mu.Lock()
	defer adc.mu.Unlock()
	return adc.writeFeature(adc.feature&^FeatureSDOMask | sdo)
}

// writeFeature writes b and caches it on success. adc.mu must be held.
func (adc *ADS8688) writeFeature(b byte) error {
	if adc.spi == nil {
		return ErrClosed
	}
	if _, err := adc.writeRegister(RegFeatureSelect, b); err != nil {
		return err
	}
	adc.feature = b
	return nil
}
