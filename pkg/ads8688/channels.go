package ads8688

import (
	"errors"
	"fmt"
)

type Channel int

//goland:noinspection GoSnakeCaseUsage
const (
	CH_AIN0 Channel = iota
	CH_AIN1
	CH_AIN2
	CH_AIN3
	CH_AIN4
	CH_AIN5
	CH_AIN6
	CH_AIN7
	CH_AUX
)

func (c Channel) Byte() byte {
	return byte(c)
}

func (c Channel) String() string {
	switch c {
	case CH_AIN0:
		return "CH_AIN0"
	case CH_AIN1:
		return "CH_AIN1"
	case CH_AIN2:
		return "CH_AIN2"
	case CH_AIN3:
		return "CH_AIN3"
	case CH_AIN4:
		return "CH_AIN4"
	case CH_AIN5:
		return "CH_AIN5"
	case CH_AIN6:
		return "CH_AIN6"
	case CH_AIN7:
		return "CH_AIN7"
	case CH_AUX:
		return "CH_AUX"
	default:
		return "(invalid channel)"
	}
}

// analog reports whether c is one of the eight configurable inputs.
func (c Channel) analog() bool {
	return c >= CH_AIN0 && c <= CH_AIN7
}

func (c Channel) checkAnalog() error {
	if !c.analog() {
		return fmt.Errorf("%w: %d (want 0-7)", ErrInvalidChannel, int(c))
	}
	return nil
}

func (c Channel) manualCommand() (byte, error) {
	switch {
	case c.analog():
		return CMDManualCh0 + byte(c)<<2, nil
	case c == CH_AUX:
		return CMDManualAux, nil
	default:
		return 0, fmt.Errorf("%w: %d (want 0-8)", ErrInvalidChannel, int(c))
	}
}

func (c Channel) rangeRegister() (Register, error) {
	if err := c.checkAnalog(); err != nil {
		return 0, err
	}
	return RegRangeCh0 + Register(c), nil
}

// SetChannelRange programs the input range of ch.
func (adc *ADS8688) SetChannelRange(ch Channel, r Range) error {
	reg, err := ch.rangeRegister()
	if err != nil {
		return err
	}
	if !r.Valid() {
		return fmt.Errorf("%w: 0x%02X", ErrInvalidRange, byte(r))
	}

	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return ErrClosed
	}
	if _, err = adc.writeRegister(reg, r.Byte()); err != nil {
		return err
	}
	adc.ranges[ch] = r
	return nil
}

// ChannelRange reads the input range of ch back from the device.
func (adc *ADS8688) ChannelRange(ch Channel) (Range, error) {
	reg, err := ch.rangeRegister()
	if err != nil {
		return 0, err
	}

	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return 0, ErrClosed
	}
	b, err := adc.readRegister(reg)
	if err != nil {
		return 0, err
	}
	r, err := ParseRange(b)
	if err != nil {
		return 0, err
	}
	adc.ranges[ch] = r
	return r, nil
}

// ProgrammedRange returns the range last programmed into or read from ch,
// without bus traffic.
func (adc *ADS8688) ProgrammedRange(ch Channel) (Range, error) {
	if err := ch.checkAnalog(); err != nil {
		return 0, err
	}
	adc.mu.Lock()
	defer adc.mu.Unlock()
	return adc.ranges[ch], nil
}

// SetGlobalRange programs r on every channel in ascending order. It stops at
// the first failure, leaving the lower channels already programmed.
func (adc *ADS8688) SetGlobalRange(r Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: 0x%02X", ErrInvalidRange, byte(r))
	}
	for ch := CH_AIN0; ch <= CH_AIN7; ch++ {
		if err := adc.SetChannelRange(ch, r); err != nil {
			return fmt.Errorf("set range of %s: %w", ch, err)
		}
	}
	return nil
}

// SetChannelSequence selects the channels of the auto sequence, bit N = channel N.
func (adc *ADS8688) SetChannelSequence(mask byte) error {
	_, err := adc.WriteRegister(RegAutoSeqEn, mask)
	return err
}

// SetChannelPowerDown powers down channels, bit N = channel N.
func (adc *ADS8688) SetChannelPowerDown(mask byte) error {
	_, err := adc.WriteRegister(RegChPowerDown, mask)
	return err
}

func (adc *ADS8688) ChannelSequence() (byte, error) {
	return adc.ReadRegister(RegAutoSeqEn)
}

func (adc *ADS8688) ChannelPowerDown() (byte, error) {
	return adc.ReadRegister(RegChPowerDown)
}

// SetChannelSequenceAndPower enables mask in the auto sequence and powers
// down every other channel. The two register writes are separate
// transactions; on failure the caller may simply retry.
func (adc *ADS8688) SetChannelSequenceAndPower(mask byte) error {
	if err := adc.SetChannelSequence(mask); err != nil {
		return err
	}
	return adc.SetChannelPowerDown(^mask)
}

// ReadManual selects ch and clocks one frame. The echo of the select frame
// holds the previous conversion and is discarded; the following frame
// returns the code sampled on ch.
func (adc *ADS8688) ReadManual(ch Channel) (uint16, error) {
	if _, err := adc.ManualChannel(ch); err != nil {
		return 0, err
	}
	return adc.NoOp()
}

// ReadChannelVolts reads ch in manual mode and scales the code by the range
// programmed for it.
func (adc *ADS8688) ReadChannelVolts(ch Channel) (float64, error) {
	r, err := adc.ProgrammedRange(ch)
	if err != nil {
		return 0, err
	}
	raw, err := adc.ReadManual(ch)
	if err != nil {
		return 0, err
	}
	return adc.RawToVolts(raw, r)
}

// ReadAutoSequence clocks n frames in auto mode and returns the codes in
// the order the device produced them.
func (adc *ADS8688) ReadAutoSequence(n int) ([]uint16, error) {
	if n < 0 {
		return nil, errors.New("negative frame count")
	}
	codes := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		v, err := adc.NoOp()
		if err != nil {
			return codes, err
		}
		codes = append(codes, v)
	}
	return codes, nil
}
