package ads8688

import (
	"errors"
	"fmt"
)

func validCommand(cmd byte) bool {
	switch cmd {
	case CMDNoOp, CMDStandby, CMDPowerDown, CMDReset, CMDAutoReset,
		CMDManualCh0, CMDManualCh1, CMDManualCh2, CMDManualCh3,
		CMDManualCh4, CMDManualCh5, CMDManualCh6, CMDManualCh7, CMDManualAux:
		return true
	default:
		return false
	}
}

// SendCommand issues a raw command opcode and returns the 16-bit echo, if
// the current mode produces one.
func (adc *ADS8688) SendCommand(cmd byte) (uint16, error) {
	return adc.command(cmd)
}

func (adc *ADS8688) command(cmd byte) (uint16, error) {
	if !validCommand(cmd) {
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidCommand, cmd)
	}
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return 0, ErrClosed
	}
	return adc.sendCommand(cmd)
}

// commandAs issues cmd as if the device already were in mode m, so the
// frame always clocks the echo and never waits for power-down wake-up.
// The previous mode is kept if the transaction fails.
func (adc *ADS8688) commandAs(m Mode, cmd byte) (uint16, error) {
	if !validCommand(cmd) {
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidCommand, cmd)
	}
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return 0, ErrClosed
	}
	prev := adc.mode
	adc.mode = m
	result, err := adc.sendCommand(cmd)
	if err != nil {
		adc.mode = prev
		return 0, err
	}
	if prev != adc.mode {
		adc.log.Debug().Stringer("from", prev).Stringer("to", adc.mode).Msg("mode")
	}
	return result, nil
}

// sendCommand runs one command transaction. adc.mu must be held.
func (adc *ADS8688) sendCommand(cmd byte) (uint16, error) {
	prev := adc.mode

	if err := adc.setCSLow(); err != nil {
		return 0, err
	}

	frame := get2Bytes()
	defer put2Bytes(frame)

	frame[0], frame[1] = cmd, 0x00
	if _, err := adc.exchange(frame); err != nil {
		return 0, errors.Join(err, adc.setCSHigh())
	}

	var result uint16
	if prev.echoes() {
		frame[0], frame[1] = 0x00, 0x00
		in, err := adc.exchange(frame)
		if err != nil {
			return 0, errors.Join(err, adc.setCSHigh())
		}
		result = Convert16(in)
	}

	if err := adc.setCSHigh(); err != nil {
		return 0, err
	}

	// the device is not responsive until it has woken from power-down
	if prev == ModePowerDown {
		adc.sleep(PowerDownSettle)
	}

	if cmd == CMDReset {
		adc.clearCache()
	}
	adc.setMode(prev.next(cmd))
	return result, nil
}
