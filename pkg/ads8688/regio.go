package ads8688

import (
	"errors"
	"fmt"
)

// Register is a 6-bit program register address.
type Register byte

// Access describes which operations a register supports.
type Access uint8

const (
	NoAccess Access = iota
	ReadOnly
	ReadWrite
)

// Access returns the documented access of r, or [NoAccess] for addresses
// the device does not implement.
func (r Register) Access() Access {
	switch {
	case r == RegAutoSeqEn, r == RegChPowerDown, r == RegFeatureSelect:
		return ReadWrite
	case r >= RegRangeCh0 && r <= RegRangeCh7:
		return ReadWrite
	case r >= RegAlarmOverview && r <= RegAlarmCh4Active:
		return ReadOnly
	case r >= RegCh0Hysteresis && r < RegCh0Hysteresis+alarmRegStride*NumChannels:
		return ReadWrite
	case r == RegCmdReadback:
		return ReadOnly
	default:
		return NoAccess
	}
}

func (r Register) String() string {
	return fmt.Sprintf("0x%02X", byte(r))
}

func (adc *ADS8688) LastReadRegister(reg Register) byte {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if reg > MaxRegister {
		return 0
	}
	return adc.regLR[reg]
}

func (adc *ADS8688) LastWrittenRegister(reg Register) byte {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if reg > MaxRegister {
		return 0
	}
	return adc.regLW[reg]
}

// Registers returns the last value read from every readable register.
func (adc *ADS8688) Registers() map[Register]byte {
	adc.mu.Lock()
	r := make(map[Register]byte)
	for reg, val := range adc.regLR {
		if Register(reg).Access() != NoAccess {
			r[Register(reg)] = val
		}
	}
	adc.mu.Unlock()
	return r
}

// WriteRegister writes value to reg and returns the byte the device clocks
// out on the trailing frame byte.
func (adc *ADS8688) WriteRegister(reg Register, value byte) (byte, error) {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return 0, ErrClosed
	}
	return adc.writeRegister(reg, value)
}

// ReadRegister reads reg.
func (adc *ADS8688) ReadRegister(reg Register) (byte, error) {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return 0, ErrClosed
	}
	return adc.readRegister(reg)
}

// writeRegister writes a single register [reg], with the given value.
func (adc *ADS8688) writeRegister(reg Register, value byte) (byte, error) {
	if reg.Access() != ReadWrite {
		return 0, fmt.Errorf("%w: %s is not writable", ErrInvalidRegister, reg)
	}
	b, err := adc.registerFrame(reg, writeBit, value)
	if err != nil {
		return 0, err
	}
	adc.regLW[reg] = value
	return b, nil
}

// readRegister reads a single register [reg].
func (adc *ADS8688) readRegister(reg Register) (byte, error) {
	if reg.Access() == NoAccess {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRegister, reg)
	}
	b, err := adc.registerFrame(reg, readBit, 0x00)
	if err != nil {
		return 0, err
	}
	adc.regLR[reg] = b
	return b, nil
}

// registerFrame exchanges [reg<<1 | rw, value, 0x00] and returns the third
// received byte.
func (adc *ADS8688) registerFrame(reg Register, rw byte, value byte) (byte, error) {
	if err := adc.setCSLow(); err != nil {
		return 0, err
	}

	out := get3Bytes()
	defer put3Bytes(out)

	out[0], out[1], out[2] = byte(reg)<<1|rw, value, 0x00
	in, err := adc.exchange(out)
	if err != nil {
		return 0, errors.Join(err, adc.setCSHigh())
	}
	result := in[2]

	if err = adc.setCSHigh(); err != nil {
		return 0, err
	}

	adc.setMode(ModeProgram)
	return result, nil
}

// ReadAllRegisters reads every implemented register, for debugging.
func (adc *ADS8688) ReadAllRegisters() (registers map[Register]byte, err error) {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return nil, ErrClosed
	}
	registers = make(map[Register]byte)
	for reg := Register(0); reg <= MaxRegister; reg++ {
		if reg.Access() == NoAccess {
			continue
		}
		val, err := adc.readRegister(reg)
		if err != nil {
			return nil, err
		}
		registers[reg] = val
	}
	return registers, nil
}
