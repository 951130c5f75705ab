package ads8688

// Mode is the operating phase of the device as tracked by the driver.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeReset
	ModeStandby
	ModePowerDown
	ModeProgram
	ModeManual
	ModeAuto
	ModeAutoReset
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeReset:
		return "RESET"
	case ModeStandby:
		return "STANDBY"
	case ModePowerDown:
		return "POWER_DN"
	case ModeProgram:
		return "PROG"
	case ModeManual:
		return "MANUAL"
	case ModeAuto:
		return "AUTO"
	case ModeAutoReset:
		return "AUTO_RST"
	default:
		return "(invalid mode)"
	}
}

// echoes reports whether a command issued in mode m clocks out a 16-bit
// conversion result after the opcode frame.
func (m Mode) echoes() bool {
	switch m {
	case ModeReset, ModeManual, ModeAuto, ModeAutoReset:
		return true
	default:
		return false
	}
}

// next returns the mode reached by issuing cmd while in mode m.
func (m Mode) next(cmd byte) Mode {
	switch cmd {
	case CMDNoOp:
		switch m {
		case ModeReset, ModeProgram:
			return ModeIdle
		case ModeAutoReset:
			return ModeAuto
		default:
			return m
		}
	case CMDStandby:
		return ModeStandby
	case CMDPowerDown:
		return ModePowerDown
	case CMDReset:
		return ModeReset
	case CMDAutoReset:
		return ModeAutoReset
	default:
		// manual channel select
		return ModeManual
	}
}
