package ads8688

import "time"

// Constants from the datasheet

// Command Opcodes
const (
	CMDNoOp      = 0x00 // continue operation in previous mode
	CMDStandby   = 0x82
	CMDPowerDown = 0x83
	CMDReset     = 0x85 // program registers reset to default
	CMDAutoReset = 0xA0 // auto mode enabled following a reset
	CMDManualCh0 = 0xC0
	CMDManualCh1 = 0xC4
	CMDManualCh2 = 0xC8
	CMDManualCh3 = 0xCC
	CMDManualCh4 = 0xD0
	CMDManualCh5 = 0xD4
	CMDManualCh6 = 0xD8
	CMDManualCh7 = 0xDC
	CMDManualAux = 0xE0
)

// Program Register Addresses
const (
	// RegAutoSeqEn selects the channels of the auto sequence, bit N = channel N. Default 0xFF.
	RegAutoSeqEn Register = 0x01
	// RegChPowerDown powers down channels, bit N = channel N. Default 0x00.
	RegChPowerDown Register = 0x02
	// RegFeatureSelect holds daisy chain ID (bits 7-6), alarm enable (bit 4) and SDO format (bits 2-0).
	RegFeatureSelect Register = 0x03

	RegRangeCh0 Register = 0x05
	RegRangeCh1 Register = 0x06
	RegRangeCh2 Register = 0x07
	RegRangeCh3 Register = 0x08
	RegRangeCh4 Register = 0x09
	RegRangeCh5 Register = 0x0A
	RegRangeCh6 Register = 0x0B
	RegRangeCh7 Register = 0x0C

	// Alarm flag registers (read-only)
	RegAlarmOverview   Register = 0x10
	RegAlarmCh0Tripped Register = 0x11 // channels 0-3
	RegAlarmCh0Active  Register = 0x12
	RegAlarmCh4Tripped Register = 0x13 // channels 4-7
	RegAlarmCh4Active  Register = 0x14

	// Alarm threshold registers for channel 0. Channel N is at Ch0 + 5N.
	RegCh0Hysteresis Register = 0x15
	RegCh0HighMSB    Register = 0x16
	RegCh0HighLSB    Register = 0x17
	RegCh0LowMSB     Register = 0x18
	RegCh0LowLSB     Register = 0x19

	// RegCmdReadback returns the last command issued (read-only).
	RegCmdReadback Register = 0x3F

	// MaxRegister is the highest 6-bit register address.
	MaxRegister Register = 0x3F

	alarmRegStride = 5
)

const (
	// NumChannels is the number of analog inputs, not counting AUX.
	NumChannels = 8

	// FullScale is the highest raw conversion code.
	FullScale = 0xFFFF

	// PowerDownSettle is the wake time of the device after leaving power-down.
	PowerDownSettle = 15 * time.Millisecond
)

// Feature select bits
const (
	FeatureIDMask    = 0xC0 // bits 7-6
	FeatureIDShift   = 6
	FeatureAlarmBit  = 0x10 // bit 4
	FeatureSDOMask   = 0x07 // bits 2-0
	featureValidBits = FeatureIDMask | FeatureAlarmBit | FeatureSDOMask
)

const (
	writeBit = 0x01
	readBit  = 0x00
)
