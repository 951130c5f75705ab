package ads8688

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allModes = []Mode{
	ModeIdle, ModeReset, ModeStandby, ModePowerDown,
	ModeProgram, ModeManual, ModeAuto, ModeAutoReset,
}

var allCommands = []byte{
	CMDNoOp, CMDStandby, CMDPowerDown, CMDReset, CMDAutoReset,
	CMDManualCh0, CMDManualCh1, CMDManualCh2, CMDManualCh3,
	CMDManualCh4, CMDManualCh5, CMDManualCh6, CMDManualCh7, CMDManualAux,
}

func TestNoOpTransitions(t *testing.T) {
	want := map[Mode]Mode{
		ModeIdle:      ModeIdle,
		ModeReset:     ModeIdle,
		ModeStandby:   ModeStandby,
		ModePowerDown: ModePowerDown,
		ModeProgram:   ModeIdle,
		ModeManual:    ModeManual,
		ModeAuto:      ModeAuto,
		ModeAutoReset: ModeAuto,
	}
	for _, from := range allModes {
		t.Run(from.String(), func(t *testing.T) {
			adc, _, _ := testADC(t)
			adc.mode = from
			_, err := adc.NoOp()
			require.NoError(t, err)
			assert.Equal(t, want[from], adc.Mode())
		})
	}
}

func TestCommandTransitions(t *testing.T) {
	tests := []struct {
		name string
		do   func(adc *ADS8688) (uint16, error)
		want Mode
	}{
		{"Standby", (*ADS8688).Standby, ModeStandby},
		{"PowerDown", (*ADS8688).PowerDown, ModePowerDown},
		{"Reset", (*ADS8688).Reset, ModeReset},
		{"AutoReset", (*ADS8688).AutoReset, ModeAutoReset},
		{"Manual", func(adc *ADS8688) (uint16, error) { return adc.ManualChannel(CH_AIN3) }, ModeManual},
		{"ManualAux", func(adc *ADS8688) (uint16, error) { return adc.ManualChannel(CH_AUX) }, ModeManual},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range allModes {
				adc, _, _ := testADC(t)
				adc.mode = from
				_, err := tt.do(adc)
				require.NoError(t, err)
				assert.Equal(t, tt.want, adc.Mode(), "from %s", from)
			}
		})
	}
}

func TestInitialMode(t *testing.T) {
	adc, f, _ := testADC(t)
	assert.Equal(t, ModeIdle, adc.Mode())
	assert.Empty(t, f.frames, "construction must not touch the bus")
}

func TestCommandEcho(t *testing.T) {
	echoes := map[Mode]bool{
		ModeReset:     true,
		ModeManual:    true,
		ModeAuto:      true,
		ModeAutoReset: true,
	}
	for _, from := range allModes {
		t.Run(from.String(), func(t *testing.T) {
			adc, f, _ := testADC(t)
			adc.mode = from
			f.queue([]byte{0xAA, 0xBB}, []byte{0x12, 0x34})

			v, err := adc.NoOp()
			require.NoError(t, err)

			if echoes[from] {
				assert.Equal(t, uint16(0x1234), v)
				assert.Equal(t, [][]byte{{CMDNoOp, 0x00}, {0x00, 0x00}}, f.frames)
			} else {
				assert.Zero(t, v)
				assert.Equal(t, [][]byte{{CMDNoOp, 0x00}}, f.frames)
			}
			assert.Equal(t, []bool{false, true}, f.cs, "one chip-select window")
			assert.Zero(t, f.outside)
		})
	}
}

func TestPowerDownSettle(t *testing.T) {
	for _, cmd := range allCommands {
		adc, _, slept := testADC(t)
		adc.mode = ModePowerDown
		_, err := adc.SendCommand(cmd)
		require.NoError(t, err)
		assert.Equal(t, []int64{int64(PowerDownSettle)}, durations(*slept), "command 0x%02X", cmd)
	}

	t.Run("NotPoweredDown", func(t *testing.T) {
		for _, from := range allModes {
			if from == ModePowerDown {
				continue
			}
			adc, _, slept := testADC(t)
			adc.mode = from
			_, err := adc.NoOp()
			require.NoError(t, err)
			assert.Empty(t, *slept, "from %s", from)
		}
	})

	t.Run("AfterPowerDownCommand", func(t *testing.T) {
		adc, _, slept := testADC(t)
		_, err := adc.PowerDown()
		require.NoError(t, err)
		assert.Empty(t, *slept)
		_, err = adc.NoOp()
		require.NoError(t, err)
		assert.Len(t, *slept, 1)
		assert.Equal(t, ModePowerDown, adc.Mode())
		_, err = adc.SendCommand(CMDStandby)
		require.NoError(t, err)
		assert.Len(t, *slept, 2)
		assert.Equal(t, ModeStandby, adc.Mode())
		_, err = adc.NoOp()
		require.NoError(t, err)
		assert.Len(t, *slept, 2)
	})

	t.Run("HelpersSkipSettle", func(t *testing.T) {
		helpers := map[string]func(adc *ADS8688) (uint16, error){
			"Reset":     (*ADS8688).Reset,
			"AutoReset": (*ADS8688).AutoReset,
			"Manual":    func(adc *ADS8688) (uint16, error) { return adc.ManualChannel(CH_AIN2) },
		}
		for name, do := range helpers {
			adc, _, slept := testADC(t)
			_, err := adc.PowerDown()
			require.NoError(t, err)
			_, err = do(adc)
			require.NoError(t, err)
			assert.Empty(t, *slept, name)
		}
	})
}

func TestHelperEcho(t *testing.T) {
	tests := []struct {
		name string
		do   func(adc *ADS8688) (uint16, error)
		op   byte
	}{
		{"Reset", (*ADS8688).Reset, CMDReset},
		{"AutoReset", (*ADS8688).AutoReset, CMDAutoReset},
		{"Manual", func(adc *ADS8688) (uint16, error) { return adc.ManualChannel(CH_AIN0) }, CMDManualCh0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range allModes {
				adc, f, _ := testADC(t)
				adc.mode = from
				f.queue([]byte{0, 0}, []byte{0xAB, 0xCD})

				v, err := tt.do(adc)
				require.NoError(t, err)
				assert.Equal(t, uint16(0xABCD), v, "from %s", from)
				assert.Equal(t, [][]byte{{tt.op, 0x00}, {0x00, 0x00}}, f.frames, "from %s", from)
				assert.Equal(t, []bool{false, true}, f.cs)
			}
		})
	}

	t.Run("RawCommandKeyedOnMode", func(t *testing.T) {
		adc, f, _ := testADC(t)
		v, err := adc.SendCommand(CMDReset)
		require.NoError(t, err)
		assert.Zero(t, v)
		assert.Equal(t, [][]byte{{CMDReset, 0x00}}, f.frames)
		assert.Equal(t, ModeReset, adc.Mode())
	})

	t.Run("FailureKeepsMode", func(t *testing.T) {
		adc, f, _ := testADC(t)
		adc.mode = ModeProgram
		f.failAt = 1
		_, err := adc.ManualChannel(CH_AIN1)
		assert.ErrorIs(t, err, errBus)
		assert.Equal(t, ModeProgram, adc.Mode())
	})
}

func TestManualChannelOpcodes(t *testing.T) {
	want := []byte{
		CMDManualCh0, CMDManualCh1, CMDManualCh2, CMDManualCh3,
		CMDManualCh4, CMDManualCh5, CMDManualCh6, CMDManualCh7, CMDManualAux,
	}
	for i, op := range want {
		adc, f, _ := testADC(t)
		_, err := adc.ManualChannel(Channel(i))
		require.NoError(t, err)
		require.NotEmpty(t, f.frames)
		assert.Equal(t, op, f.frames[0][0], "channel %d", i)
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, ch := range []Channel{-1, 9, 42} {
			adc, f, _ := testADC(t)
			_, err := adc.ManualChannel(ch)
			assert.ErrorIs(t, err, ErrInvalidChannel)
			assert.Empty(t, f.frames)
			assert.Equal(t, ModeIdle, adc.Mode())
		}
	})
}

func TestCommandExchangeFailure(t *testing.T) {
	adc, f, _ := testADC(t)
	adc.mode = ModeManual
	f.failAt = 1 // the echo

	_, err := adc.NoOp()
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, errBus)
	assert.Equal(t, []bool{false, true}, f.cs, "chip select released after failure")
	assert.Equal(t, ModeManual, adc.Mode(), "mode unchanged after failure")
}

func TestChipSelectFailure(t *testing.T) {
	adc, f, _ := testADC(t)
	f.csErr = errBus
	_, err := adc.Reset()
	assert.ErrorIs(t, err, errBus)
	assert.Empty(t, f.frames)
	assert.Equal(t, ModeIdle, adc.Mode())
}

func TestInvalidCommand(t *testing.T) {
	adc, f, _ := testADC(t)
	_, err := adc.SendCommand(0x42)
	assert.ErrorIs(t, err, ErrInvalidCommand)
	assert.Empty(t, f.frames)
}

func TestClose(t *testing.T) {
	adc, f, _ := testADC(t)
	require.NoError(t, adc.Close())
	require.NoError(t, adc.Close())
	assert.Equal(t, 1, f.closes)

	_, err := adc.NoOp()
	assert.True(t, errors.Is(err, ErrClosed))
	_, err = adc.ReadRegister(RegAutoSeqEn)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, adc.SetGlobalRange(RangeP1p25), ErrClosed)
	assert.Empty(t, f.frames)
}

func TestNewADS8688(t *testing.T) {
	_, err := NewADS8688(nil, DefaultConfig())
	var te *TransportError
	assert.ErrorAs(t, err, &te)

	_, err = NewADS8688(newFakeSPI(), Config{Vref: 0})
	assert.ErrorIs(t, err, ErrInvalidVref)

	_, err = NewADS8688(newFakeSPI(), Config{Vref: -1})
	assert.ErrorIs(t, err, ErrInvalidVref)
}

func durations(ds []time.Duration) []int64 {
	out := make([]int64, len(ds))
	for i, d := range ds {
		out[i] = int64(d)
	}
	return out
}
