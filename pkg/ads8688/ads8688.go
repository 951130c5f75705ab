package ads8688

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SerialInterface is the bus the driver talks to the ADS8688 through.
// Implementations are expected to block until each call completes.
type SerialInterface interface {
	// Exchange clocks out p and returns the bytes clocked in at the same time.
	// The returned slice has the same length as p.
	Exchange(p []byte) ([]byte, error)

	// SetCS drives the chip-select line. The device is selected while low.
	SetCS(high bool) error

	// Close releases the bus. Calling it more than once is not an error.
	Close() error
}

// ADS8688 provides high-level control over a TI ADS8688 ADC.
//
// Every exported method runs as one or more chip-select framed transactions
// on the [SerialInterface]. Methods are serialized internally, but helpers
// that issue several transactions are not atomic as a whole.
type ADS8688 struct {
	mu  sync.Mutex      // one transaction on the bus at a time
	spi SerialInterface // nil once closed

	mode    Mode
	vref    float64
	feature byte

	// ranges last programmed per channel, used for scaling
	ranges [NumChannels]Range

	// Last read or written register states (for reference or debugging)
	regLR [MaxRegister + 1]byte // "Last Read"  register data
	regLW [MaxRegister + 1]byte // "Last Write" register data

	log   zerolog.Logger
	sleep func(time.Duration)
}

// Config represents user-level configuration parameters
type Config struct {
	// Vref is the reference voltage in volts, 4.096 for the internal reference.
	Vref float64

	// Logger receives frame traces and mode transitions. Zero value disables logging.
	Logger *zerolog.Logger
}

// DefaultConfig provides default config. You can adjust as needed
func DefaultConfig() Config {
	return Config{
		Vref: 4.096,
	}
}

// NewADS8688 constructs an ADS8688 bound to spi. The driver starts in
// [ModeIdle] and does not reset the device.
func NewADS8688(spi SerialInterface, cfg Config) (*ADS8688, error) {
	if spi == nil {
		return nil, &TransportError{Op: "open", Err: fmt.Errorf("nil serial interface")}
	}
	if !(cfg.Vref > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVref, cfg.Vref)
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("device", "ads8688").Logger()
	}
	adc := &ADS8688{
		spi:   spi,
		mode:  ModeIdle,
		vref:  cfg.Vref,
		log:   logger,
		sleep: time.Sleep,
	}
	adc.clearCache()
	return adc, nil
}

// Close releases the serial interface. Subsequent calls return nil; every
// other operation returns [ErrClosed].
func (adc *ADS8688) Close() error {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	if adc.spi == nil {
		return nil
	}
	err := adc.spi.Close()
	adc.spi = nil
	adc.log.Debug().Err(err).Msg("closed")
	return transportErr("close", err)
}

// Mode returns the operating mode the driver believes the device is in.
func (adc *ADS8688) Mode() Mode {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	return adc.mode
}

// Vref returns the configured reference voltage.
func (adc *ADS8688) Vref() float64 {
	return adc.vref
}

// Feature returns the feature select value last written or read.
func (adc *ADS8688) Feature() FeatureSelect {
	adc.mu.Lock()
	defer adc.mu.Unlock()
	return ParseFeatureSelect(adc.feature)
}

// clearCache restores the cached register state to power-on defaults.
func (adc *ADS8688) clearCache() {
	adc.feature = 0
	for i := range adc.ranges {
		adc.ranges[i] = RangePM2p5
	}
}

func (adc *ADS8688) setMode(m Mode) {
	if m != adc.mode {
		adc.log.Debug().Stringer("from", adc.mode).Stringer("to", m).Msg("mode")
	}
	adc.mode = m
}

// NoOp continues operation in the current mode. In manual and auto modes
// it returns the conversion result of the previous frame.
func (adc *ADS8688) NoOp() (uint16, error) {
	return adc.command(CMDNoOp)
}

// Standby puts the device into standby mode.
func (adc *ADS8688) Standby() (uint16, error) {
	return adc.command(CMDStandby)
}

// PowerDown powers the device down. Any command issued afterwards wakes it
// and incurs [PowerDownSettle].
func (adc *ADS8688) PowerDown() (uint16, error) {
	return adc.command(CMDPowerDown)
}

// Reset resets all program registers to their defaults and returns the
// 16-bit echo. It never waits for power-down wake-up; use
// [ADS8688.SendCommand] with [CMDReset] for that.
func (adc *ADS8688) Reset() (uint16, error) {
	return adc.commandAs(ModeReset, CMDReset)
}

// AutoReset (re)starts the auto sequence from its first enabled channel
// and returns the 16-bit echo.
func (adc *ADS8688) AutoReset() (uint16, error) {
	return adc.commandAs(ModeAutoReset, CMDAutoReset)
}

// ManualChannel selects ch (0-7, or [CH_AUX]) for manual conversion and
// returns the 16-bit echo, which holds the previous conversion.
func (adc *ADS8688) ManualChannel(ch Channel) (uint16, error) {
	op, err := ch.manualCommand()
	if err != nil {
		return 0, err
	}
	return adc.commandAs(ModeManual, op)
}
