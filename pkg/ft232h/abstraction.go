package ft232h

import (
	"errors"
	"fmt"

	"github.com/yunginnanet/ft232h"
)

// ErrClosed is returned by every operation on a closed [FT232H].
var ErrClosed = errors.New("FT232H closed")

// Configure sets the SPI clock in Hz with mode 0. Chip-select is driven
// separately through [FT232H.SetCSPin].
func (ft *FT232H) Configure(clock uint32) error {
	if ft.closed {
		return ErrClosed
	}
	cfg := ft.SPI.GetConfig()
	cfg.Clock = clock
	cfg.Mode = 0
	if err := ft.SPI.Config(cfg); err != nil {
		return fmt.Errorf("failed to configure SPI: %w", err)
	}
	return nil
}

// SetCSPin configures C bus pin as the chip-select output, initially high.
func (ft *FT232H) SetCSPin(pin uint) error {
	if ft.closed {
		return ErrClosed
	}
	cs := ft232h.CPin(pin)
	if err := ft.GPIO.ConfigPin(cs, ft232h.Output, true); err != nil {
		return fmt.Errorf("failed to configure CS pin %s: %w", cs, err)
	}
	ft.csPin = cs
	ft.csSet = true
	return nil
}

func (ft *FT232H) CSPin() ft232h.CPin {
	return ft.csPin
}

func (ft *FT232H) SetCS(high bool) error {
	if ft.closed {
		return ErrClosed
	}
	return ft.setCS(high)
}

func (ft *FT232H) setCS(high bool) error {
	if !ft.csSet {
		return fmt.Errorf("CS pin not set")
	}
	return ft.FT232H.GPIO.Set(ft.csPin, high)
}

// Exchange clocks p out on MOSI while clocking the same number of bytes in
// from MISO. Chip-select is left alone; it is driven through [FT232H.SetCS].
func (ft *FT232H) Exchange(p []byte) ([]byte, error) {
	if ft.closed {
		return nil, ErrClosed
	}
	in, err := ft.SPI.Swap(p, false, false)
	if err != nil {
		return nil, err
	}
	if len(in) != len(p) {
		return nil, fmt.Errorf("short exchange: %d of %d bytes", len(in), len(p))
	}
	return in, nil
}

// Close deselects the device and closes the SPI interface. Calling it more
// than once is not an error.
func (ft *FT232H) Close() error {
	if ft.closed {
		return nil
	}
	ft.closed = true
	var err error
	if ft.csSet {
		err = ft.setCS(true)
	}
	return errors.Join(err, ft.SPI.Close())
}
