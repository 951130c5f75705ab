//go:build linux

// Package spidev connects an ADS8688 through a Linux spidev bus, with the
// chip-select driven from a GPIO character device line.
package spidev

import (
	"errors"
	"fmt"
	"sync"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var (
	ErrNotConfigured = errors.New("spi port not configured")
	ErrNoChipSelect  = errors.New("chip select line not attached")
)

var hostInit = sync.OnceValue(func() error {
	_, err := host.Init()
	return err
})

// Config selects the bus, device and chip-select line.
type Config struct {
	Bus    int
	Device int

	// CSChip is the GPIO chip carrying the chip-select line, e.g. "gpiochip0".
	CSChip string
	CSLine int

	Clock physic.Frequency
}

// DefaultConfig provides default config. You can adjust as needed
func DefaultConfig() Config {
	return Config{
		Bus:    1,
		Device: 1,
		CSChip: "gpiochip0",
		CSLine: 10,
		Clock:  100 * physic.KiloHertz,
	}
}

// PortName returns the periph registry name of a spidev device.
func PortName(bus, device int) string {
	return fmt.Sprintf("/dev/spidev%d.%d", bus, device)
}

// Port is a spidev bus plus an optional GPIO chip-select line.
// It implements ads8688.SerialInterface.
type Port struct {
	mu   sync.Mutex
	name string
	port spi.PortCloser
	conn spi.Conn
	cs   *gpiocdev.Line
	rx   []byte
}

// Open claims the spidev device for bus and device.
func Open(bus, device int) (*Port, error) {
	if bus < 0 || device < 0 {
		return nil, fmt.Errorf("invalid spi bus %d device %d", bus, device)
	}
	if err := hostInit(); err != nil {
		return nil, fmt.Errorf("failed to initialize host drivers: %w", err)
	}
	name := PortName(bus, device)
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return &Port{name: name, port: p}, nil
}

// Configure sets the transfer parameters. It may only be called once per Port.
func (p *Port) Configure(mode spi.Mode, maxFreq physic.Frequency, bitsPerWord int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.port == nil {
		return fmt.Errorf("%s: port closed", p.name)
	}
	if p.conn != nil {
		return fmt.Errorf("%s: already configured", p.name)
	}
	c, err := p.port.Connect(maxFreq, mode, bitsPerWord)
	if err != nil {
		return fmt.Errorf("failed to configure %s: %w", p.name, err)
	}
	p.conn = c
	return nil
}

// AttachCS requests line on chip as the chip-select output, initially high.
func (p *Port) AttachCS(chip string, line int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cs != nil {
		return fmt.Errorf("chip select already attached at line %d", p.cs.Offset())
	}
	l, err := gpiocdev.RequestLine(chip, line,
		gpiocdev.AsOutput(1), gpiocdev.WithConsumer("ads8688-cs"))
	if err != nil {
		return fmt.Errorf("failed to request chip select %s:%d: %w", chip, line, err)
	}
	p.cs = l
	return nil
}

// Exchange runs one full-duplex transfer.
func (p *Port) Exchange(w []byte) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return nil, ErrNotConfigured
	}
	if cap(p.rx) < len(w) {
		p.rx = make([]byte, len(w))
	}
	r := p.rx[:len(w)]
	if err := p.conn.Tx(w, r); err != nil {
		return nil, err
	}
	return r, nil
}

// SetCS drives the chip-select line.
func (p *Port) SetCS(high bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cs == nil {
		return ErrNoChipSelect
	}
	return p.cs.SetValue(level(high))
}

func level(high bool) int {
	if high {
		return 1
	}
	return 0
}

// Close releases the chip-select line and the spidev device. Calling it
// more than once is not an error.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var err error
	if p.cs != nil {
		// leave the device deselected
		err = errors.Join(p.cs.SetValue(1), p.cs.Close())
		p.cs = nil
	}
	if p.port != nil {
		err = errors.Join(err, p.port.Close())
		p.port = nil
	}
	p.conn = nil
	return err
}

func (p *Port) String() string {
	return p.name
}

// Connect opens, configures and attaches chip-select in one call, using SPI
// mode 0 and 8 bits per word.
func Connect(cfg Config) (*Port, error) {
	p, err := Open(cfg.Bus, cfg.Device)
	if err != nil {
		return nil, err
	}
	if err = p.Configure(spi.Mode0, cfg.Clock, 8); err != nil {
		return nil, errors.Join(err, p.Close())
	}
	if err = p.AttachCS(cfg.CSChip, cfg.CSLine); err != nil {
		return nil, errors.Join(err, p.Close())
	}
	return p, nil
}
