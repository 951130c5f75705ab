package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/yunginnanet/ads8688/pkg/ads8688"
	"github.com/yunginnanet/ads8688/pkg/ft232h"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

type options struct {
	transport string

	bus    int
	device int
	csChip string
	csLine int
	clock  uint32

	ftIndex int
	ftCS    uint

	vref    float64
	samples int
	period  time.Duration
	debug   bool
}

func flags() options {
	var o options
	flag.StringVarP(&o.transport, "transport", "t", "spidev", "transport: spidev or ft232h")
	flag.IntVar(&o.bus, "bus", 1, "spidev bus")
	flag.IntVar(&o.device, "device", 1, "spidev device")
	flag.StringVar(&o.csChip, "cs-chip", "gpiochip0", "GPIO chip of the chip select line (spidev)")
	flag.IntVar(&o.csLine, "cs", 10, "chip select GPIO line (spidev)")
	flag.Uint32Var(&o.clock, "clock", 100000, "SPI clock in Hz")
	flag.IntVar(&o.ftIndex, "ft232h", 0, "FT232H index")
	flag.UintVar(&o.ftCS, "ft232h-cs", 0, "FT232H C bus pin used as chip select")
	flag.Float64Var(&o.vref, "vref", 4.096, "reference voltage")
	flag.IntVarP(&o.samples, "samples", "n", 5, "readings per step")
	flag.DurationVar(&o.period, "period", 100*time.Millisecond, "delay between readings")
	flag.BoolVarP(&o.debug, "debug", "d", false, "trace every frame")
	flag.Parse()
	return o
}

func openTransport(o options) (ads8688.SerialInterface, error) {
	if o.transport == "ft232h" {
		ft, err := ft232h.ConnectFT232h(ft232h.ByIndex(o.ftIndex))
		if err != nil {
			return nil, err
		}
		log.Info().Str("info", ft.Info().String()).Msgf("connected to %s", ft)
		if err = ft.Configure(o.clock); err == nil {
			err = ft.SetCSPin(o.ftCS)
		}
		if err != nil {
			return nil, errors.Join(err, ft.Close())
		}
		return ft, nil
	}
	return openSPIDev(o)
}

func main() {
	o := flags()

	if o.debug {
		log = log.Level(zerolog.TraceLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	spi, err := openTransport(o)
	if err != nil {
		log.Fatal().Err(err).Str("transport", o.transport).Msg("failed to open transport")
	}

	cfg := ads8688.DefaultConfig()
	cfg.Vref = o.vref
	cfg.Logger = &log

	adc, err := ads8688.NewADS8688(spi, cfg)
	if err != nil {
		_ = spi.Close()
		log.Fatal().Err(err).Msg("failed to initialize ADS8688")
	}

	err = run(adc, o)
	if cerr := adc.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close ADS8688")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("smoke test failed")
	}
	log.Info().Msg("closed ADS8688")
}

const smokeRange = ads8688.RangeP1p25

func run(adc *ads8688.ADS8688, o options) error {
	if _, err := adc.Reset(); err != nil {
		return err
	}
	if err := adc.SetGlobalRange(smokeRange); err != nil {
		return err
	}

	for _, ch := range []ads8688.Channel{ads8688.CH_AIN0, ads8688.CH_AIN1} {
		stale, err := adc.ManualChannel(ch)
		if err != nil {
			return err
		}
		log.Debug().Stringer("channel", ch).Uint16("raw", stale).Msg("select echo")
		for i := 0; i < o.samples; i++ {
			time.Sleep(o.period)
			raw, err := adc.NoOp()
			if err != nil {
				return err
			}
			v, _ := adc.RawToVolts(raw, smokeRange)
			log.Info().Stringer("channel", ch).Uint16("raw", raw).Msgf("manual: %.4fV", v)
		}
	}

	for _, mask := range []byte{0b00000011, 0b11111111} {
		if err := adc.SetChannelSequenceAndPower(mask); err != nil {
			return err
		}
		if _, err := adc.AutoReset(); err != nil {
			return err
		}
		n := 0
		for b := mask; b != 0; b &= b - 1 {
			n++
		}
		for i := 0; i < o.samples; i++ {
			time.Sleep(o.period)
			codes, err := adc.ReadAutoSequence(n)
			if err != nil {
				return err
			}
			volts := make([]float64, len(codes))
			for j, raw := range codes {
				volts[j], _ = adc.RawToVolts(raw, smokeRange)
			}
			log.Info().Str("sequence", maskString(mask)).Floats64("volts", volts).Msg("auto")
		}
	}

	regs, err := adc.ReadAllRegisters()
	if err != nil {
		return err
	}
	log.Debug().Interface("values", regs).Msg("ADS8688 Registers")
	return nil
}

func maskString(mask byte) string {
	return fmt.Sprintf("0b%08b", mask)
}
