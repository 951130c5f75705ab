package ads8688

import (
	"fmt"
	"io"
)

func (adc *ADS8688) setCSLow() error {
	return transportErr("chip select", adc.spi.SetCS(false))
}

func (adc *ADS8688) setCSHigh() error {
	return transportErr("chip select", adc.spi.SetCS(true))
}

// exchange runs one full-duplex transfer. The returned slice is owned by the
// transport and must not be retained past the next call.
func (adc *ADS8688) exchange(p []byte) ([]byte, error) {
	in, err := adc.spi.Exchange(p)
	if err != nil {
		return nil, transportErr("exchange", err)
	}
	if len(in) != len(p) {
		return nil, transportErr("exchange",
			fmt.Errorf("%w: sent %d bytes, received %d", io.ErrUnexpectedEOF, len(p), len(in)))
	}
	adc.log.Trace().Hex("tx", p).Hex("rx", in).Msg("exchange")
	return in, nil
}
