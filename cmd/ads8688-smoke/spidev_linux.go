package main

import (
	"periph.io/x/conn/v3/physic"

	"github.com/yunginnanet/ads8688/pkg/ads8688"
	"github.com/yunginnanet/ads8688/pkg/spidev"
)

func openSPIDev(o options) (ads8688.SerialInterface, error) {
	cfg := spidev.DefaultConfig()
	cfg.Bus = o.bus
	cfg.Device = o.device
	cfg.CSChip = o.csChip
	cfg.CSLine = o.csLine
	cfg.Clock = physic.Frequency(o.clock) * physic.Hertz

	log.Debug().Interface("config", cfg).Msg("opening spidev")
	p, err := spidev.Connect(cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Stringer("port", p).Msg("connected to spidev")
	return p, nil
}
