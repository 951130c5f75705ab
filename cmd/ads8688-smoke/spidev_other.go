//go:build !linux

package main

import (
	"errors"

	"github.com/yunginnanet/ads8688/pkg/ads8688"
)

func openSPIDev(options) (ads8688.SerialInterface, error) {
	return nil, errors.New("spidev transport is only available on linux")
}
