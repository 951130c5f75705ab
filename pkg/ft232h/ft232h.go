// Package ft232h connects an ADS8688 through an FTDI FT232H USB bridge,
// using MPSSE for SPI and a GPIO pin of the C bus for chip-select.
package ft232h

import (
	"fmt"

	"github.com/yunginnanet/ft232h"
)

// FT232H represents an FT232H device.
// It implements ads8688.SerialInterface once a chip-select pin is set.
type FT232H struct {
	*ft232h.FT232H
	csPin  ft232h.CPin
	csSet  bool
	closed bool
}

// Info returns a snapshot of the device information for the FT232H device. Read-only.
func (ft *FT232H) Info() DeviceInfo {
	vid, pid := ft.vidPid()
	return DeviceInfo{
		Index:       ft.Index(),
		Serial:      ft.Serial(),
		Description: ft.Desc(),
		ProductID:   pid,
		VendorID:    vid,
		IsOpen:      ft.IsOpen(),
		IsHighSpeed: ft.IsHiSpeed(),
	}
}

// String returns a string representation of the FT232H device. It includes the vendor ID, product ID, and description.
func (ft *FT232H) String() string {
	info := ft.Info()
	return fmt.Sprintf("FT232H[%s:%s]: %s", info.VendorID, info.ProductID, info.Description)
}

// ConnectFT232h opens the first FT232H found, or the one matching choice.
func ConnectFT232h(choice ...Descriptor) (ft *FT232H, err error) {
	ft = &FT232H{}

	switch len(choice) {
	case 0:
		ft.FT232H, err = ft232h.New()
	case 1:
		ft.FT232H, err = choice[0].open()
	default:
		return nil, fmt.Errorf("invalid number of arguments")
	}

	if err != nil {
		return nil, err
	}
	return ft, nil
}
