// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in9

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/rpi"

	"github.com/co2monitor/display/image2bit"
)

// Commands
const (
	driverOutputControl            byte = 0x01
	gateDrivingVoltageControl      byte = 0x03
	sourceDrivingVoltageControl    byte = 0x04
	deepSleepMode                  byte = 0x10
	dataEntryModeSetting           byte = 0x11
	swReset                        byte = 0x12
	masterActivation               byte = 0x20
	displayUpdateControl1          byte = 0x21
	displayUpdateControl2          byte = 0x22
	writeRAMBW                     byte = 0x24
	writeRAMRed                    byte = 0x26
	vcomRegisterWrite              byte = 0x2C
	writeLutRegister               byte = 0x32
	writeRegisterForDisplayOption  byte = 0x37
	borderWaveformControl          byte = 0x3C
	endOptionEOPT                  byte = 0x3F
	setRAMXAddressStartEndPosition byte = 0x44
	setRAMYAddressStartEndPosition byte = 0x45
	setRAMXAddressCounter          byte = 0x4E
	setRAMYAddressCounter          byte = 0x4F
)

// DefaultBusyTimeout bounds the busy-line polling loop. A full refresh
// completes in a few seconds; a busy line still asserted after this long
// means the panel is gone.
const DefaultBusyTimeout = 30 * time.Second

// Opts defines the structure of the display configuration.
type Opts struct {
	Width  int
	Height int

	FullUpdate    LUT
	Gray4Update   LUT
	PartialUpdate LUT

	// BusyTimeout overrides DefaultBusyTimeout when positive.
	BusyTimeout time.Duration
}

// EPD2in9 contains the display configuration for the Waveshare
// Pico-ePaper-2.9.
var EPD2in9 = Opts{
	Width:         296,
	Height:        128,
	FullUpdate:    fullUpdateLUT,
	Gray4Update:   gray4UpdateLUT,
	PartialUpdate: partialUpdateLUT,
}

// Dev is the handler used to access the display. It takes exclusive
// ownership of the bus connection and all control lines for the lifetime of
// the process.
type Dev struct {
	c conn.Conn

	dc    gpio.PinOut
	cs    gpio.PinOut
	rst   gpio.PinOut
	power gpio.PinOut
	busy  gpio.PinIO

	opts *Opts
}

// New creates a new handler which is used to access the display.
func New(p spi.Port, dc, cs, rst, power gpio.PinOut, busy gpio.PinIO, opts *Opts) (*Dev, error) {
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:     c,
		dc:    dc,
		cs:    cs,
		rst:   rst,
		power: power,
		busy:  busy,
		opts:  opts,
	}

	return d, nil
}

// NewHat creates a new handler using the default Waveshare hat wiring.
func NewHat(p spi.Port, opts *Opts) (*Dev, error) {
	dc := rpi.P1_22
	cs := rpi.P1_24
	rst := rpi.P1_11
	power := rpi.P1_37
	busy := rpi.P1_18
	return New(p, dc, cs, rst, power, busy, opts)
}

// InitBlackWhite powers the panel up, resets it, configures the black/white
// mode, programs the full-refresh waveform and clears the screen.
func (d *Dev) InitBlackWhite() error {
	eh := errorHandler{d: *d}

	eh.powerUp()
	eh.hwReset()
	eh.waitUntilIdle()

	initBlackWhite(&eh, d.opts)
	clearScreen(&eh, d.opts)

	return eh.err
}

// InitGray4 powers the panel up, resets it, configures the 4-level gray
// mode, programs the gray waveform and clears the screen.
func (d *Dev) InitGray4() error {
	eh := errorHandler{d: *d}

	eh.powerUp()
	eh.hwReset()
	eh.waitUntilIdle()

	initGray4(&eh, d.opts)
	clearScreen(&eh, d.opts)

	return eh.err
}

// Display writes a packed 1-bit frame to both controller caches and runs a
// full refresh. The frame must come from image2bit.Canvas.PackBlackWhite
// with matching geometry.
func (d *Dev) Display(data []byte) error {
	if err := d.checkFrame(len(data)); err != nil {
		return err
	}
	eh := errorHandler{d: *d}
	displayBlackWhite(&eh, data)
	return eh.err
}

// DisplayGray4 writes the two bit planes of a 4-gray frame and runs a full
// refresh. The panel must have been initialized with InitGray4.
func (d *Dev) DisplayGray4(planes *image2bit.BitPlanes) error {
	if err := d.checkFrame(len(planes.BW)); err != nil {
		return err
	}
	if len(planes.BW) != len(planes.Red) {
		return fmt.Errorf("epd2in9: plane sizes differ: %d vs %d bytes", len(planes.BW), len(planes.Red))
	}
	eh := errorHandler{d: *d}
	displayGray4(&eh, planes)
	return eh.err
}

// DisplayPartial reconfigures the panel for partial updates and writes a
// packed 1-bit frame with the light waveform: fast and without flashing,
// but ghosting accumulates until the next full refresh.
func (d *Dev) DisplayPartial(data []byte) error {
	if err := d.checkFrame(len(data)); err != nil {
		return err
	}
	eh := errorHandler{d: *d}

	eh.powerUp()
	eh.hwReset()
	eh.waitUntilIdle()

	initPartial(&eh, d.opts)
	displayPartial(&eh, data)

	return eh.err
}

// Clear sets every pixel to white with a full refresh.
func (d *Dev) Clear() error {
	eh := errorHandler{d: *d}
	clearScreen(&eh, d.opts)
	return eh.err
}

// Sleep puts the controller into deep sleep. The panel retains its image at
// near-zero power draw; leaving it active instead slowly damages the
// electrophoretic film. Wake it up with one of the Init calls.
func (d *Dev) Sleep() error {
	eh := errorHandler{d: *d}
	eh.sendCommand(deepSleepMode)
	eh.sendByte(0x01)
	return eh.err
}

// Bounds returns the logical drawing bounds of the panel.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.Width, d.opts.Height)
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("epd2in9.Dev{%s, %s, Width: %d, Height: %d}", d.c, d.dc, d.opts.Width, d.opts.Height)
}

func (d *Dev) checkFrame(n int) error {
	if want := d.opts.Width * d.opts.Height / 8; n != want {
		return fmt.Errorf("epd2in9: frame is %d bytes, want %d", n, want)
	}
	return nil
}
