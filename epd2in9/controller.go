// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in9

import "github.com/co2monitor/display/image2bit"

// controller abstracts the command/data link so the init and refresh
// sequences can be exercised against a recording fake in tests.
type controller interface {
	sendCommand(byte)
	sendData([]byte)
	sendByte(byte)
	waitUntilIdle()
}

// geometryBytes returns the little-endian (dimension-1) byte pair used in
// the window and driver output commands.
func geometryBytes(dimension int) (lo, hi byte) {
	return byte((dimension - 1) % 256), byte((dimension - 1) / 256)
}

func initBlackWhite(ctrl controller, opts *Opts) {
	ctrl.waitUntilIdle()
	ctrl.sendCommand(swReset)
	ctrl.waitUntilIdle()

	w1, w2 := geometryBytes(opts.Width)
	h1, h2 := geometryBytes(opts.Height)

	ctrl.sendCommand(driverOutputControl)
	ctrl.sendData([]byte{w1, w2, 0x00})

	ctrl.sendCommand(dataEntryModeSetting)
	ctrl.sendByte(0x03)

	ctrl.sendCommand(setRAMXAddressStartEndPosition)
	ctrl.sendData([]byte{h1, h2})

	ctrl.sendCommand(setRAMYAddressStartEndPosition)
	ctrl.sendData([]byte{0x00, 0x00, w1, w2})

	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{0x00, 0x80})

	ctrl.sendCommand(setRAMXAddressCounter)
	ctrl.sendByte(0x00)

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData([]byte{0x00, 0x00})

	ctrl.waitUntilIdle()

	loadLUT(ctrl, opts.FullUpdate)
}

func initGray4(ctrl controller, opts *Opts) {
	ctrl.waitUntilIdle()
	ctrl.sendCommand(swReset)
	ctrl.waitUntilIdle()

	w1, w2 := geometryBytes(opts.Width)

	ctrl.sendCommand(driverOutputControl)
	ctrl.sendData([]byte{w1, w2, 0x00})

	ctrl.sendCommand(dataEntryModeSetting)
	ctrl.sendByte(0x03)

	// The gray mode windows the x axis without the usual -1 and starts the
	// cursor at 1. Vendor quirk, do not correct.
	ctrl.sendCommand(setRAMXAddressStartEndPosition)
	ctrl.sendData([]byte{byte(opts.Height % 256), byte(opts.Height / 256)})

	ctrl.sendCommand(setRAMYAddressStartEndPosition)
	ctrl.sendData([]byte{0x00, 0x00, w1, w2})

	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(0x04)

	ctrl.sendCommand(setRAMXAddressCounter)
	ctrl.sendByte(0x01)

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData([]byte{0x00, 0x00})

	ctrl.waitUntilIdle()

	loadLUT(ctrl, opts.Gray4Update)
}

func initPartial(ctrl controller, opts *Opts) {
	loadLUT(ctrl, opts.PartialUpdate)

	// Undocumented display option block used in vendor example code.
	ctrl.sendCommand(writeRegisterForDisplayOption)
	ctrl.sendData([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00})

	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(0x80)

	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendByte(0xC0)

	ctrl.sendCommand(masterActivation)

	ctrl.waitUntilIdle()

	w1, w2 := geometryBytes(opts.Width)
	h1, h2 := geometryBytes(opts.Height)

	ctrl.sendCommand(setRAMXAddressStartEndPosition)
	ctrl.sendData([]byte{h1, h2})

	ctrl.sendCommand(setRAMYAddressStartEndPosition)
	ctrl.sendData([]byte{0x00, 0x00, w1, w2})

	ctrl.sendCommand(setRAMXAddressCounter)
	ctrl.sendByte(0x00)

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData([]byte{0x00, 0x00})

	ctrl.waitUntilIdle()
}

// loadLUT programs a 159-byte waveform table: the first 153 bytes through
// the LUT register, then the end option, gate voltage, the three source
// voltages and the common voltage one register each.
func loadLUT(ctrl controller, lut LUT) {
	ctrl.sendCommand(writeLutRegister)
	ctrl.sendData(lut[:153])
	ctrl.waitUntilIdle()

	ctrl.sendCommand(endOptionEOPT)
	ctrl.sendByte(lut[153])

	ctrl.sendCommand(gateDrivingVoltageControl)
	ctrl.sendByte(lut[154])

	ctrl.sendCommand(sourceDrivingVoltageControl)
	ctrl.sendData(lut[155:158])

	ctrl.sendCommand(vcomRegisterWrite)
	ctrl.sendByte(lut[158])
}

// refresh activates a full update cycle: the complete clearing waveform is
// replayed, which flashes visibly but removes accumulated ghosting.
func refresh(ctrl controller) {
	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendByte(0xC7)
	ctrl.sendCommand(masterActivation)
	ctrl.waitUntilIdle()
}

// refreshPartial activates an update cycle that skips the clearing
// waveform: fast and flicker free, but ghosting builds up over repeated
// partial refreshes.
func refreshPartial(ctrl controller) {
	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendByte(0x0F)
	ctrl.sendCommand(masterActivation)
	ctrl.waitUntilIdle()
}

// clearScreen fills both controller caches with the all-white pattern and
// runs a full refresh.
func clearScreen(ctrl controller, opts *Opts) {
	data := make([]byte, opts.Width*opts.Height/8)
	for i := range data {
		data[i] = 0xFF
	}
	ctrl.sendCommand(writeRAMBW)
	ctrl.sendData(data)
	ctrl.sendCommand(writeRAMRed)
	ctrl.sendData(data)
	refresh(ctrl)
}

// displayBlackWhite writes the frame to both caches so the controller's
// previous-frame cache matches and the next partial update starts without
// ghosting artifacts.
func displayBlackWhite(ctrl controller, data []byte) {
	ctrl.sendCommand(writeRAMBW)
	ctrl.sendData(data)
	ctrl.sendCommand(writeRAMRed)
	ctrl.sendData(data)
	refresh(ctrl)
}

func displayGray4(ctrl controller, planes *image2bit.BitPlanes) {
	ctrl.sendCommand(writeRAMBW)
	ctrl.sendData(planes.BW)
	ctrl.sendCommand(writeRAMRed)
	ctrl.sendData(planes.Red)
	refresh(ctrl)
}

func displayPartial(ctrl controller, data []byte) {
	ctrl.sendCommand(writeRAMBW)
	ctrl.sendData(data)
	refreshPartial(ctrl)
}
