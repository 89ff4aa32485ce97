// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in9

import (
	"errors"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// ErrBusyTimeout is returned when the panel does not release the busy line
// within Opts.BusyTimeout. The device is considered unresponsive; retrying
// without a hardware reset is pointless.
var ErrBusyTimeout = errors.New("epd2in9: device not responding, busy line stuck")

const (
	// Settle time after driving the power enable line high.
	powerSettleTime = 100 * time.Millisecond
	// Poll interval for the busy line.
	busyPollInterval = 50 * time.Millisecond
)

// errorHandler is a wrapper for error management: the first failing pin or
// bus operation latches the error and turns the remaining calls of the
// sequence into no-ops.
type errorHandler struct {
	d   Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) powerOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.power.Out(l)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

func (eh *errorHandler) csOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.cs.Out(l)
}

func (eh *errorHandler) cTx(w []byte, r []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.c.Tx(w, r)
}

// sendCommand selects command mode and transmits a single opcode byte.
func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}

	eh.dcOut(gpio.Low)
	eh.csOut(gpio.Low)
	eh.cTx([]byte{cmd}, nil)
	eh.csOut(gpio.High)
}

// sendData selects data mode and transmits the payload in a single
// transfer. An empty payload performs no transfer at all.
func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil || len(data) == 0 {
		return
	}

	eh.dcOut(gpio.High)
	eh.csOut(gpio.Low)
	eh.cTx(data, nil)
	eh.csOut(gpio.High)
}

func (eh *errorHandler) sendByte(b byte) {
	eh.sendData([]byte{b})
}

// powerUp drives the power enable line high and lets the rails settle.
func (eh *errorHandler) powerUp() {
	eh.powerOut(gpio.High)
	time.Sleep(powerSettleTime)
}

// hwReset pulses the reset line. The panel is not addressable until the
// final settle period has passed.
func (eh *errorHandler) hwReset() {
	eh.rstOut(gpio.High)
	time.Sleep(10 * time.Millisecond)
	eh.rstOut(gpio.Low)
	time.Sleep(2 * time.Millisecond)
	eh.rstOut(gpio.High)
	time.Sleep(100 * time.Millisecond)
}

// waitUntilIdle polls the busy line until the panel releases it. Busy is
// level significant: high means an internal waveform is still running.
func (eh *errorHandler) waitUntilIdle() {
	if eh.err != nil {
		return
	}
	timeout := eh.d.opts.BusyTimeout
	if timeout <= 0 {
		timeout = DefaultBusyTimeout
	}
	deadline := time.Now().Add(timeout)
	for eh.d.busy.Read() == gpio.High {
		if time.Now().After(deadline) {
			eh.err = ErrBusyTimeout
			return
		}
		time.Sleep(busyPollInterval)
	}
}
