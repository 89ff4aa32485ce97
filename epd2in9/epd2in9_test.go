// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in9

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name       string
		opts       Opts
		wantString string
		wantBounds image.Rectangle
	}{
		{
			name:       "empty",
			wantString: "epd2in9.Dev{playback, (0), Width: 0, Height: 0}",
		},
		{
			name:       "EPD2in9",
			opts:       EPD2in9,
			wantBounds: image.Rect(0, 0, 296, 128),
			wantString: "epd2in9.Dev{playback, (0), Width: 296, Height: 128}",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dev, err := New(&spitest.Playback{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{
				EdgesChan: make(chan gpio.Level, 1),
			}, &tc.opts)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			if diff := cmp.Diff(dev.String(), tc.wantString); diff != "" {
				t.Errorf("String() difference (-got +want):\n%s", diff)
			}

			if diff := cmp.Diff(dev.Bounds(), tc.wantBounds); diff != "" {
				t.Errorf("Bounds() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestWaitUntilIdleTimeout(t *testing.T) {
	d := Dev{
		busy: &gpiotest.Pin{L: gpio.High},
		opts: &Opts{BusyTimeout: time.Millisecond},
	}
	eh := errorHandler{d: d}

	eh.waitUntilIdle()

	if !errors.Is(eh.err, ErrBusyTimeout) {
		t.Errorf("waitUntilIdle() error = %v, want ErrBusyTimeout", eh.err)
	}
}

func TestWaitUntilIdleReleased(t *testing.T) {
	d := Dev{
		busy: &gpiotest.Pin{L: gpio.Low},
		opts: &Opts{},
	}
	eh := errorHandler{d: d}

	eh.waitUntilIdle()

	if eh.err != nil {
		t.Errorf("waitUntilIdle() error = %v, want nil", eh.err)
	}
}

func TestSendDataEmpty(t *testing.T) {
	// An empty payload must not touch the bus or the control lines.
	eh := errorHandler{d: Dev{}}

	eh.sendData(nil)
	eh.sendData([]byte{})

	if eh.err != nil {
		t.Errorf("sendData() error = %v, want nil", eh.err)
	}
}

func TestErrorHandlerLatches(t *testing.T) {
	sentinel := errors.New("pin failure")
	eh := errorHandler{d: Dev{}, err: sentinel}

	// All pins are nil: any non-latched call would panic.
	eh.sendCommand(swReset)
	eh.sendData([]byte{0x01})
	eh.sendByte(0x02)
	eh.waitUntilIdle()

	if !errors.Is(eh.err, sentinel) {
		t.Errorf("error = %v, want the latched %v", eh.err, sentinel)
	}
}

func TestCheckFrame(t *testing.T) {
	d := Dev{opts: &EPD2in9}

	if err := d.checkFrame(296 * 128 / 8); err != nil {
		t.Errorf("checkFrame(4736) failed: %v", err)
	}
	if err := d.checkFrame(100); err == nil {
		t.Errorf("checkFrame(100) succeeded, want error")
	}
}
