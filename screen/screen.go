// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen composes sensor readings into e-paper frames.
//
// Each frame gets a fresh image2bit canvas; the rendered text is quantized,
// packed and handed to the panel driver, alternating full and partial
// refreshes so that ghosting from the fast partial waveform is flushed
// periodically.
package screen

import (
	"fmt"
	"image"
	"log"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/scd4x"

	"github.com/co2monitor/display/image2bit"
)

// Driver is the subset of the epd2in9 device used by the screen.
type Driver interface {
	InitBlackWhite() error
	Display(data []byte) error
	DisplayPartial(data []byte) error
	Sleep() error
}

// DefaultFullRefreshEvery is the refresh cadence: every Nth frame replays
// the full clearing waveform, the others use the fast partial one.
const DefaultFullRefreshEvery = 50

// Opts configures a Screen.
type Opts struct {
	Width  int
	Height int

	// FullRefreshEvery overrides DefaultFullRefreshEvery when positive.
	FullRefreshEvery int

	// Logger, when non-nil, receives rendering warnings.
	Logger *log.Logger
}

// Screen renders measurement frames and drives the panel.
type Screen struct {
	d    Driver
	opts Opts

	frames int
}

// New returns a Screen drawing on d.
func New(d Driver, opts *Opts) *Screen {
	o := *opts
	if o.FullRefreshEvery <= 0 {
		o.FullRefreshEvery = DefaultFullRefreshEvery
	}
	return &Screen{d: d, opts: o}
}

// Render draws a measurement onto a fresh canvas and packs it into the
// 1-bit frame format. A *image2bit.TooManyColorsError means the frame must
// be dropped, not displayed.
func (s *Screen) Render(env *scd4x.Env) ([]byte, error) {
	c := image2bit.New(s.opts.Width, s.opts.Height)
	c.Logger = s.opts.Logger

	c.DrawText(fmt.Sprintf("Temp: %.1f C", env.Temperature.Celsius()), image.Pt(20, 50))
	c.DrawText(fmt.Sprintf("Hum: %.1f %%", relativeHumidity(env.Humidity)), image.Pt(160, 50))
	c.DrawText(fmt.Sprintf("CO2: %4d ppm", int(env.CO2)), image.Pt(20, 100))

	if err := c.Quantize(); err != nil {
		return nil, err
	}
	return c.PackBlackWhite()
}

// Update renders env and refreshes the panel, then puts it back to sleep.
// Rendering errors skip the refresh entirely so a bad frame never reaches
// the panel caches.
func (s *Screen) Update(env *scd4x.Env) error {
	data, err := s.Render(env)
	if err != nil {
		return err
	}

	s.frames++
	if s.frames%s.opts.FullRefreshEvery == 0 {
		// Re-init flushes ghosting accumulated by the partial waveform.
		if err := s.d.InitBlackWhite(); err != nil {
			return err
		}
		err = s.d.Display(data)
	} else {
		err = s.d.DisplayPartial(data)
	}
	if err != nil {
		return err
	}

	return s.d.Sleep()
}

func relativeHumidity(h physic.RelativeHumidity) float64 {
	return float64(h) / float64(physic.PercentRH)
}
