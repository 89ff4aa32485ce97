// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/co2monitor/display/image2bit"
)

// Splash draws the startup banner with a full refresh. The banner is
// rendered antialiased with a truetype face and thresholded to pure black
// and white before it reaches the canvas, so the panel palette stays at
// a single color.
func (s *Screen) Splash() error {
	w, h := s.opts.Width, s.opts.Height

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 28})

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(face)
	dc.DrawStringAnchored("CO2 Monitor", float64(w)/2, float64(h)/2, 0.5, 0.5)
	img := dc.Image()

	c := image2bit.New(w, h)
	c.Logger = s.opts.Logger
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				c.SetGray4(x, y, image2bit.Gray4{Y: 0x00})
			}
		}
	}

	if err := c.Quantize(); err != nil {
		return err
	}
	data, err := c.PackBlackWhite()
	if err != nil {
		return err
	}

	if err := s.d.Display(data); err != nil {
		return err
	}
	return s.d.Sleep()
}
