// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termsink implements a display.Drawer that renders frames to the
// terminal (stdout) using ANSI color codes.
//
// Useful for previewing e-paper frames on a development machine without the
// panel attached.
package termsink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	Width  int
	Height int

	// Scale is the downsampling factor in pixels per character cell.
	// Defaults to 2 so a 296 pixel wide frame fits a regular terminal.
	Scale   int
	Palette *ansi256.Palette
}

// Dev is a frame preview that outputs to the console.
type Dev struct {
	w       io.Writer
	scale   int
	palette ansi256.Palette

	buffer *image.Gray
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 2
	}
	d := &Dev{
		w:       colorable.NewColorableStdout(),
		scale:   scale,
		palette: *p,
		buffer:  image.NewGray(image.Rect(0, 0, opts.Width, opts.Height)),
	}
	draw.Draw(d.buffer, d.buffer.Bounds(), image.White, image.Point{}, draw.Src)
	return d
}

func (d *Dev) String() string {
	return "TermSink"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.buffer.Bounds()
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.buffer, r.Intersect(d.Bounds()), src, sp, draw.Src)
	return d.refresh()
}

func (d *Dev) refresh() error {
	d.buf.Reset()
	b := d.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += d.scale {
		_, _ = d.buf.WriteString("\033[0m")
		for x := b.Min.X; x < b.Max.X; x += d.scale {
			_, _ = io.WriteString(&d.buf, d.palette.Block(color.NRGBAModel.Convert(d.buffer.At(x, y)).(color.NRGBA)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
