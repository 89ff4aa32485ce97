// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image2bit

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sort"
)

var _ draw.Image = &Canvas{}

// Gray4 represents a 4-bit grayscale color (0-15 intensity levels). It is the
// drawing color of a Canvas; 4 bits leave enough headroom for color model
// conversions that a 2-bit value would truncate.
type Gray4 struct {
	Y uint8
}

// RGBA scales the 4-bit gray value (0-15) to 16-bit channels.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	// Standard luma weights on 16-bit channels, scaled down to 4 bits.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Gray4{Y: uint8(y >> 12)}
}

// Gray4Model converts colors to Gray4.
var Gray4Model = color.ModelFunc(toGray4)

// Level is one of the four gray levels the panel controller understands.
type Level byte

// The 2-bit level codes used by the panel waveform tables.
const (
	White     Level = 0b00
	DarkGray  Level = 0b01
	LightGray Level = 0b10
	Black     Level = 0b11
)

// String returns the name of the level.
func (l Level) String() string {
	switch l {
	case White:
		return "White"
	case DarkGray:
		return "DarkGray"
	case LightGray:
		return "LightGray"
	case Black:
		return "Black"
	}
	return fmt.Sprintf("Level(%d)", byte(l))
}

// Samples are stored biased into the upper range so that an undrawn cell
// (zero) is distinguishable from a cell drawn with gray value zero, and so
// that raw samples never collide with the 2-bit level codes after Quantize.
const (
	undrawn    = 0x00
	sampleBias = 0x10
)

// TooManyColorsError is returned by Quantize when more than four distinct
// gray samples were drawn into one frame. The frame should be discarded;
// truncating the palette would silently corrupt content.
type TooManyColorsError struct {
	Count   int
	Samples []uint8
}

func (e *TooManyColorsError) Error() string {
	return fmt.Sprintf("image2bit: only 2 bit gray supported, got %d colors: %v", e.Count, e.Samples)
}

// Canvas is a width x height raster of gray samples with a dynamically
// discovered palette of at most four distinct values. It implements
// draw.Image so graphics primitives and font drawers compose with it.
//
// A Canvas is built for a single frame: draw into it, call Quantize once,
// pack it, then discard it.
type Canvas struct {
	// Logger, when non-nil, receives warnings about out-of-bounds draws.
	Logger *log.Logger

	width  int
	height int
	// Samples indexed by mirrored x (see pixOffset), scan lines along y.
	pix     []uint8
	palette []uint8
}

// New returns an empty canvas with every cell undrawn.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return Gray4Model
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image. Undrawn and quantized cells report
// a representative gray for the stored level.
func (c *Canvas) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(c.Bounds())) {
		return Gray4{Y: 0x0F}
	}
	raw := c.pix[c.pixOffset(x, y)]
	if raw >= sampleBias {
		return Gray4{Y: raw - sampleBias}
	}
	return levelGray(Level(raw))
}

// levelGray maps a 2-bit level back to a displayable 4-bit gray.
func levelGray(l Level) Gray4 {
	switch l {
	case Black:
		return Gray4{Y: 0x00}
	case DarkGray:
		return Gray4{Y: 0x05}
	case LightGray:
		return Gray4{Y: 0x0A}
	}
	return Gray4{Y: 0x0F}
}

// The panel scans the x axis in the opposite direction to the logical
// drawing coordinates, so every write mirrors x.
func (c *Canvas) pixOffset(x, y int) int {
	return (c.width-1-x)*c.height + y
}

// Set implements draw.Image.
func (c *Canvas) Set(x, y int, clr color.Color) {
	c.SetGray4(x, y, Gray4Model.Convert(clr).(Gray4))
}

// SetGray4 records a gray sample at (x, y), registering the sample value in
// the palette if it has not been seen before. Out-of-bounds writes are
// reported through Logger and dropped.
func (c *Canvas) SetGray4(x, y int, g Gray4) {
	if !(image.Point{X: x, Y: y}.In(c.Bounds())) {
		if c.Logger != nil {
			c.Logger.Printf("image2bit: point (%d, %d) out of range, color %d dropped", x, y, g.Y)
		}
		return
	}
	sample := (g.Y & 0x0F) + sampleBias
	if !c.seen(sample) {
		c.palette = append(c.palette, sample)
	}
	c.pix[c.pixOffset(x, y)] = sample
}

func (c *Canvas) seen(sample uint8) bool {
	for _, p := range c.palette {
		if p == sample {
			return true
		}
	}
	return false
}

// Colors returns the number of distinct gray samples drawn so far.
func (c *Canvas) Colors() int {
	return len(c.palette)
}

// Quantize reduces the drawn samples to the panel's four level codes. The
// palette is sorted ascending; darker samples carry the smaller raw value,
// so index 0 is always the darkest drawn color. The rank to level mapping
// depends on the palette size and is dictated by the panel waveforms:
//
//	1 color:  Black
//	2 colors: Black, LightGray
//	3 colors: Black, LightGray, DarkGray
//	4 colors: Black, DarkGray, LightGray, White
//
// Every cell is rewritten from its raw sample to the matching level by exact
// value comparison; undrawn cells keep their zero value, which is the White
// code. Quantize fails with *TooManyColorsError when more than four samples
// were drawn, leaving the canvas untouched.
func (c *Canvas) Quantize() error {
	if len(c.palette) == 0 {
		return nil
	}
	sort.Slice(c.palette, func(i, j int) bool { return c.palette[i] < c.palette[j] })

	var black uint8
	lightGray := uint8(LightGray)
	darkGray := uint8(DarkGray)
	white := uint8(White)
	switch len(c.palette) {
	case 1:
		black = c.palette[0]
	case 2:
		black = c.palette[0]
		lightGray = c.palette[1]
		// Dark gray is skipped on purpose; two tones map to the extremes of
		// the lighter waveform.
	case 3:
		black = c.palette[0]
		lightGray = c.palette[1]
		darkGray = c.palette[2]
	case 4:
		black = c.palette[0]
		darkGray = c.palette[1]
		lightGray = c.palette[2]
		white = c.palette[3]
	default:
		return &TooManyColorsError{
			Count:   len(c.palette),
			Samples: append([]uint8(nil), c.palette...),
		}
	}

	for i, v := range c.pix {
		switch v {
		case black:
			c.pix[i] = uint8(Black)
		case lightGray:
			c.pix[i] = uint8(LightGray)
		case darkGray:
			c.pix[i] = uint8(DarkGray)
		case white:
			c.pix[i] = uint8(White)
		}
	}
	return nil
}
