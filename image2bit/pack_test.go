// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image2bit

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPackBlackWhiteUndrawn(t *testing.T) {
	c := New(16, 8)

	data, err := c.PackBlackWhite()
	if err != nil {
		t.Fatalf("PackBlackWhite() failed: %v", err)
	}

	// The all-white encoding matches the panel's clear pattern.
	if want := bytes.Repeat([]byte{0xFF}, 16); !bytes.Equal(data, want) {
		t.Errorf("PackBlackWhite() = %#v, want 16x 0xFF", data)
	}
}

func TestPackBlackWhiteAllBlack(t *testing.T) {
	c := New(8, 8)
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			c.SetGray4(x, y, Gray4{Y: 0x00})
		}
	}
	if err := c.Quantize(); err != nil {
		t.Fatalf("Quantize() failed: %v", err)
	}

	data, err := c.PackBlackWhite()
	if err != nil {
		t.Fatalf("PackBlackWhite() failed: %v", err)
	}

	if want := bytes.Repeat([]byte{0x00}, 8); !bytes.Equal(data, want) {
		t.Errorf("PackBlackWhite() = %#v, want 8x 0x00", data)
	}
}

func TestPackBlackWhiteMixed(t *testing.T) {
	// One scan line: Black, DarkGray, LightGray, White and four undrawn
	// cells. Black and DarkGray have an odd low bit and pack to 0.
	c := New(1, 8)
	c.SetGray4(0, 0, Gray4{Y: 0x00})
	c.SetGray4(0, 1, Gray4{Y: 0x05})
	c.SetGray4(0, 2, Gray4{Y: 0x0A})
	c.SetGray4(0, 3, Gray4{Y: 0x0F})
	if err := c.Quantize(); err != nil {
		t.Fatalf("Quantize() failed: %v", err)
	}

	data, err := c.PackBlackWhite()
	if err != nil {
		t.Fatalf("PackBlackWhite() failed: %v", err)
	}

	if want := []byte{0b00111111}; !bytes.Equal(data, want) {
		t.Errorf("PackBlackWhite() = %08b, want %08b", data, want)
	}
}

func TestPackBlackWhiteBadGeometry(t *testing.T) {
	c := New(4, 6)
	if _, err := c.PackBlackWhite(); err == nil {
		t.Errorf("PackBlackWhite() on a 4x6 canvas succeeded, want error")
	}
}

func TestPackGray4BadGeometry(t *testing.T) {
	c := New(4, 6)
	if _, err := c.PackGray4(); err == nil {
		t.Errorf("PackGray4() on a 4x6 canvas succeeded, want error")
	}
}

// reinterleave reverses the dual-plane transform: it reassembles the packed
// 2-bit stream from its odd-position and even-position bit planes.
func reinterleave(planes *BitPlanes) []byte {
	out := make([]byte, 0, len(planes.BW)*2)
	for i := range planes.BW {
		p, q := planes.BW[i], planes.Red[i]
		out = append(out,
			p&0x80|(q&0x80)>>1|(p&0x40)>>1|(q&0x40)>>2|
				(p&0x20)>>2|(q&0x20)>>3|(p&0x10)>>3|(q&0x10)>>4,
			(p&0x08)<<4|(q&0x08)<<3|(p&0x04)<<3|(q&0x04)<<2|
				(p&0x02)<<2|(q&0x02)<<1|(p&0x01)<<1|q&0x01)
	}
	return out
}

func TestPackGray4RoundTrip(t *testing.T) {
	c := New(2, 8)
	for y := 0; y < 8; y++ {
		c.SetGray4(0, y, Gray4{Y: uint8(y % 4 * 5)})
		c.SetGray4(1, y, Gray4{Y: uint8((y + 2) % 4 * 5)})
	}
	if err := c.Quantize(); err != nil {
		t.Fatalf("Quantize() failed: %v", err)
	}

	packed, err := c.pack2bpp()
	if err != nil {
		t.Fatalf("pack2bpp() failed: %v", err)
	}

	planes, err := c.PackGray4()
	if err != nil {
		t.Fatalf("PackGray4() failed: %v", err)
	}
	if len(planes.BW) != 2 || len(planes.Red) != 2 {
		t.Fatalf("plane sizes = %d/%d, want 2/2", len(planes.BW), len(planes.Red))
	}

	if diff := cmp.Diff(reinterleave(planes), packed); diff != "" {
		t.Errorf("plane round trip difference (-got +want):\n%s", diff)
	}
}

func TestPackGray4KnownPattern(t *testing.T) {
	// One scan line of White, DarkGray, LightGray, Black packs to
	// 0b00_01_10_11; the odd bits form 0b0011 and the even 0b0101.
	c := New(1, 8)
	c.SetGray4(0, 0, Gray4{Y: 0x0F})
	c.SetGray4(0, 1, Gray4{Y: 0x05})
	c.SetGray4(0, 2, Gray4{Y: 0x0A})
	c.SetGray4(0, 3, Gray4{Y: 0x00})
	c.SetGray4(0, 4, Gray4{Y: 0x0F})
	c.SetGray4(0, 5, Gray4{Y: 0x05})
	c.SetGray4(0, 6, Gray4{Y: 0x0A})
	c.SetGray4(0, 7, Gray4{Y: 0x00})
	if err := c.Quantize(); err != nil {
		t.Fatalf("Quantize() failed: %v", err)
	}

	planes, err := c.PackGray4()
	if err != nil {
		t.Fatalf("PackGray4() failed: %v", err)
	}

	if want := []byte{0b00110011}; !bytes.Equal(planes.BW, want) {
		t.Errorf("plane BW = %08b, want %08b", planes.BW, want)
	}
	if want := []byte{0b01010101}; !bytes.Equal(planes.Red, want) {
		t.Errorf("plane Red = %08b, want %08b", planes.Red, want)
	}
}
