// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image2bit

import "fmt"

// BitPlanes is the dual-plane encoding of a 4-gray frame. The controller
// combines the two 1-bit planes into four physical voltage levels: BW goes
// to the black/white cache, Red to the red/gray cache.
type BitPlanes struct {
	BW  []byte
	Red []byte
}

// PackBlackWhite packs a quantized canvas into the 1-bit-per-pixel layout of
// the controller's black/white cache: 8 pixels per byte along each scan
// line, MSB first. A set bit means white, so Black and DarkGray (levels with
// an odd low bit) pack to 0 and everything else to 1.
//
// The returned buffer is width*height/8 bytes. Geometry that does not pack
// into whole bytes is a configuration error.
func (c *Canvas) PackBlackWhite() ([]byte, error) {
	if c.height%8 != 0 || c.width*c.height%8 != 0 {
		return nil, fmt.Errorf("image2bit: cannot pack %dx%d canvas 1bpp: scan lines must fill whole bytes", c.width, c.height)
	}
	data := make([]byte, 0, c.width*c.height/8)
	for line := 0; line < c.width; line++ {
		row := c.pix[line*c.height : (line+1)*c.height]
		for i := 0; i < len(row); i += 8 {
			var b byte
			for _, v := range row[i : i+8] {
				b <<= 1
				if v&1 == 0 {
					b |= 1
				}
			}
			data = append(data, b)
		}
	}
	if want := c.width * c.height / 8; len(data) != want {
		return nil, fmt.Errorf("image2bit: packed %d bytes, want %d", len(data), want)
	}
	return data, nil
}

// pack2bpp collapses a quantized canvas into a packed 2-bit-per-pixel byte
// stream, 4 pixels per byte, MSB first.
func (c *Canvas) pack2bpp() ([]byte, error) {
	if c.height%4 != 0 || c.width*c.height%4 != 0 {
		return nil, fmt.Errorf("image2bit: cannot pack %dx%d canvas 2bpp: scan lines must fill whole bytes", c.width, c.height)
	}
	data := make([]byte, 0, c.width*c.height/4)
	for line := 0; line < c.width; line++ {
		row := c.pix[line*c.height : (line+1)*c.height]
		for i := 0; i < len(row); i += 4 {
			data = append(data, (row[i]&0b11)<<6|(row[i+1]&0b11)<<4|(row[i+2]&0b11)<<2|row[i+3]&0b11)
		}
	}
	if want := c.width * c.height / 4; len(data) != want {
		return nil, fmt.Errorf("image2bit: packed %d bytes, want %d", len(data), want)
	}
	return data, nil
}

// PackGray4 packs a quantized canvas into the two 1-bit planes the
// controller's gray-level mode expects. The 2-bit stream is consumed two
// bytes at a time: the odd bit positions (7, 5, 3, 1) of both bytes form one
// plane byte (high nibble from the first byte, low nibble from the second)
// and the even positions (6, 4, 2, 0) form the other. This redistribution
// must match the controller's cache combination logic bit for bit.
//
// Each plane is width*height/8 bytes.
func (c *Canvas) PackGray4() (*BitPlanes, error) {
	packed, err := c.pack2bpp()
	if err != nil {
		return nil, err
	}
	if len(packed)%2 != 0 {
		return nil, fmt.Errorf("image2bit: cannot split %d packed bytes into planes", len(packed))
	}
	planes := &BitPlanes{
		BW:  make([]byte, 0, len(packed)/2),
		Red: make([]byte, 0, len(packed)/2),
	}
	for i := 0; i < len(packed); i += 2 {
		a, b := packed[i], packed[i+1]
		planes.BW = append(planes.BW, a&0x80|(a&0x20)<<1|(a&0x08)<<2|(a&0x02)<<3|
			(b&0x80)>>4|(b&0x20)>>3|(b&0x08)>>2|(b&0x02)>>1)
		planes.Red = append(planes.Red, (a&0x40)<<1|(a&0x10)<<2|(a&0x04)<<3|(a&0x01)<<4|
			(b&0x40)>>3|(b&0x10)>>2|(b&0x04)>>1|b&0x01)
	}
	return planes, nil
}
