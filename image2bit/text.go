// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image2bit

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawText renders s in black with a fixed monospace bitmap font. The point
// is the bottom-left corner of the text, matching the panel layout
// convention used by the screen package.
func (c *Canvas) DrawText(s string, p image.Point) {
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(Gray4{Y: 0x00}),
		Face: f,
		Dot:  fixed.P(p.X, p.Y-f.Descent),
	}
	drawer.DrawString(s)
}
