// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image2bit provides the per-frame drawing canvas for 4-gray e-paper
// panels.
//
// Content is drawn with a general 4-bit gray color (Gray4) so that the same
// code composes with arbitrary graphics primitives and font drawers; the set
// of distinct tones actually used is discovered while drawing rather than
// fixed up front. Quantize then reduces the discovered palette, at most four
// entries, to the panel's 2-bit level codes, and the pack functions produce
// the byte layouts the controller caches expect: a single 1-bit plane for
// black/white content, or two interleaved 1-bit planes for 4-gray content.
//
// The canvas stores scan lines along the y axis with the x axis mirrored,
// matching the panel's physical scan direction.
package image2bit
