// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epd2in9 controls the Waveshare Pico-ePaper-2.9 bistable display.
//
// The driver sequences power-up, hardware reset, waveform table
// programming, full and partial refresh cycles and deep sleep over
// a half-duplex SPI command/data link gated by the busy and reset lines.
// Frames are accepted in the packed formats produced by package image2bit.
//
// Datasheet:
//
// https://www.waveshare.net/w/upload/7/79/2.9inch-e-paper-v2-specification.pdf
//
// Product page:
//
// https://www.waveshare.net/wiki/Pico-ePaper-2.9
package epd2in9
