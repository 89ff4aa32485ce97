// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in9_test

import (
	"image"
	"log"

	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/co2monitor/display/epd2in9"
	"github.com/co2monitor/display/image2bit"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI bus registry to find the first available SPI bus.
	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := epd2in9.NewHat(b, &epd2in9.EPD2in9) // Display config and size
	if err != nil {
		log.Fatalf("Failed to initialize driver: %v", err)
	}

	if err := dev.InitBlackWhite(); err != nil {
		log.Fatalf("Failed to initialize display: %v", err)
	}

	// Draw on it. Black text on a white background.
	c := image2bit.New(dev.Bounds().Dx(), dev.Bounds().Dy())
	c.DrawText("Hello!", image.Pt(20, 50))
	if err := c.Quantize(); err != nil {
		log.Fatal(err)
	}
	frame, err := c.PackBlackWhite()
	if err != nil {
		log.Fatal(err)
	}

	if err := dev.Display(frame); err != nil {
		log.Fatal(err)
	}
	if err := dev.Sleep(); err != nil {
		log.Fatal(err)
	}
}
