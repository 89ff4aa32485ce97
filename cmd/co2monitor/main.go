// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// co2monitor reads an SCD4x CO2 sensor and renders the measurements on
// a Waveshare Pico-ePaper-2.9 panel.
//
// With -dry-run the frames are rendered to the terminal instead, so the
// display pipeline can be exercised without any hardware attached.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/scd4x"
	"periph.io/x/host/v3"

	"github.com/co2monitor/display/epd2in9"
	"github.com/co2monitor/display/screen"
	"github.com/co2monitor/display/termsink"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "co2monitor: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	spiID := flag.String("spi", "", "SPI port to use, empty for the first available")
	i2cID := flag.String("i2c", "", "I2C bus to use, empty for the first available")
	dryRun := flag.Bool("dry-run", false, "render frames to the terminal instead of the panel")
	interval := flag.Duration("interval", 10*time.Second, "measurement interval")
	fullEvery := flag.Int("full-every", screen.DefaultFullRefreshEvery, "frames between two full refreshes")
	verbose := flag.Bool("v", false, "log rendering warnings")
	flag.Parse()

	logger := log.New(os.Stderr, "co2monitor: ", log.LstdFlags)
	var debug *log.Logger
	if *verbose {
		debug = logger
	}

	if *dryRun {
		return runPreview(debug, *fullEvery)
	}

	if _, err := host.Init(); err != nil {
		return err
	}

	port, err := spireg.Open(*spiID)
	if err != nil {
		return err
	}
	defer port.Close()

	dev, err := epd2in9.NewHat(port, &epd2in9.EPD2in9)
	if err != nil {
		return err
	}
	if err := dev.InitBlackWhite(); err != nil {
		return err
	}

	bus, err := i2creg.Open(*i2cID)
	if err != nil {
		return err
	}
	defer bus.Close()

	sensor, err := scd4x.NewI2C(bus, scd4x.SensorAddress)
	if err != nil {
		return err
	}
	defer sensor.Halt()

	scr := screen.New(dev, &screen.Opts{
		Width:            dev.Bounds().Dx(),
		Height:           dev.Bounds().Dy(),
		FullRefreshEvery: *fullEvery,
		Logger:           debug,
	})

	if err := scr.Splash(); err != nil {
		return err
	}

	var last scd4x.Env
	for {
		env := scd4x.Env{}
		if err := sensor.Sense(&env); err != nil {
			// No frame update this cycle.
			logger.Printf("sense: %v", err)
			time.Sleep(*interval)
			continue
		}
		if env == last {
			time.Sleep(*interval)
			continue
		}
		logger.Printf("co2: %s, temp: %s, hum: %s", env.CO2.String(), env.Temperature, env.Humidity)
		if err := scr.Update(&env); err != nil {
			logger.Printf("update: %v", err)
		} else {
			last = env
		}
		time.Sleep(*interval)
	}
}

// runPreview drives the screen against a terminal sink with synthetic
// readings.
func runPreview(debug *log.Logger, fullEvery int) error {
	opts := &epd2in9.EPD2in9
	sink := termsink.New(&termsink.Opts{Width: opts.Width, Height: opts.Height})
	defer sink.Halt()

	drv := &previewDriver{sink: sink, w: opts.Width, h: opts.Height}
	scr := screen.New(drv, &screen.Opts{
		Width:            opts.Width,
		Height:           opts.Height,
		FullRefreshEvery: fullEvery,
		Logger:           debug,
	})

	for i := 0; i < 5; i++ {
		env := scd4x.Env{CO2: scd4x.PPM(420 + 100*i)}
		env.Temperature = physic.ZeroCelsius + physic.Temperature(21.5*float64(physic.Celsius))
		env.Humidity = 45 * physic.PercentRH
		if err := scr.Update(&env); err != nil {
			return err
		}
		time.Sleep(time.Second)
	}
	return nil
}

// previewDriver adapts the terminal sink to the screen.Driver interface by
// decoding packed 1-bit frames back into an image.
type previewDriver struct {
	sink *termsink.Dev
	w, h int
}

func (p *previewDriver) InitBlackWhite() error {
	return nil
}

func (p *previewDriver) Display(data []byte) error {
	return p.sink.Draw(p.sink.Bounds(), unpackBlackWhite(data, p.w, p.h), image.Point{})
}

func (p *previewDriver) DisplayPartial(data []byte) error {
	return p.Display(data)
}

func (p *previewDriver) Sleep() error {
	return nil
}

// unpackBlackWhite reverses the 1bpp packing: scan lines run along y with
// the x axis mirrored, MSB first, a set bit meaning white.
func unpackBlackWhite(data []byte, w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	bytesPerLine := h / 8
	for line := 0; line < w; line++ {
		x := w - 1 - line
		for i := 0; i < bytesPerLine; i++ {
			b := data[line*bytesPerLine+i]
			for bit := 0; bit < 8; bit++ {
				if b&(0x80>>uint(bit)) != 0 {
					img.SetGray(x, i*8+bit, color.Gray{Y: 0xFF})
				}
			}
		}
	}
	return img
}
