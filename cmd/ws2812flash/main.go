// ws2812flash animates a color wheel on a WS2812 strip wired to an SPI
// port. Without SPI hardware it renders to the terminal instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/tinygo-org/ws2812spi"
	"github.com/tinygo-org/ws2812spi/periphbus"
	"github.com/tinygo-org/ws2812spi/strip"
)

func mainImpl() error {
	port := flag.String("port", "", `SPI port to use, "" for the first available`)
	numPixels := flag.Int("n", 30, "number of LEDs on the strip")
	fps := flag.Int("fps", 30, "animation frame rate")
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *fps <= 0 || *numPixels <= 0 {
		return errors.New("-fps and -n must be positive")
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	var drawer display.Drawer
	if p, err := spireg.Open(*port); err != nil {
		log.Printf("no SPI port (%v); rendering to the terminal", err)
		drawer = screen.New(*numPixels)
	} else {
		defer p.Close()
		bus, err := periphbus.New(p, periphbus.WS2812Freq)
		if err != nil {
			return err
		}
		drawer = strip.New(ws2812spi.NewWS2812(bus), *numPixels)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	img := image.NewNRGBA(drawer.Bounds())
	n := img.Bounds().Dx()
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-sig:
			return drawer.Halt()
		case <-ticker.C:
			elapsed := time.Since(start).Seconds()
			for x := 0; x < n; x++ {
				h := math.Mod(elapsed/4+float64(x)/float64(n), 1)
				img.SetNRGBA(x, 0, colorWheel(h))
			}
			if err := drawer.Draw(drawer.Bounds(), img, image.Point{}); err != nil {
				return err
			}
		}
	}
}

func colorWheel(h float64) color.NRGBA {
	h *= 6
	switch {
	case h < 1.:
		return color.NRGBA{R: 255, G: byte(255 * h), A: 255}
	case h < 2.:
		return color.NRGBA{R: byte(255 * (2 - h)), G: 255, A: 255}
	case h < 3.:
		return color.NRGBA{G: 255, B: byte(255 * (h - 2)), A: 255}
	case h < 4.:
		return color.NRGBA{G: byte(255 * (4 - h)), B: 255, A: 255}
	case h < 5.:
		return color.NRGBA{R: byte(255 * (h - 4)), B: 255, A: 255}
	default:
		return color.NRGBA{R: 255, B: byte(255 * (6 - h)), A: 255}
	}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "ws2812flash: %s.\n", err)
		os.Exit(1)
	}
}
