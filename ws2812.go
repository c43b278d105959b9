package ws2812spi

import (
	"image/color"
	"iter"
	"slices"
)

// WS2812 drives a strip of WS2812/WS2812B LEDs, also known as NeoPixels,
// through a synchronous serial peripheral. The peripheral must run at 3MHz
// for the pulse timing to come out right.
type WS2812 struct {
	enc encoder
}

// NewWS2812 returns a driver for a WS2812 strip wired to bus.
func NewWS2812(bus Bus) *WS2812 {
	return &WS2812{enc: newEncoder(bus)}
}

// Write sends every color in pixels down the strip, first LED first, then
// latches the frame. The alpha channel is ignored. pixels is consumed
// lazily and exactly once, so frames need not be held in memory.
//
// On a bus error the remaining pixels are skipped and the error is returned;
// whatever made it onto the wire is still latched.
func (d *WS2812) Write(pixels iter.Seq[color.RGBA]) error {
	return d.write(pixels, mosiIdleHigh)
}

// WriteColors writes a frame held in memory. See Write.
func (d *WS2812) WriteColors(pixels []color.RGBA) error {
	return d.Write(slices.Values(pixels))
}

func (d *WS2812) write(pixels iter.Seq[color.RGBA], preReset bool) error {
	err := d.writePixels(pixels, preReset)
	if rerr := d.enc.reset(); err == nil {
		err = rerr
	}
	return err
}

func (d *WS2812) writePixels(pixels iter.Seq[color.RGBA], preReset bool) error {
	if preReset {
		// The data line idles high on some peripherals; a reset up front
		// pulls it low so the first symbol edge is well defined.
		if err := d.enc.reset(); err != nil {
			return err
		}
	}
	for c := range pixels {
		// WS2812 consumes channels in GRB order.
		if err := d.enc.writeByte(c.G); err != nil {
			return err
		}
		if err := d.enc.writeByte(c.R); err != nil {
			return err
		}
		if err := d.enc.writeByte(c.B); err != nil {
			return err
		}
	}
	return nil
}
