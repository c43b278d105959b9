package ws2812spi

import (
	"image/color"
	"iter"
	"slices"
)

// RGBW is an ordered red, green, blue, white channel tuple for strips with a
// dedicated white LED.
type RGBW struct {
	R, G, B, W uint8
}

// RGBA implements color.Color. The white channel is not folded into the RGB
// values; it only exists on the wire.
func (c RGBW) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// RGBWModel converts any color.Color to RGBW with an empty white channel.
// Extracting white out of RGB is a power/color-temperature policy left to
// the caller.
var RGBWModel color.Model = color.ModelFunc(rgbwModel)

func rgbwModel(c color.Color) color.Color {
	if c, ok := c.(RGBW); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGBW{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// SK6812W drives a strip of SK6812-W (RGBW) LEDs through a synchronous
// serial peripheral. The peripheral must run at 4MHz for the pulse timing to
// come out right.
type SK6812W struct {
	enc encoder
}

// NewSK6812W returns a driver for an SK6812-W strip wired to bus.
func NewSK6812W(bus Bus) *SK6812W {
	return &SK6812W{enc: newEncoder(bus)}
}

// Write sends every color in pixels down the strip, first LED first, then
// latches the frame. pixels is consumed lazily and exactly once.
//
// On a bus error the remaining pixels are skipped and the error is returned;
// whatever made it onto the wire is still latched.
func (d *SK6812W) Write(pixels iter.Seq[RGBW]) error {
	return d.write(pixels, mosiIdleHigh)
}

// WriteColors writes a frame held in memory. See Write.
func (d *SK6812W) WriteColors(pixels []RGBW) error {
	return d.Write(slices.Values(pixels))
}

func (d *SK6812W) write(pixels iter.Seq[RGBW], preReset bool) error {
	err := d.writePixels(pixels, preReset)
	if rerr := d.enc.reset(); err == nil {
		err = rerr
	}
	return err
}

func (d *SK6812W) writePixels(pixels iter.Seq[RGBW], preReset bool) error {
	if preReset {
		if err := d.enc.reset(); err != nil {
			return err
		}
	}
	for c := range pixels {
		// SK6812-W consumes channels in GRBW order.
		if err := d.enc.writeByte(c.G); err != nil {
			return err
		}
		if err := d.enc.writeByte(c.R); err != nil {
			return err
		}
		if err := d.enc.writeByte(c.B); err != nil {
			return err
		}
		if err := d.enc.writeByte(c.W); err != nil {
			return err
		}
	}
	return nil
}
