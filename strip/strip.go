// Package strip exposes a fixed-length WS2812 strip as a periph.io display
// so image-based animations can render onto it.
package strip

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/tinygo-org/ws2812spi"
)

// Dev is a fixed-length view of a WS2812 strip. It keeps the last frame so
// partial draws leave the untouched pixels alone.
type Dev struct {
	d  *ws2812spi.WS2812
	fb []color.RGBA
}

var _ display.Drawer = &Dev{}

// New returns a display over d with numPixels LEDs laid out as a numPixels
// wide, 1 pixel high image.
func New(d *ws2812spi.WS2812, numPixels int) *Dev {
	return &Dev{d: d, fb: make([]color.RGBA, numPixels)}
}

func (d *Dev) String() string {
	return fmt.Sprintf("ws2812{%d}", len(d.fb))
}

// Halt turns every LED off.
func (d *Dev) Halt() error {
	for i := range d.fb {
		d.fb[i] = color.RGBA{}
	}
	return d.d.WriteColors(d.fb)
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, len(d.fb), 1)
}

// Draw implements display.Drawer. The source pixels inside r are folded into
// the retained frame and the whole strip is rewritten.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	for x := 0; x < r.Dx(); x++ {
		c := color.RGBAModel.Convert(src.At(srcR.Min.X+x, srcR.Min.Y)).(color.RGBA)
		d.fb[r.Min.X+x] = c
	}
	return d.d.WriteColors(d.fb)
}
