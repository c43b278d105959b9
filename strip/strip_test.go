package strip_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinygo-org/ws2812spi"
	"github.com/tinygo-org/ws2812spi/strip"
)

type recordBus struct {
	sent []byte
}

func (b *recordBus) TrySend(c byte) error {
	b.sent = append(b.sent, c)
	return nil
}

// wireSymbol expands one channel byte into its 3 carrier bytes.
func wireSymbol(b byte) []byte {
	var bits uint32
	for i := 0; i < 8; i++ {
		if b&0x80 != 0 {
			bits = bits<<3 | 0b110
		} else {
			bits = bits<<3 | 0b100
		}
		b <<= 1
	}
	return []byte{byte(bits >> 16), byte(bits >> 8), byte(bits)}
}

func pixelGRB(r, g, b byte) []byte {
	out := append([]byte{}, wireSymbol(g)...)
	out = append(out, wireSymbol(r)...)
	return append(out, wireSymbol(b)...)
}

func TestDisplayGeometry(t *testing.T) {
	d := strip.New(ws2812spi.NewWS2812(&recordBus{}), 8)
	assert.Equal(t, image.Rect(0, 0, 8, 1), d.Bounds())
	assert.Equal(t, "ws2812{8}", d.String())
	assert.Equal(t, color.NRGBAModel, d.ColorModel())
}

func TestDrawWritesWholeStrip(t *testing.T) {
	bus := &recordBus{}
	d := strip.New(ws2812spi.NewWS2812(bus), 4)
	img := image.NewNRGBA(d.Bounds())
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: 0x10, A: 0xFF})
	}
	require.NoError(t, d.Draw(d.Bounds(), img, image.Point{}))
	assert.Len(t, bus.sent, 4*9+20)
	assert.Equal(t, pixelGRB(0x10, 0, 0), bus.sent[:9])
}

func TestPartialDrawKeepsRetainedPixels(t *testing.T) {
	bus := &recordBus{}
	d := strip.New(ws2812spi.NewWS2812(bus), 2)
	red := image.NewNRGBA(d.Bounds())
	for x := 0; x < 2; x++ {
		red.SetNRGBA(x, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	}
	require.NoError(t, d.Draw(d.Bounds(), red, image.Point{}))
	bus.sent = nil

	green := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	green.SetNRGBA(0, 0, color.NRGBA{G: 0xFF, A: 0xFF})
	require.NoError(t, d.Draw(image.Rect(1, 0, 2, 1), green, image.Point{}))

	// Pixel 0 keeps its red from the first frame, pixel 1 turns green.
	want := append(pixelGRB(0xFF, 0, 0), pixelGRB(0, 0xFF, 0)...)
	want = append(want, make([]byte, 20)...)
	assert.Equal(t, want, bus.sent)
}

func TestHaltClearsStrip(t *testing.T) {
	bus := &recordBus{}
	d := strip.New(ws2812spi.NewWS2812(bus), 3)
	require.NoError(t, d.Halt())
	want := append([]byte{}, pixelGRB(0, 0, 0)...)
	want = append(want, pixelGRB(0, 0, 0)...)
	want = append(want, pixelGRB(0, 0, 0)...)
	want = append(want, make([]byte, 20)...)
	assert.Equal(t, want, bus.sent)
}
