// Package periphbus connects the strip drivers to SPI ports managed by
// periph.io hosts, such as the spidev ports of a Raspberry Pi.
package periphbus

import (
	"errors"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/tinygo-org/ws2812spi"
)

// Clock rates the supported LED protocols require of the SPI port.
const (
	WS2812Freq  = 3 * physic.MegaHertz
	SK6812WFreq = 4 * physic.MegaHertz
)

var errNoData = errors.New("periphbus:no rx data")

// Bus is a ws2812spi.Bus over a periph.io SPI connection.
type Bus struct {
	c     spi.Conn
	rx    byte
	hasRx bool
}

var _ ws2812spi.BusReceiver = (*Bus)(nil)

// New connects p at freq, mode 0 (clock idle low, data sampled on the first
// edge), 8 bits per word, and returns a bus ready for the strip drivers.
// Use WS2812Freq or SK6812WFreq depending on the strip.
func New(p spi.Port, freq physic.Frequency) (*Bus, error) {
	c, err := p.Connect(freq, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &Bus{c: c}, nil
}

// TrySend shifts one byte out. Tx blocks until the transfer completes, so
// TrySend never reports ws2812spi.ErrTxBusy.
func (b *Bus) TrySend(c byte) error {
	w := [1]byte{c}
	var r [1]byte
	if err := b.c.Tx(w[:], r[:]); err != nil {
		return err
	}
	b.rx, b.hasRx = r[0], true
	return nil
}

// TryReceive pops the byte clocked in by the last transfer.
func (b *Bus) TryReceive() (byte, error) {
	if !b.hasRx {
		return 0, errNoData
	}
	b.hasRx = false
	return b.rx, nil
}
