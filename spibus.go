package ws2812spi

import "tinygo.org/x/drivers"

// SPIBus adapts a full-duplex SPI peripheral, such as machine.SPI on TinyGo
// targets or any other drivers.SPI implementation, to the Bus the strip
// drivers consume. The byte clocked in by each transfer is kept so the drain
// reads find it.
type SPIBus struct {
	spi   drivers.SPI
	rx    byte
	hasRx bool
}

var (
	_ Bus         = (*SPIBus)(nil)
	_ BusReceiver = (*SPIBus)(nil)
)

// NewSPIBus wraps spi. Configure the port beforehand: mode 0, 3MHz for
// WS2812 or 4MHz for SK6812-W.
func NewSPIBus(spi drivers.SPI) *SPIBus {
	return &SPIBus{spi: spi}
}

// TrySend shifts b out. Transfer blocks until the byte is on the wire, so
// TrySend never reports ErrTxBusy.
func (b *SPIBus) TrySend(c byte) error {
	rx, err := b.spi.Transfer(c)
	if err != nil {
		return err
	}
	b.rx, b.hasRx = rx, true
	return nil
}

// TryReceive pops the byte clocked in by the last transfer.
func (b *SPIBus) TryReceive() (byte, error) {
	if !b.hasRx {
		return 0, errNoData
	}
	b.hasRx = false
	return b.rx, nil
}
