package ws2812spi

import "errors"

var (
	// ErrTxBusy is returned by Bus.TrySend when the peripheral cannot accept
	// a byte yet. The driver retries until the bus either takes the byte or
	// fails with a different error.
	ErrTxBusy = errors.New("ws2812spi:tx busy")

	errNoData = errors.New("ws2812spi:no rx data")
)

// Bus is the synchronous serial peripheral the driver shifts waveform bytes
// through. Implementations report ErrTxBusy from TrySend while their
// transmit side is full; any other error aborts the write in progress and is
// surfaced to the caller unchanged.
type Bus interface {
	// TrySend attempts to queue one byte for transmission without blocking.
	TrySend(b byte) error
}

// BusReceiver is implemented by buses that also clock bytes in. The driver
// uses it, when available, to pop the byte received during each transfer so
// stale receive state cannot stall full-duplex peripherals. Results of
// TryReceive are discarded.
type BusReceiver interface {
	Bus
	// TryReceive attempts to pop one received byte without blocking.
	TryReceive() (byte, error)
}
