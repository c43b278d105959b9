package ws2812spi

import (
	"errors"
	"runtime"
)

// resetBytes of zeroes hold the line low for 160 carrier bits, 53µs at a
// 3MHz clock, past the latch time of the supported strips.
const resetBytes = 20

// encoder turns channel bytes into the carrier-bit waveform and pushes it
// through the bus. rx is nil when the bus has no receive side.
type encoder struct {
	bus Bus
	rx  BusReceiver
}

func newEncoder(bus Bus) encoder {
	rx, _ := bus.(BusReceiver)
	return encoder{bus: bus, rx: rx}
}

// writeByte sends one channel byte as 24 carrier bits, 110 per one bit and
// 100 per zero bit, most significant color bit first.
func (e *encoder) writeByte(b byte) error {
	var wire uint32
	for i := 0; i < 8; i++ {
		if b&0x80 != 0 {
			wire = wire<<3 | 0b110
		} else {
			wire = wire<<3 | 0b100
		}
		b <<= 1
	}
	if err := e.send(byte(wire >> 16)); err != nil {
		return err
	}
	e.drain()
	if err := e.send(byte(wire >> 8)); err != nil {
		return err
	}
	e.drain()
	// No drain after the last byte; the gap to the next channel byte gives
	// the peripheral room. Keep the asymmetry, it is a timing workaround.
	return e.send(byte(wire))
}

// reset keeps the line low long enough for the strip to latch the frame.
// Aborts on the first send failure.
func (e *encoder) reset() error {
	for i := 0; i < resetBytes; i++ {
		if err := e.send(0); err != nil {
			return err
		}
		e.drain()
	}
	return nil
}

// send blocks until the bus accepts b, yielding the processor while the
// transmit side is busy. Any error other than ErrTxBusy is returned as is.
func (e *encoder) send(b byte) error {
	for {
		err := e.bus.TrySend(b)
		if !errors.Is(err, ErrTxBusy) {
			return err
		}
		gosched()
	}
}

// drain pops one stale byte off the receive side if the bus has one. Some
// full-duplex peripherals clock a byte in for every byte out and stall when
// it is never read. The result is deliberately discarded; a drain must never
// fail a write.
func (e *encoder) drain() {
	if e.rx != nil {
		e.rx.TryReceive()
	}
}

func gosched() {
	runtime.Gosched()
}
