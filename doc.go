// Package ws2812spi drives WS2812/WS2812B and SK6812-W addressable LED
// strips from a generic synchronous serial (SPI) peripheral instead of
// dedicated one-wire timing hardware.
//
// The strips expect every color bit as a pulse with a distinct duty cycle on
// a single data line. Most runtimes cannot bit-bang those pulse widths
// reliably, but an SPI shifter clocks bits out with no jitter. The driver
// therefore stretches each color bit to three wire bits, 110 for a one and
// 100 for a zero, so that at the right clock rate the duty cycles come out
// as the strip expects.
//
// Configure the SPI port with the clock idle low and data sampled on the
// first clock edge (mode 0), at 3MHz for WS2812 strips or 4MHz for SK6812-W
// strips. Only the data-out line is wired to the strip's DIN; clock and
// data-in are left unconnected.
//
// Datasheets
//
// https://github.com/cpldcpu/light_ws2812/tree/master/Datasheets
package ws2812spi
