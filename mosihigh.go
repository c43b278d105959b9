//go:build !ws2812_mosihigh

package ws2812spi

// mosiIdleHigh selects whether Write emits a full reset before the first
// pixel. Build with -tags=ws2812_mosihigh for peripherals whose data-out
// line idles high between transfers.
const mosiIdleHigh = false
