//go:build ws2812_mosihigh

package ws2812spi

const mosiIdleHigh = true
