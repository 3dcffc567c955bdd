// Package ws281x renders the pixel buffer to a ws281x LED strip connected to a
// Raspberry Pi GPIO pin.
package ws281x

import (
	"fmt"

	"github.com/clambin/ledanimator/device"
	"github.com/clambin/ledanimator/pixel"
	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

// Config for a ws281x strip
type Config struct {
	GPIOPin    int
	Count      int
	Brightness int
}

// Device drives a ws281x strip
type Device struct {
	dev   *ws2811.WS2811
	count int
}

var _ device.Device = &Device{}

// New initializes the strip. Callers should call Close when done, so the strip is
// released cleanly.
func New(cfg Config) (*Device, error) {
	if cfg.Count < 1 {
		return nil, fmt.Errorf("invalid number of pixels: %d", cfg.Count)
	}

	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = cfg.GPIOPin
	opt.Channels[0].Brightness = cfg.Brightness
	opt.Channels[0].LedCount = cfg.Count

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("ws2811 setup failed: %w", err)
	}
	if err = dev.Init(); err != nil {
		return nil, fmt.Errorf("ws2811 init failed: %w", err)
	}
	return &Device{dev: dev, count: cfg.Count}, nil
}

// Count returns the number of pixels on the strip
func (d *Device) Count() int {
	return d.count
}

// SetPixel writes color at the given index. Writes outside the strip are ignored.
func (d *Device) SetPixel(index int, color pixel.Color) {
	leds := d.dev.Leds(0)
	if index >= 0 && index < len(leds) {
		leds[index] = uint32(color)
	}
}

// Pixel returns the buffer contents at the given index
func (d *Device) Pixel(index int) pixel.Color {
	leds := d.dev.Leds(0)
	if index < 0 || index >= len(leds) {
		return pixel.Off
	}
	return pixel.Color(leds[index])
}

// Render pushes the buffer to the strip
func (d *Device) Render() error {
	return d.dev.Render()
}

// Clear switches every pixel in the buffer off
func (d *Device) Clear() {
	leds := d.dev.Leds(0)
	for i := range leds {
		leds[i] = uint32(pixel.Off)
	}
}

// Close releases the strip
func (d *Device) Close() {
	d.dev.Fini()
}
