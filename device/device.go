// Package device abstracts the physical pixel buffer of an addressable LED strip.
package device

import (
	"fmt"
	"sync"

	"github.com/clambin/ledanimator/pixel"
)

// Device is the pixel buffer the strip controller draws on. Writes only change the
// buffer; Render pushes the buffer to the actual hardware.
type Device interface {
	Count() int
	SetPixel(index int, color pixel.Color)
	Pixel(index int) pixel.Color
	Render() error
	Clear()
}

// Buffer implements Device in memory. It backs the controller in unit tests and acts
// as the dry-run device when no hardware is attached. Unlike the controller itself,
// Buffer is safe for concurrent use, so tests can probe it while the animation runs.
type Buffer struct {
	pixels  []pixel.Color
	renders int
	lock    sync.RWMutex
}

var _ Device = &Buffer{}

// NewBuffer creates a Buffer for a strip of the given number of pixels
func NewBuffer(count int) (*Buffer, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid number of pixels: %d", count)
	}
	return &Buffer{pixels: make([]pixel.Color, count)}, nil
}

// Count returns the number of pixels in the buffer
func (b *Buffer) Count() int {
	return len(b.pixels)
}

// SetPixel writes color at the given index. Writes outside the strip are ignored.
func (b *Buffer) SetPixel(index int, color pixel.Color) {
	b.lock.Lock()
	defer b.lock.Unlock()
	if index >= 0 && index < len(b.pixels) {
		b.pixels[index] = color
	}
}

// Pixel returns the buffer contents at the given index
func (b *Buffer) Pixel(index int) pixel.Color {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if index < 0 || index >= len(b.pixels) {
		return pixel.Off
	}
	return b.pixels[index]
}

// Render records that the buffer was pushed out
func (b *Buffer) Render() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.renders++
	return nil
}

// Clear switches every pixel in the buffer off
func (b *Buffer) Clear() {
	b.lock.Lock()
	defer b.lock.Unlock()
	for i := range b.pixels {
		b.pixels[i] = pixel.Off
	}
}

// Renders returns the number of times the buffer was rendered
func (b *Buffer) Renders() int {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.renders
}
