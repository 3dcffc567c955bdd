package pattern

import (
	"time"

	"github.com/clambin/ledanimator/pixel"
)

// RainbowCycle moves a full color gradient across the strip, wrapping once every
// 255 steps
type RainbowCycle struct {
	Base
}

var _ Pattern = &RainbowCycle{}

// NewRainbowCycle creates a RainbowCycle pattern
func NewRainbowCycle(canvas Canvas, interval time.Duration, direction Direction) (*RainbowCycle, error) {
	base, err := newBase(canvas, interval, pixel.Off, pixel.Off, 255, direction)
	if err != nil {
		return nil, err
	}
	return &RainbowCycle{Base: base}, nil
}

// Frame draws the gradient for the current step
func (p *RainbowCycle) Frame() {
	count := p.Canvas.Count()
	for i := 0; i < count; i++ {
		p.Canvas.SetPixel(i, pixel.Wheel(uint8((i*256/count+p.Index)&255)))
	}
}
