package pattern

import (
	"time"

	"github.com/clambin/ledanimator/pixel"
)

// ColorWipe fills the strip with Color1, one pixel per step. Pixels already filled
// are left untouched, so the wipe builds on whatever is in the buffer.
type ColorWipe struct {
	Base
}

var _ Pattern = &ColorWipe{}

// NewColorWipe creates a ColorWipe pattern
func NewColorWipe(canvas Canvas, interval time.Duration, color pixel.Color, direction Direction) (*ColorWipe, error) {
	if canvas == nil {
		return nil, errNoCanvas
	}
	base, err := newBase(canvas, interval, color, pixel.Off, canvas.Count(), direction)
	if err != nil {
		return nil, err
	}
	return &ColorWipe{Base: base}, nil
}

// Frame fills the pixel at the current step
func (p *ColorWipe) Frame() {
	p.Canvas.SetPixel(p.Index, p.Color1)
}
