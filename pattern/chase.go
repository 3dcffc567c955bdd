package pattern

import (
	"time"

	"github.com/clambin/ledanimator/pixel"
)

// TheaterChase lights every third pixel in Color1 and the rest in Color2, moving the
// marquee one pixel per step
type TheaterChase struct {
	Base
}

var _ Pattern = &TheaterChase{}

// NewTheaterChase creates a TheaterChase pattern
func NewTheaterChase(canvas Canvas, interval time.Duration, color1, color2 pixel.Color, direction Direction) (*TheaterChase, error) {
	if canvas == nil {
		return nil, errNoCanvas
	}
	base, err := newBase(canvas, interval, color1, color2, canvas.Count(), direction)
	if err != nil {
		return nil, err
	}
	return &TheaterChase{Base: base}, nil
}

// Frame draws the marquee for the current step
func (p *TheaterChase) Frame() {
	for i := 0; i < p.Canvas.Count(); i++ {
		color := p.Color2
		if (i+p.Index)%3 == 0 {
			color = p.Color1
		}
		p.Canvas.SetPixel(i, color)
	}
}
