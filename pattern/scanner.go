package pattern

import (
	"time"

	"github.com/clambin/ledanimator/pixel"
)

// Scanner bounces a bright pixel from one end of the strip to the other, leaving a
// fading trail behind it. The trail is made by dimming the previous frame still in
// the buffer, so the pattern depends on the buffer persisting between frames.
type Scanner struct {
	Base
}

var _ Pattern = &Scanner{}

// NewScanner creates a Scanner pattern. With split set, the cycle covers the strip
// once instead of twice, making the highlight and its mirror image cross mid-strip.
func NewScanner(canvas Canvas, interval time.Duration, color pixel.Color, split bool) (*Scanner, error) {
	if canvas == nil {
		return nil, errNoCanvas
	}
	steps := canvas.Count() * 2
	if split {
		steps = canvas.Count()
	}
	base, err := newBase(canvas, interval, color, pixel.Off, steps, Forward)
	if err != nil {
		return nil, err
	}
	return &Scanner{Base: base}, nil
}

// Frame draws the highlight for the current step and dims the rest of the strip
func (p *Scanner) Frame() {
	for i := 0; i < p.Canvas.Count(); i++ {
		if i == p.Index || i == p.TotalSteps-p.Index {
			p.Canvas.SetPixel(i, p.Color1)
		} else {
			p.Canvas.SetPixel(i, p.Canvas.Pixel(i).Dim())
		}
	}
}
