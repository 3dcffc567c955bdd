package pattern

import (
	"time"

	"github.com/clambin/ledanimator/pixel"
)

// Fade cross-fades the whole strip from Color1 to Color2 over the configured number
// of steps
type Fade struct {
	Base
}

var _ Pattern = &Fade{}

// NewFade creates a Fade pattern. totalSteps must be 1 or higher.
func NewFade(canvas Canvas, interval time.Duration, color1, color2 pixel.Color, totalSteps int, direction Direction) (*Fade, error) {
	base, err := newBase(canvas, interval, color1, color2, totalSteps, direction)
	if err != nil {
		return nil, err
	}
	return &Fade{Base: base}, nil
}

// Frame sets the whole strip to the interpolated color for the current step.
// Multiplications happen before the division to minimize truncation error.
func (p *Fade) Frame() {
	red := (int(p.Color1.Red())*(p.TotalSteps-p.Index) + int(p.Color2.Red())*p.Index) / p.TotalSteps
	green := (int(p.Color1.Green())*(p.TotalSteps-p.Index) + int(p.Color2.Green())*p.Index) / p.TotalSteps
	blue := (int(p.Color1.Blue())*(p.TotalSteps-p.Index) + int(p.Color2.Blue())*p.Index) / p.TotalSteps
	p.Canvas.SetAll(pixel.RGB(uint8(red), uint8(green), uint8(blue)))
}
