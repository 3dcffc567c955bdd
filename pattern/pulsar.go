package pattern

import (
	"time"

	"github.com/clambin/ledanimator/pixel"
)

// Pulsar blinks the whole strip between Color1 and Color2
type Pulsar struct {
	Base
}

var _ Pattern = &Pulsar{}

// NewPulsar creates a Pulsar pattern
func NewPulsar(canvas Canvas, interval time.Duration, color1, color2 pixel.Color) (*Pulsar, error) {
	base, err := newBase(canvas, interval, color1, color2, 2, Forward)
	if err != nil {
		return nil, err
	}
	return &Pulsar{Base: base}, nil
}

// Frame sets the whole strip to the color for the current step
func (p *Pulsar) Frame() {
	color := p.Color1
	if p.Index != 0 {
		color = p.Color2
	}
	p.Canvas.SetAll(color)
}
