package pattern

import (
	"fmt"
	"time"

	"github.com/clambin/ledanimator/pixel"
)

// Modes lists the supported pattern names
var Modes = []string{
	"rainbow",
	"chase",
	"wipe",
	"scanner",
	"pulsar",
	"fade",
}

// Config holds the parameters for a pattern created by New. Fields that a pattern
// doesn't use are ignored.
type Config struct {
	Interval time.Duration
	Color1   pixel.Color
	Color2   pixel.Color
	// Steps is the cycle length of a fade
	Steps int
	// Reverse runs the pattern backwards
	Reverse bool
	// Split makes a scanner cover the strip once per cycle instead of twice
	Split bool
}

// New creates the named pattern on the provided canvas
func New(mode string, canvas Canvas, cfg Config) (Pattern, error) {
	direction := Forward
	if cfg.Reverse {
		direction = Reverse
	}

	var p Pattern
	var err error
	switch mode {
	case "rainbow":
		p, err = NewRainbowCycle(canvas, cfg.Interval, direction)
	case "chase":
		p, err = NewTheaterChase(canvas, cfg.Interval, cfg.Color1, cfg.Color2, direction)
	case "wipe":
		p, err = NewColorWipe(canvas, cfg.Interval, cfg.Color1, direction)
	case "scanner":
		p, err = NewScanner(canvas, cfg.Interval, cfg.Color1, cfg.Split)
	case "pulsar":
		p, err = NewPulsar(canvas, cfg.Interval, cfg.Color1, cfg.Color2)
	case "fade":
		p, err = NewFade(canvas, cfg.Interval, cfg.Color1, cfg.Color2, cfg.Steps, direction)
	default:
		err = fmt.Errorf("invalid pattern: %s", mode)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
