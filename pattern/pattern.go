// Package pattern implements time-sliced LED strip animations. Each pattern advances
// one step at a time, gated by a per-pattern interval, so the host program can drive
// it from a bare polling loop without ever blocking.
package pattern

import (
	"errors"
	"fmt"
	"time"

	"github.com/clambin/ledanimator/pixel"
)

// Direction of travel through a pattern's cycle
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

// Canvas is the surface a pattern draws on, i.e. the strip controller's pixel buffer.
// A pattern writes pixels through the Canvas; it never pushes the buffer to the
// hardware itself.
type Canvas interface {
	Count() int
	SetPixel(index int, color pixel.Color)
	Pixel(index int) pixel.Color
	SetAll(color pixel.Color)
}

// Pattern is one LED animation. Concrete patterns embed Base, which provides
// everything except Frame.
type Pattern interface {
	// Reset moves the pattern back to its starting position
	Reset()
	// ShouldUpdate reports whether the pattern's interval has elapsed
	ShouldUpdate(now time.Time) bool
	// Frame draws the pattern's current step on the canvas. It does not advance
	// the pattern, nor does it render the canvas.
	Frame()
	// MarkUpdated records the time the last frame was applied
	MarkUpdated(now time.Time)
	// Advance moves the pattern one step in its current direction
	Advance()
	// Reverse flips the pattern's direction
	Reverse()
}

var errNoCanvas = errors.New("no canvas provided")

// Base implements the stepping machinery shared by all patterns: the update interval,
// the cyclic step counter and the direction of travel.
type Base struct {
	Canvas     Canvas
	Interval   time.Duration
	Color1     pixel.Color
	Color2     pixel.Color
	TotalSteps int
	Index      int
	Direction  Direction
	// OnComplete, if set, is called every time the pattern completes a full cycle
	OnComplete func()
	lastUpdate time.Time
}

func newBase(canvas Canvas, interval time.Duration, color1, color2 pixel.Color, totalSteps int, direction Direction) (Base, error) {
	if canvas == nil {
		return Base{}, errNoCanvas
	}
	if totalSteps < 1 {
		return Base{}, fmt.Errorf("invalid number of steps: %d", totalSteps)
	}
	if direction != Forward && direction != Reverse {
		return Base{}, fmt.Errorf("invalid direction: %d", direction)
	}
	b := Base{
		Canvas:     canvas,
		Interval:   interval,
		Color1:     color1,
		Color2:     color2,
		TotalSteps: totalSteps,
		Direction:  direction,
	}
	b.Reset()
	return b, nil
}

// Reset moves the pattern back to its starting position
func (b *Base) Reset() {
	b.Index = 0
	b.lastUpdate = time.Time{}
}

// ShouldUpdate reports whether the pattern's interval has elapsed. An Interval of
// zero makes the pattern eligible on every tick.
func (b *Base) ShouldUpdate(now time.Time) bool {
	return now.Sub(b.lastUpdate) > b.Interval
}

// MarkUpdated records the time the last frame was applied
func (b *Base) MarkUpdated(now time.Time) {
	b.lastUpdate = now
}

// Advance moves the pattern one step in its current direction. When the step counter
// leaves the cycle at either end, it re-enters at the opposite boundary and the
// pattern's OnComplete hook fires. With TotalSteps of 1, every step completes a cycle.
func (b *Base) Advance() {
	b.Index += int(b.Direction)
	if b.Index >= b.TotalSteps {
		b.Index = 0
		b.complete()
	} else if b.Index <= 0 {
		b.Index = b.TotalSteps - 1
		b.complete()
	}
}

// Reverse flips the pattern's direction and repositions it at the start of the cycle
// for the new direction, so the pattern doesn't jump mid-cycle.
func (b *Base) Reverse() {
	b.Direction = -b.Direction
	if b.Direction == Forward {
		b.Index = 0
	} else {
		b.Index = b.TotalSteps - 1
	}
}

func (b *Base) complete() {
	if b.OnComplete != nil {
		b.OnComplete()
	}
}
