package pattern_test

import (
	"testing"
	"time"

	"github.com/clambin/ledanimator/pattern"
	"github.com/clambin/ledanimator/pixel"
	"github.com/stretchr/testify/assert"
)

// testCanvas is an in-memory Canvas for pattern tests
type testCanvas struct {
	pixels []pixel.Color
}

var _ pattern.Canvas = &testCanvas{}

func newTestCanvas(count int) *testCanvas {
	return &testCanvas{pixels: make([]pixel.Color, count)}
}

func (c *testCanvas) Count() int {
	return len(c.pixels)
}

func (c *testCanvas) SetPixel(index int, color pixel.Color) {
	if index >= 0 && index < len(c.pixels) {
		c.pixels[index] = color
	}
}

func (c *testCanvas) Pixel(index int) pixel.Color {
	return c.pixels[index]
}

func (c *testCanvas) SetAll(color pixel.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

func TestBase_Advance(t *testing.T) {
	var completed int
	b := pattern.Base{TotalSteps: 4, Direction: pattern.Forward, OnComplete: func() { completed++ }}

	var visited []int
	for i := 0; i < 8; i++ {
		visited = append(visited, b.Index)
		b.Advance()
	}
	assert.Equal(t, []int{0, 1, 2, 3, 0, 1, 2, 3}, visited)
	assert.Equal(t, 2, completed)
	assert.Zero(t, b.Index)
}

func TestBase_Advance_Reverse(t *testing.T) {
	var completed int
	b := pattern.Base{TotalSteps: 4, Direction: pattern.Reverse, OnComplete: func() { completed++ }}

	b.Advance()
	assert.Equal(t, 3, b.Index)
	assert.Equal(t, 1, completed)

	var visited []int
	for i := 0; i < 3; i++ {
		visited = append(visited, b.Index)
		b.Advance()
	}
	assert.Equal(t, []int{3, 2, 1}, visited)
	assert.Equal(t, 3, b.Index)
	assert.Equal(t, 2, completed)
}

func TestBase_Advance_SingleStep(t *testing.T) {
	var completed int
	b := pattern.Base{TotalSteps: 1, Direction: pattern.Forward, OnComplete: func() { completed++ }}

	for i := 0; i < 5; i++ {
		b.Advance()
		assert.Zero(t, b.Index)
	}
	assert.Equal(t, 5, completed)
}

func TestBase_Reverse(t *testing.T) {
	b := pattern.Base{TotalSteps: 8, Direction: pattern.Forward}
	for i := 0; i < 3; i++ {
		b.Advance()
	}
	assert.Equal(t, 3, b.Index)

	b.Reverse()
	assert.Equal(t, pattern.Reverse, b.Direction)
	assert.Equal(t, 7, b.Index)

	b.Reverse()
	assert.Equal(t, pattern.Forward, b.Direction)
	assert.Zero(t, b.Index)
}

func TestBase_ShouldUpdate(t *testing.T) {
	b := pattern.Base{Interval: 50 * time.Millisecond, TotalSteps: 4, Direction: pattern.Forward}
	now := time.Now()

	assert.True(t, b.ShouldUpdate(now), "a pattern that never updated is always eligible")

	b.MarkUpdated(now)
	assert.False(t, b.ShouldUpdate(now))
	assert.False(t, b.ShouldUpdate(now.Add(50*time.Millisecond)), "elapsed time must exceed the interval")
	assert.True(t, b.ShouldUpdate(now.Add(51*time.Millisecond)))

	b.Reset()
	assert.True(t, b.ShouldUpdate(now))
	assert.Zero(t, b.Index)
}

func TestBase_ShouldUpdate_ZeroInterval(t *testing.T) {
	b := pattern.Base{TotalSteps: 4, Direction: pattern.Forward}
	now := time.Now()

	b.MarkUpdated(now)
	assert.False(t, b.ShouldUpdate(now))
	assert.True(t, b.ShouldUpdate(now.Add(time.Nanosecond)))
}

func TestConstructors_Invalid(t *testing.T) {
	canvas := newTestCanvas(8)
	red := pixel.RGB(255, 0, 0)

	_, err := pattern.NewFade(canvas, 0, red, pixel.Off, 0, pattern.Forward)
	assert.Error(t, err, "a fade needs at least one step")

	_, err = pattern.NewFade(nil, 0, red, pixel.Off, 16, pattern.Forward)
	assert.Error(t, err)

	_, err = pattern.NewColorWipe(canvas, 0, red, pattern.Direction(0))
	assert.Error(t, err)

	_, err = pattern.NewTheaterChase(newTestCanvas(0), 0, red, pixel.Off, pattern.Forward)
	assert.Error(t, err, "a zero-length strip can't run a pattern")
}
