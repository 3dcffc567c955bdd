package strip_test

import (
	"testing"
	"time"

	"github.com/clambin/ledanimator/device"
	"github.com/clambin/ledanimator/pattern"
	"github.com/clambin/ledanimator/pixel"
	"github.com/clambin/ledanimator/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Update(t *testing.T) {
	buffer, err := device.NewBuffer(8)
	require.NoError(t, err)
	c := strip.New(buffer)
	current := time.Now()
	c.Clock = func() time.Time { return current }

	// without an active pattern, Update is a no-op
	require.NoError(t, c.Update())
	assert.Zero(t, buffer.Renders())

	green := pixel.RGB(0, 255, 0)
	p, err := pattern.NewColorWipe(c, 50*time.Millisecond, green, pattern.Forward)
	require.NoError(t, err)
	var completed int
	p.OnComplete = func() { completed++ }

	c.Start(p)
	assert.True(t, c.IsActive())
	assert.True(t, c.IsActivePattern(p))

	// a freshly started pattern updates on the first tick
	require.NoError(t, c.Update())
	assert.Equal(t, 1, buffer.Renders())
	assert.Equal(t, green, buffer.Pixel(0))
	assert.Equal(t, 1, p.Index)

	// before the interval elapses, nothing happens
	require.NoError(t, c.Update())
	assert.Equal(t, 1, buffer.Renders())
	assert.Equal(t, 1, p.Index)

	// one applied update per elapsed interval fills the strip
	for i := 0; i < 7; i++ {
		current = current.Add(51 * time.Millisecond)
		require.NoError(t, c.Update())
	}
	assert.Equal(t, 8, buffer.Renders())
	for i := 0; i < 8; i++ {
		assert.Equal(t, green, buffer.Pixel(i), i)
	}
	assert.Equal(t, 1, completed)
}

func TestController_StartStop(t *testing.T) {
	buffer, err := device.NewBuffer(8)
	require.NoError(t, err)
	c := strip.New(buffer)

	red := pixel.RGB(255, 0, 0)
	p1, err := pattern.NewColorWipe(c, 0, red, pattern.Forward)
	require.NoError(t, err)
	p2, err := pattern.NewPulsar(c, 0, red, pixel.Off)
	require.NoError(t, err)

	assert.False(t, c.IsActive())

	c.Start(p1)
	assert.True(t, c.IsActivePattern(p1))
	assert.False(t, c.IsActivePattern(p2))

	// starting another pattern detaches the first
	c.Start(p2)
	assert.False(t, c.IsActivePattern(p1))
	assert.True(t, c.IsActivePattern(p2))

	// stopping switches the strip off
	c.SetAll(red)
	require.NoError(t, c.Stop())
	assert.False(t, c.IsActive())
	for i := 0; i < 8; i++ {
		assert.Equal(t, pixel.Off, buffer.Pixel(i), i)
	}
}

func TestController_SetAll(t *testing.T) {
	buffer, err := device.NewBuffer(8)
	require.NoError(t, err)
	c := strip.New(buffer)

	blue := pixel.RGB(0, 0, 255)
	c.SetAll(blue)
	assert.Equal(t, 1, buffer.Renders())
	for i := 0; i < 8; i++ {
		assert.Equal(t, blue, buffer.Pixel(i), i)
	}
}

func TestController_Start_KeepsBuffer(t *testing.T) {
	buffer, err := device.NewBuffer(8)
	require.NoError(t, err)
	c := strip.New(buffer)

	red := pixel.RGB(255, 0, 0)
	c.SetAll(red)

	p, err := pattern.NewScanner(c, 0, red, false)
	require.NoError(t, err)
	c.Start(p)

	// Start resets the pattern, not the pixel buffer
	assert.Equal(t, red, buffer.Pixel(0))
	assert.Zero(t, p.Index)
}
