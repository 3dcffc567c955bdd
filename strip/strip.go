// Package strip implements the LED strip controller: it owns the strip's pixel
// buffer and drives the active pattern, one non-blocking update per call.
package strip

import (
	"fmt"
	"time"

	"github.com/clambin/ledanimator/device"
	"github.com/clambin/ledanimator/pattern"
	"github.com/clambin/ledanimator/pixel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

// Prometheus metrics
var (
	framesMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledanimator_frames_total",
		Help: "Number of frames rendered to the strip",
	})
	renderErrorsMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledanimator_render_errors_total",
		Help: "Number of frames that failed to render",
	})
)

// Controller runs at most one pattern at a time on a strip device. It doesn't own
// the patterns it runs: starting a new pattern merely detaches the previous one.
type Controller struct {
	Device device.Device
	Clock  func() time.Time
	active pattern.Pattern
}

var _ pattern.Canvas = &Controller{}

// New creates a Controller for the given device
func New(dev device.Device) *Controller {
	return &Controller{
		Device: dev,
		Clock:  time.Now,
	}
}

// IsActive reports whether a pattern is currently running
func (c *Controller) IsActive() bool {
	return c.active != nil
}

// IsActivePattern reports whether p is the pattern currently running
func (c *Controller) IsActivePattern(p pattern.Pattern) bool {
	return c.active == p
}

// Start makes p the active pattern and resets it to its starting position. The pixel
// buffer is left as is, so patterns that build on the previous contents can do so.
func (c *Controller) Start(p pattern.Pattern) {
	c.active = p
	c.active.Reset()
	log.WithField("pattern", fmt.Sprintf("%T", p)).Debug("pattern started")
}

// Stop detaches the active pattern and switches the strip off
func (c *Controller) Stop() error {
	c.active = nil
	c.Device.Clear()
	log.Debug("pattern stopped")
	return c.Device.Render()
}

// Update applies one update of the active pattern, provided its interval has elapsed.
// Otherwise it returns immediately, so the host's loop can call it on every pass.
func (c *Controller) Update() error {
	if c.active == nil {
		return nil
	}
	now := c.Clock()
	if !c.active.ShouldUpdate(now) {
		return nil
	}

	c.active.Frame()
	err := c.Device.Render()
	if err == nil {
		framesMetric.Inc()
	} else {
		renderErrorsMetric.Inc()
	}
	c.active.MarkUpdated(now)
	c.active.Advance()
	return err
}

// Count returns the number of pixels on the strip
func (c *Controller) Count() int {
	return c.Device.Count()
}

// SetPixel writes color into the pixel buffer at the given index
func (c *Controller) SetPixel(index int, color pixel.Color) {
	c.Device.SetPixel(index, color)
}

// Pixel returns the pixel buffer contents at the given index
func (c *Controller) Pixel(index int) pixel.Color {
	return c.Device.Pixel(index)
}

// SetAll sets every pixel to the given color and renders the strip immediately
func (c *Controller) SetAll(color pixel.Color) {
	for i := 0; i < c.Device.Count(); i++ {
		c.Device.SetPixel(i, color)
	}
	if err := c.Device.Render(); err != nil {
		renderErrorsMetric.Inc()
		log.WithError(err).Warning("failed to render strip")
	}
}
