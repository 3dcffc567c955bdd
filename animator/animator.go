// Package animator runs the polling loop that drives a strip controller.
package animator

import (
	"context"
	"time"

	"github.com/clambin/ledanimator/strip"
	log "github.com/sirupsen/logrus"
)

// Animator calls the controller's Update on every tick until its context is canceled.
// All pattern updates happen on the Animator's goroutine; the interval gate inside
// the pattern decides which ticks actually render a frame.
type Animator struct {
	Strip *strip.Controller
	Tick  time.Duration
}

// New creates an Animator for the given controller
func New(s *strip.Controller, tick time.Duration) *Animator {
	return &Animator{
		Strip: s,
		Tick:  tick,
	}
}

// Run updates the strip every tick. On shutdown it stops the controller, switching
// the strip off.
func (a *Animator) Run(ctx context.Context) {
	log.Info("animator started")
	ticker := time.NewTicker(a.Tick)
	for running := true; running; {
		select {
		case <-ctx.Done():
			running = false
		case <-ticker.C:
			if err := a.Strip.Update(); err != nil {
				log.WithError(err).Error("failed to update strip")
			}
		}
	}
	ticker.Stop()
	if err := a.Strip.Stop(); err != nil {
		log.WithError(err).Error("failed to switch off strip")
	}
	log.Info("animator stopped")
}
