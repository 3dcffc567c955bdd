package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/clambin/ledanimator/animator"
	"github.com/clambin/ledanimator/configuration"
	"github.com/clambin/ledanimator/device"
	"github.com/clambin/ledanimator/device/ws281x"
	"github.com/clambin/ledanimator/pattern"
	"github.com/clambin/ledanimator/strip"
	"github.com/clambin/ledanimator/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	log.WithField("version", version.BuildVersion).Info("ledanimator starting")
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	dev, err := makeDevice(cfg.StripConfiguration)
	if err != nil {
		log.WithError(err).Fatal("failed to set up strip device")
	}

	c := strip.New(dev)

	patternConfig, err := cfg.PatternConfiguration.PatternConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid pattern configuration")
	}
	p, err := pattern.New(cfg.PatternConfiguration.Mode, c, patternConfig)
	if err != nil {
		log.WithError(err).Fatal("failed to create pattern")
	}
	c.Start(p)

	go func() {
		err2 := http.ListenAndServe(fmt.Sprintf(":%d", cfg.PrometheusPort), promhttp.Handler())
		log.WithError(err2).Error("prometheus listener failed")
	}()

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		animator.New(c, cfg.StripConfiguration.Tick).Run(ctx)
		wg.Done()
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-interrupt

	log.Info("shutting down")
	cancel()
	wg.Wait()
	if closer, ok := dev.(interface{ Close() }); ok {
		closer.Close()
	}
	log.Info("exiting")
}

func makeDevice(cfg configuration.StripConfiguration) (device.Device, error) {
	if cfg.Device == "none" {
		buffer, err := device.NewBuffer(cfg.Pixels)
		if err != nil {
			return nil, err
		}
		return buffer, nil
	}
	dev, err := ws281x.New(ws281x.Config{
		GPIOPin:    cfg.GPIOPin,
		Count:      cfg.Pixels,
		Brightness: cfg.Brightness,
	})
	if err != nil {
		return nil, err
	}
	return dev, nil
}
