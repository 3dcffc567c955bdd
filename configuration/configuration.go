// Package configuration parses the command line arguments for ledanimator.
package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clambin/ledanimator/pattern"
	"github.com/clambin/ledanimator/pixel"
	"github.com/clambin/ledanimator/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Configuration struct {
	Debug          bool
	PrometheusPort int
	StripConfiguration
	PatternConfiguration
}

type StripConfiguration struct {
	Device     string
	Pixels     int
	GPIOPin    int
	Brightness int
	Tick       time.Duration
}

type PatternConfiguration struct {
	Mode     string
	Interval time.Duration
	Color1   string
	Color2   string
	Steps    int
	Reverse  bool
	Split    bool
}

// Devices lists the supported strip device types. "none" runs the animation against
// an in-memory buffer, for hosts without a strip attached.
var Devices = []string{
	"ws281x",
	"none",
}

func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration

	a := kingpin.New(filepath.Base(os.Args[0]), "ledanimator")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("prometheus", "Prometheus metrics listener port").Default("9090").IntVar(&cfg.PrometheusPort)
	a.Flag("device", "Strip device type ("+strings.Join(Devices, ", ")+")").Default("ws281x").EnumVar(&cfg.StripConfiguration.Device, Devices...)
	a.Flag("pixels", "Number of pixels on the strip").Default("150").IntVar(&cfg.StripConfiguration.Pixels)
	a.Flag("gpio-pin", "GPIO pin the strip's data line is connected to").Default("18").IntVar(&cfg.StripConfiguration.GPIOPin)
	a.Flag("brightness", "Strip brightness (0-255)").Default("64").IntVar(&cfg.StripConfiguration.Brightness)
	a.Flag("tick", "Polling interval of the update loop").Default("10ms").DurationVar(&cfg.StripConfiguration.Tick)
	a.Flag("pattern", "Pattern to run ("+strings.Join(pattern.Modes, ", ")+")").Short('p').Default("rainbow").EnumVar(&cfg.PatternConfiguration.Mode, pattern.Modes...)
	a.Flag("interval", "Delay between pattern updates").Default("50ms").DurationVar(&cfg.PatternConfiguration.Interval)
	a.Flag("color1", "Primary pattern color (hex)").Default("ff0000").StringVar(&cfg.PatternConfiguration.Color1)
	a.Flag("color2", "Secondary pattern color (hex)").Default("000000").StringVar(&cfg.PatternConfiguration.Color2)
	a.Flag("steps", "Number of steps in a fade cycle").Default("64").IntVar(&cfg.PatternConfiguration.Steps)
	a.Flag("reverse", "Run the pattern in reverse").Default("false").BoolVar(&cfg.PatternConfiguration.Reverse)
	a.Flag("split", "Run the scanner over half the cycle").Default("false").BoolVar(&cfg.PatternConfiguration.Split)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}
	return cfg, nil
}

// PatternConfig converts the command line parameters to a pattern.Config
func (c PatternConfiguration) PatternConfig() (pattern.Config, error) {
	color1, err := pixel.ParseHex(c.Color1)
	if err != nil {
		return pattern.Config{}, err
	}
	color2, err := pixel.ParseHex(c.Color2)
	if err != nil {
		return pattern.Config{}, err
	}
	return pattern.Config{
		Interval: c.Interval,
		Color1:   color1,
		Color2:   color2,
		Steps:    c.Steps,
		Reverse:  c.Reverse,
		Split:    c.Split,
	}, nil
}
