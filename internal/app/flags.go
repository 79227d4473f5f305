package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"terramorph/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Mode        string
	Width       int
	Height      int
	TPS         int
	Seed        int64
	ConfigPath  string
	MetricsAddr string
	LogLevel    string
	HUDWidth    int
	Sets        Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:     "terrain",
		Width:    960,
		Height:   640,
		TPS:      60,
		Seed:     1337,
		LogLevel: "info",
		HUDWidth: 260,
		Sets:     Overrides{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "generative mode to start in")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for noise and particle sampling")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with per-mode options (default $TERRAMORPH_CONFIG)")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve prometheus metrics on this address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
	fs.Var(c.Sets, "set", "mode option as mode.key=value, repeatable")
}

// Logger builds a text logger at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// Overrides collects mode.key=value pairs from repeated -set flags.
type Overrides map[string]map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	var parts []string
	for mode, opts := range o {
		for k, v := range opts {
			parts = append(parts, mode+"."+k+"="+v)
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("%q: want mode.key=value", s)
	}
	mode, name, ok := strings.Cut(key, ".")
	if !ok || mode == "" || name == "" {
		return fmt.Errorf("%q: want mode.key=value", s)
	}
	if o[mode] == nil {
		o[mode] = map[string]string{}
	}
	o[mode][name] = value
	return nil
}

// Explicit reports whether the named flag was set on fs, as opposed to
// holding its default.
func Explicit(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Viewport converts window dimensions into a core viewport at pixel ratio 1.
func Viewport(w, h int) core.Viewport {
	return core.Viewport{W: w, H: h, PixelRatio: 1}
}
