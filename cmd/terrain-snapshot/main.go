package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"terramorph/internal/app"
	"terramorph/internal/config"
	"terramorph/internal/core"
	"terramorph/internal/modes/terrain"
	"terramorph/internal/render"
)

func main() {
	frames := flag.Int("frames", 120, "frames to advance before capturing")
	frameMS := flag.Float64("frame-ms", 1000.0/60, "simulated milliseconds per frame")
	forward := flag.Bool("forward", true, "hold the forward intent while advancing")
	strafe := flag.String("strafe", "", "hold a sideways intent: left or right")
	out := flag.String("out", ".", "directory for the captured PNGs")
	seed := flag.Int64("seed", 1337, "noise seed")
	configPath := flag.String("config", "", "YAML file with per-mode options")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	sets := app.Overrides{}
	flag.Var(sets, "set", "mode option as terrain.key=value (repeatable)")
	flag.Parse()

	cfg := app.NewConfig()
	cfg.LogLevel = *logLevel
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	doc, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	host := app.NewHost(app.HostOptions{
		Logger:       logger,
		Seed:         *seed,
		SeedExplicit: app.Explicit(flag.CommandLine, "seed"),
		Config:       doc,
		Overrides:    sets,
		Viewport:     app.Viewport(cfg.Width, cfg.Height),
	})
	if err := host.Switch(terrain.Name); err != nil {
		log.Fatal(err)
	}
	defer host.Close()

	q := host.Input()
	if *forward {
		q.Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyForward})
	}
	switch *strafe {
	case "":
	case "left":
		q.Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyLeft})
	case "right":
		q.Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyRight})
	default:
		log.Fatalf("strafe %q: want left or right", *strafe)
	}

	for i := 1; i <= *frames; i++ {
		host.Frame(float64(i) * *frameMS)
	}

	eng := host.Mode().(*terrain.Engine)
	side := eng.Mesh().Segments + 1
	depths, lo, hi, _ := eng.DepthGrid()
	heights, _ := eng.HeightGrid()
	offX, offZ := eng.Offset()

	if err := writePNG(filepath.Join(*out, "terrain-color.png"), render.ColorImage(eng.Colors(), side, side)); err != nil {
		log.Fatal(err)
	}
	if err := writePNG(filepath.Join(*out, "terrain-depth.png"), render.DepthImage(depths, lo, hi, side, side)); err != nil {
		log.Fatal(err)
	}

	hLo, hHi := heights[0], heights[0]
	for _, h := range heights {
		hLo = min(hLo, h)
		hHi = max(hHi, h)
	}
	fmt.Printf("Captured %d frames (%dx%d grid), offset (%.2f, %.2f)\n", host.Frames(), side, side, offX, offZ)
	fmt.Printf("Heights: %.3f .. %.3f\n", hLo, hHi)
	fmt.Printf("Light depth: %.3f .. %.3f\n", lo, hi)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
