//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"terramorph/internal/app"
	"terramorph/internal/config"
	"terramorph/internal/metrics"
	_ "terramorph/internal/modes/morph"
	_ "terramorph/internal/modes/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	doc, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	mode := cfg.Mode
	if doc.Mode != "" && !app.Explicit(flag.CommandLine, "mode") {
		mode = doc.Mode
	}

	var rec *metrics.Recorder
	if cfg.MetricsAddr != "" {
		rec = metrics.New()
		rec.StartHTTP(cfg.MetricsAddr, logger)
	}

	host := app.NewHost(app.HostOptions{
		Logger:       logger,
		Metrics:      rec,
		Seed:         cfg.Seed,
		SeedExplicit: app.Explicit(flag.CommandLine, "seed"),
		Config:       doc,
		Overrides:    cfg.Sets,
		Viewport:     app.Viewport(cfg.Width, cfg.Height),
	})
	if err := host.Switch(mode); err != nil {
		log.Fatal(err)
	}
	defer host.Close()

	game := app.New(host, cfg.Width, cfg.Height, cfg.HUDWidth)

	ebiten.SetWindowTitle("genscape - " + mode)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

