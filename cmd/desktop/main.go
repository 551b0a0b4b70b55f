package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
	"github.com/Alexander-D-Karpov/omnis/internal/logger"
	"github.com/Alexander-D-Karpov/omnis/internal/platform"
	"github.com/Alexander-D-Karpov/omnis/internal/ui"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	debug      = flag.Bool("debug", false, "Enable debug logging for all components")
	Version    = "dev"
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}

	log := logger.Component(logger.New(cfg), "MAIN")
	log.Info().Str("version", Version).Msg("starting My Omnis")
	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("database", cfg.Storage.DatabasePath).
		Str("theme", cfg.UI.Theme).
		Int("width", cfg.UI.WindowWidth).
		Int("height", cfg.UI.WindowHeight).
		Msg("configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := app.NewWithID(platform.AppID)

	omnisApp, err := ui.NewApp(ctx, fyneApp, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create app")
	}

	setupGracefulShutdown(cancel, omnisApp, log)
	omnisApp.ShowAndRun()
}

func setupGracefulShutdown(cancel context.CancelFunc, omnisApp *ui.App, log zerolog.Logger) {
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)

		sig := <-c
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		cancel()
		omnisApp.Close()

		os.Exit(0)
	}()
}
