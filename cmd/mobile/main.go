package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
	"github.com/Alexander-D-Karpov/omnis/internal/logger"
	"github.com/Alexander-D-Karpov/omnis/internal/platform"
	"github.com/Alexander-D-Karpov/omnis/internal/ui"
)

func main() {
	cfg, err := config.DefaultMobileConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	fyneApp := app.NewWithID(platform.AppID)

	omnisApp, err := ui.NewApp(context.Background(), fyneApp, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create app")
	}

	omnisApp.ShowAndRun()
}
