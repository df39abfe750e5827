// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-sync/internal/client"
	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("quiz-sync").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("quiz-sync", cfg.Log.FilePath)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version != "" {
		buildInfo = models.NewAppBuildInfo(cfg.App.Version, buildDate, buildCommit)
	}

	ctx := context.Background()
	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
