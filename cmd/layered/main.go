package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"userarch/internal/layered"
	"userarch/internal/platform/config"
	"userarch/internal/platform/httpserver"
	"userarch/internal/platform/logger"
	"userarch/internal/platform/metrics"
)

// main wires the layered variant and keeps the server lifecycle small.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(layered.Version, "info", "production").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(layered.Version, cfg.LogLevel, cfg.AppEnv)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg, layered.Version)

	router := layered.NewRouter(log, m)

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting server", "addr", cfg.Addr, "architecture", layered.Version)
	if err := httpserver.Run(context.Background(), srv, cfg.ShutdownTimeout); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
