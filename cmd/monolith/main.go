package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"userarch/internal/monolith"
	"userarch/internal/platform/config"
	"userarch/internal/platform/httpserver"
	"userarch/internal/platform/logger"
	"userarch/internal/platform/metrics"
)

// main wires the monolith variant and keeps the server lifecycle small.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(monolith.Version, "info", "production").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(monolith.Version, cfg.LogLevel, cfg.AppEnv)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg, monolith.Version)

	router := monolith.NewRouter(log, m)

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting server", "addr", cfg.Addr, "architecture", monolith.Version)
	if err := httpserver.Run(context.Background(), srv, cfg.ShutdownTimeout); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
