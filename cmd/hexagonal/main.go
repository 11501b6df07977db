package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"userarch/internal/hexagonal"
	"userarch/internal/platform/config"
	"userarch/internal/platform/httpserver"
	"userarch/internal/platform/logger"
	"userarch/internal/platform/metrics"
)

// main wires the hexagonal variant and keeps the server lifecycle small.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(hexagonal.Version, "info", "production").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(hexagonal.Version, cfg.LogLevel, cfg.AppEnv)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg, hexagonal.Version)

	router := hexagonal.NewRouter(log, m)

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting server", "addr", cfg.Addr, "architecture", hexagonal.Version)
	if err := httpserver.Run(context.Background(), srv, cfg.ShutdownTimeout); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
