package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinas_portal/internal/app"
	"dinas_portal/internal/config"
	"dinas_portal/internal/lib/logger"
	"dinas_portal/internal/lib/logger/sl"
)

const shutdownTimeout = 10 * time.Second

// @title Dinas Portal API
// @version 1.0
// @description Portal berita, galeri dan laporan masyarakat.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env, os.Stdout)

	log.Info("starting dinas_portal",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	application, err := app.New(context.Background(), log, cfg)
	if err != nil {
		log.Error("failed to start application", sl.Err(err))
		os.Exit(1)
	}

	go func() {
		application.HTTPServer.MustRun()
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Stop(ctx); err != nil {
		log.Error("shutdown finished with errors", sl.Err(err))
	}

	log.Info("application stopped")
}
