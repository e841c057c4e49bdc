package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/skufinder/internal/api"
	"github.com/dgallion1/skufinder/internal/config"
	"github.com/dgallion1/skufinder/internal/parser"
	"github.com/dgallion1/skufinder/internal/pipeline"
	"github.com/dgallion1/skufinder/internal/session"
	"github.com/dgallion1/skufinder/internal/stats"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		log.Warn("SKUFINDER_API_KEY not set, API is unauthenticated")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := session.New(parser.Options{
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
		XLSXSheet:            cfg.XLSXSheet,
	})

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, sess, stats.NewWindow(cfg.StatsWindow), log)
	orch.Start(ctx)

	// Optionally preload a report so lookups work before the first upload.
	if path := cfg.ReportPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("read preload report", "path", path, "error", err)
			os.Exit(1)
		}
		snap := orch.Run(ctx, pipeline.NewJob(path, data))
		if snap.Status != pipeline.StatusCompleted {
			log.Error("preload report failed", "path", path, "errors", snap.Progress.Errors)
			os.Exit(1)
		}
	}

	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		orch.Stop()
	}()

	log.Info("starting skufinder", "port", cfg.Port, "workers", cfg.WorkerCount)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
