package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dgallion1/guideview/internal/api"
	"github.com/dgallion1/guideview/internal/compose"
	"github.com/dgallion1/guideview/internal/config"
	"github.com/dgallion1/guideview/internal/docstore"
	"github.com/dgallion1/guideview/internal/markup"
	"github.com/dgallion1/guideview/internal/pipeline"
	"github.com/dgallion1/guideview/internal/publish"
)

func main() {
	godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the rendering stack.
	assembler := compose.NewAssembler(markup.NewRenderer(), cfg.DefaultTitle)
	store, err := docstore.New(cfg.DocsDir, assembler, log)
	if err != nil {
		log.Error("failed to open document store", "dir", cfg.DocsDir, "error", err)
		os.Exit(1)
	}
	if err := store.Watch(ctx); err != nil {
		log.Warn("document watching disabled", "error", err)
	}

	var publisher *publish.Client
	if cfg.PublishURL != "" {
		publisher = publish.NewClient(cfg.PublishURL, cfg.PublishAPIKey)
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, store, publisher, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(store, orch, log, cfg)

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

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if publisher != nil {
			publisher.Close()
		}
	}()

	log.Info("starting guideview", "port", cfg.Port, "docs_dir", cfg.DocsDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
