package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ytmeta/api"
	"ytmeta/config"
	"ytmeta/worker"
	"ytmeta/youtube"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	fetcher := youtube.NewFetcher(cfg)

	// Setup router
	r := api.Setup(fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start NATS worker when enabled
	var metaWorker *worker.Worker
	if cfg.NATSEnabled {
		metaWorker, err = worker.NewWorker(cfg, fetcher)
		if err != nil {
			log.Fatal("Failed to create worker: ", err)
		}
		if err := metaWorker.Start(ctx); err != nil {
			log.Fatal("Failed to start worker: ", err)
		}
	}

	// Setup HTTP server
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	// Start server in background
	go func() {
		log.Printf("ytmeta service starting on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down ytmeta service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if metaWorker != nil {
		metaWorker.Stop()
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("ytmeta service stopped")
}
