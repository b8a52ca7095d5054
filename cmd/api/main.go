package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"syllabus-analyzer/internal/bootstrap"
	"syllabus-analyzer/internal/shared/config"
	"syllabus-analyzer/internal/shared/server"
	"syllabus-analyzer/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	defer telemetry.Sync()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (provider=%s ai_enabled=%t)", addr, cfg.LLMProvider, cfg.AIEnabled())
	if err := server.Serve(ctx, addr, app.Router, server.DefaultShutdownTimeout); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
