// Command rkn-service keeps the blocklist loaded and answers domain checks
// over gRPC and HTTP.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"forbidden-domains/internal/app"
	"forbidden-domains/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	source := cfg.RKNAPIBaseURL
	if cfg.BlocklistFile != "" {
		source = cfg.BlocklistFile
	}
	log.Printf("rkn-service: blocklist source %s, refresh every %s", source, cfg.UpdateInterval)

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("app error: %v", err)
	}
}
