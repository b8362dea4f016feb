package app

import (
	"context"
	"log"
	"time"

	"forbidden-domains/internal/config"
	"forbidden-domains/internal/domain"
	"forbidden-domains/internal/registry"
	"forbidden-domains/internal/transport/grpc"
	httpgw "forbidden-domains/internal/transport/http"

	"golang.org/x/sync/errgroup"
)

// newFetcher picks the blocklist source: a local file when configured,
// the registry API otherwise.
func newFetcher(cfg config.Config) registry.Fetcher {
	if cfg.BlocklistFile != "" {
		return registry.NewFileSource(cfg.BlocklistFile)
	}
	return registry.NewClient(cfg.RKNAPIBaseURL)
}

func Run(ctx context.Context, cfg config.Config) error {
	holder := registry.NewHolder()
	hs := grpc.NewHealthServer()
	checker := grpc.NewServer(holder)

	updCfg := registry.Config{
		Interval:       cfg.UpdateInterval,
		InitialBackoff: 30 * time.Second,
		MaxBackoff:     30 * time.Minute,
		OnUpdate: func(reg *domain.Registry) {
			log.Printf("app: serving %d blocklist entries from %s", reg.Blocklist.Len(), reg.Source)
			grpc.MarkServing(hs)
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return registry.Start(ctx, updCfg, newFetcher(cfg), holder)
	})

	g.Go(func() error {
		return grpc.RunGRPCServer(ctx, cfg.GRPCAddr, holder, hs)
	})

	g.Go(func() error {
		return httpgw.RunHTTPGatewayServer(ctx, cfg.HTTPAddr, checker, holder)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Printf("app: servers stopped with error: %v", err)
		return err
	}

	log.Printf("app: servers stopped gracefully")
	return nil
}
