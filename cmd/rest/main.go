package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"srs-intake-be/internal/bootstrap"
	"srs-intake-be/internal/config"
	"srs-intake-be/internal/server"
	"srs-intake-be/internal/tracer"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so they fire before main exits.
func run() error {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, container)
}

// serve runs the consumer and the HTTP server until ctx is cancelled or
// either of them fails, then shuts both down.
func serve(ctx context.Context, cfg *config.Config, container *bootstrap.Container) error {
	srv := server.New(cfg, container)
	g, ctx := errgroup.WithContext(ctx)

	// 4. Background consumer
	g.Go(func() error {
		log.Println("Background: Starting Consumer Service...")
		return container.ConsumerService.Consume(ctx)
	})

	// 5. HTTP server
	g.Go(func() error {
		return srv.Run()
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			return err
		}
		return container.Close()
	})

	return g.Wait()
}
