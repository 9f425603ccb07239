package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	storefrontv1 "github.com/jcmexdev/storefront/internal/api/storefront/v1"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/pkg/activitylog/sqlite"
	"github.com/jcmexdev/storefront/internal/pkg/cache"
	"github.com/jcmexdev/storefront/internal/pkg/config"
	"github.com/jcmexdev/storefront/internal/pkg/interceptors"
	"github.com/jcmexdev/storefront/internal/pkg/telemetry"
	grpcadapter "github.com/jcmexdev/storefront/internal/storefront-service/adapters/grpc"
	"github.com/jcmexdev/storefront/internal/storefront-service/app"
	"github.com/jcmexdev/storefront/internal/storefront-service/domain"
)

func main() {
	cfg, err := config.Load("storefront-service")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	telemetry.InitLogger(cfg.LogLevel, cfg.ServiceName)

	if err := run(cfg); err != nil {
		slog.Error("storefront service stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OTelEnabled {
		shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Error("tracer shutdown error", "error", err)
			}
		}()
	} else {
		telemetry.SetupPropagation()
	}

	theme, err := domain.ParseTheme(cfg.DefaultAppearance, domain.ThemeLight)
	if err != nil {
		return fmt.Errorf("DEFAULT_APPEARANCE: %w", err)
	}

	opts := []app.Option{
		app.WithDefaultTheme(theme),
		app.WithIdempotency(newCache(ctx, cfg), cfg.IdempotencyTTL),
		app.WithSessionIdleTTL(cfg.SessionIdleTTL),
	}

	if cfg.ActivityLogPath != "" {
		repo, err := sqlite.Open(cfg.ActivityLogPath)
		if err != nil {
			return err
		}
		defer repo.Close()
		opts = append(opts, app.WithActivityLog(repo))
		slog.Info("activity log enabled", "path", cfg.ActivityLogPath)
	}

	svc := app.NewService(catalog.Default(), opts...)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.TraceServerInterceptor()),
	)
	storefrontv1.RegisterStorefrontServer(grpcServer, grpcadapter.NewServer(svc))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("storefront service gRPC running", "addr", cfg.GRPCAddr)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		return svc.RunSweeper(gctx, sweepInterval(cfg.SessionIdleTTL))
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down storefront service")

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(cfg.ShutdownTimeout):
			grpcServer.Stop()
		}
		return nil
	})

	return g.Wait()
}

// sweepInterval checks a few times per TTL so a session outlives its TTL by
// at most a quarter of it.
func sweepInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	return max(ttl/4, time.Second)
}

// newCache prefers Redis and falls back to an in-process cache when it is
// not configured or not reachable.
func newCache(ctx context.Context, cfg config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(cfg.ServiceName)
	}

	c := cache.NewRedisCache(cfg.RedisAddr, cfg.ServiceName)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx, c); err != nil {
		slog.Warn("redis unreachable, using in-memory idempotency cache", "addr", cfg.RedisAddr, "error", err)
		return cache.NewMemoryCache(cfg.ServiceName)
	}
	return c
}
