package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jcmexdev/storefront/internal/api-gateway/core/ports"
	"github.com/jcmexdev/storefront/internal/api-gateway/infra/adapters/service"
	"github.com/jcmexdev/storefront/internal/api-gateway/infra/httpx"
	storefrontv1 "github.com/jcmexdev/storefront/internal/api/storefront/v1"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/pkg/cache"
	"github.com/jcmexdev/storefront/internal/pkg/config"
	"github.com/jcmexdev/storefront/internal/pkg/telemetry"
	grpcadapter "github.com/jcmexdev/storefront/internal/storefront-service/adapters/grpc"
	"github.com/jcmexdev/storefront/internal/storefront-service/app"
	"github.com/jcmexdev/storefront/internal/storefront-service/domain"
)

func main() {
	cfg, err := config.Load("api-gateway")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	telemetry.InitLogger(cfg.LogLevel, cfg.ServiceName)

	if err := run(cfg); err != nil {
		slog.Error("api gateway stopped", "error", err)
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

	storefront, closeFn, err := newStorefront(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpx.NewRouter(httpx.NewHandler(storefront)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("API gateway running", "addr", cfg.HTTPAddr, "storefront_mode", cfg.StorefrontMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down API gateway")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newStorefront connects to the storefront service, or embeds it when
// STOREFRONT_MODE=local.
func newStorefront(ctx context.Context, cfg config.Config) (ports.StorefrontService, func(), error) {
	if cfg.StorefrontMode == config.ModeLocal {
		theme, err := domain.ParseTheme(cfg.DefaultAppearance, domain.ThemeLight)
		if err != nil {
			return nil, nil, fmt.Errorf("DEFAULT_APPEARANCE: %w", err)
		}
		svc := app.NewService(catalog.Default(),
			app.WithDefaultTheme(theme),
			app.WithIdempotency(cache.NewMemoryCache(cfg.ServiceName), cfg.IdempotencyTTL),
			app.WithSessionIdleTTL(cfg.SessionIdleTTL),
		)
		if cfg.SessionIdleTTL > 0 {
			go svc.RunSweeper(ctx, max(cfg.SessionIdleTTL/4, time.Second))
		}
		return service.NewLocalStorefrontService(grpcadapter.NewServer(svc)), func() {}, nil
	}

	conn, err := grpc.NewClient(cfg.StorefrontAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(storefrontv1.CodecName)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to %s: %w", cfg.StorefrontAddr, err)
	}
	closeFn := func() {
		if err := conn.Close(); err != nil {
			slog.Warn("closing storefront connection", "error", err)
		}
	}
	return service.NewGRPCStorefrontService(storefrontv1.NewStorefrontClient(conn)), closeFn, nil
}
