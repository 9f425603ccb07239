// Package telemetry wires slog and OpenTelemetry for the storefront binaries.
//
// Call SetupTracer once at the top of main and defer the returned shutdown
// function. Spans started anywhere in the process, including the ones otelgrpc
// and otelhttp create per request, are then exported to the collector.
//
//	shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
//	if err != nil { ... }
//	defer shutdown(context.Background())
package telemetry

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ShutdownFunc flushes buffered spans and closes the exporter connection.
type ShutdownFunc func(ctx context.Context) error

// SetupTracer registers a global TracerProvider that exports to the OTLP
// collector named by OTEL_EXPORTER_OTLP_ENDPOINT (default localhost:4317).
// This is the standard OTel variable, so the same binary runs unchanged
// against a local collector and a deployed one.
func SetupTracer(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	// The gRPC dialer wants host:port, collectors are often configured as URLs.
	endpoint := stripScheme(getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"))

	// ── 1. OTLP gRPC exporter ────────────────────────────────────────────────
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("telemetry: dial collector %s: %w", endpoint, err)
	}

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("telemetry: create trace exporter: %w", err)
	}

	// ── 2. Resource: how this process shows up in Tempo / Grafana ───────────
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			"",
			semconv.ServiceName(serviceName),
			semconv.DeploymentEnvironment(getEnv("OTEL_RESOURCE_ATTRIBUTES_ENV", "local")),
		),
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("telemetry: build resource: %w", err)
	}

	// ── 3. TracerProvider with a batching span processor ───────────────────
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
		// Root spans are always kept; children follow the gateway's decision.
		// For sampled production traffic swap the root sampler for
		//   sdktrace.TraceIDRatioBased(0.1)
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	// ── 4. Global provider ──────────────────────────────────────────────────
	// otelgrpc and otelhttp read the global provider, nothing else needs it.
	otel.SetTracerProvider(tp)

	// ── 5. Propagators ──────────────────────────────────────────────────────
	SetupPropagation()

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("telemetry: shutdown tracer provider: %w", err)
		}
		return conn.Close()
	}, nil
}

// SetupPropagation installs the W3C trace-context and baggage propagators.
// It is enough on its own when exporting is disabled: ids still flow from
// the gateway to the storefront service and into the logs.
func SetupPropagation() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, // W3C traceparent / tracestate headers
		propagation.Baggage{},      // W3C baggage header
	))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// stripScheme removes an "http://" or "https://" prefix so the endpoint can
// go straight into grpc.NewClient.
func stripScheme(endpoint string) string {
	for _, prefix := range []string{"http://", "https://"} {
		endpoint = strings.TrimPrefix(endpoint, prefix)
	}
	return endpoint
}
