// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ava-labs/counter/consts"
)

const (
	exportTimeout = 10 * time.Second
	// longer than [exportTimeout] so queued spans can still be flushed
	shutdownTimeout = 15 * time.Second

	DefaultZipkinEndpoint = "http://localhost:9411/api/v2/spans"
)

type Config struct {
	Enabled bool `json:"enabled"`
	// Fraction of invocations to sample, clamped to [0, 1].
	SampleRate float64 `json:"sampleRate"`
	// Zipkin collector. Defaults to [DefaultZipkinEndpoint].
	Endpoint string `json:"endpoint"`
	// Process reported as the span source, e.g. the CLI command name.
	Agent string `json:"agent"`
}

var _ trace.Tracer = (*tracer)(nil)

type tracer struct {
	oteltrace.Tracer
	provider *sdktrace.TracerProvider
}

func (t *tracer) Close() error {
	if t.provider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return t.provider.Shutdown(ctx)
}

// New returns a tracer exporting counter spans to zipkin, or one that records
// nothing if tracing is disabled.
func New(cfg *Config) (trace.Tracer, error) {
	if !cfg.Enabled {
		return &tracer{
			Tracer: noop.NewTracerProvider().Tracer(consts.Name),
		}, nil
	}

	endpoint := cfg.Endpoint
	if len(endpoint) == 0 {
		endpoint = DefaultZipkinEndpoint
	}
	exporter, err := zipkin.New(endpoint)
	if err != nil {
		return nil, err
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(exportTimeout)),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(consts.Name),
			semconv.ServiceVersionKey.String(consts.Version.String()),
			attribute.String("agent", cfg.Agent),
		)),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.SampleRate)),
	)
	return &tracer{
		Tracer:   provider.Tracer(consts.Name),
		provider: provider,
	}, nil
}
