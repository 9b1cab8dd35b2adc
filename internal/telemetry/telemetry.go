// Package telemetry wires OpenTelemetry tracing for the batch tools. Export
// is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise a no-op
// tracer is returned so callers never need to branch.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer used for simulation spans.
const InstrumentationName = "torus-life"

// Provider owns the tracer provider for a process.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup builds a Provider exporting over OTLP/HTTP when the standard
// OTEL_EXPORTER_OTLP_ENDPOINT variable is present.
func Setup(ctx context.Context, serviceName string) (*Provider, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		serviceName = name
	}
	return newProvider(serviceName, sdktrace.WithBatcher(exporter)), nil
}

// NewWithExporter builds a Provider that hands every finished span to exp
// synchronously.
func NewWithExporter(serviceName string, exp sdktrace.SpanExporter) *Provider {
	return newProvider(serviceName, sdktrace.WithSyncer(exp))
}

func newProvider(serviceName string, opt sdktrace.TracerProviderOption) *Provider {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	tp := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Provider{provider: tp, tracer: tp.Tracer(InstrumentationName)}
}

// Enabled reports whether spans are exported anywhere.
func (p *Provider) Enabled() bool { return p != nil && p.provider != nil }

// Tracer returns the tracer for simulation spans.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return p.tracer
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
