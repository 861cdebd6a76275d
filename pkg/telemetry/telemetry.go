// Package telemetry installs the OpenTelemetry providers used by the services.
// Metrics are exported through the Prometheus registry so they are served on
// the same /metrics endpoint as the native collectors; spans are optionally
// shipped to an OTLP collector or written to stdout.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Options configure the providers.
type Options struct {
	ServiceName string
	Environment string
	// StdoutTraces exports spans to TraceWriter (stdout when nil).
	StdoutTraces bool
	TraceWriter  io.Writer
	// OTLPEndpoint (host:port) enables batched span export over OTLP/HTTP.
	OTLPEndpoint string
	OTLPInsecure bool
	OTLPHeaders  map[string]string
	// Registerer receives the otel metrics; prometheus.DefaultRegisterer when nil.
	Registerer prometheus.Registerer
}

// Providers holds the installed providers.
type Providers struct {
	Tracer *sdktrace.TracerProvider
	Meter  *sdkmetric.MeterProvider
}

// Shutdown flushes and stops both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	return errors.Join(p.Tracer.Shutdown(ctx), p.Meter.Shutdown(ctx)) //nolint: wrapcheck
}

// Setup builds the providers and registers them as the otel globals.
func Setup(ctx context.Context, opts Options) (*Providers, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", opts.ServiceName),
		attribute.String("deployment.environment", opts.Environment),
	)

	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp), sdkmetric.WithResource(res))

	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if opts.StdoutTraces {
		w := opts.TraceWriter
		if w == nil {
			w = os.Stdout
		}
		traceExp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("could not create stdout trace exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithSyncer(traceExp))
	}
	if opts.OTLPEndpoint != "" {
		otlpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.OTLPEndpoint)}
		if opts.OTLPInsecure {
			otlpOpts = append(otlpOpts, otlptracehttp.WithInsecure())
		}
		if len(opts.OTLPHeaders) > 0 {
			otlpOpts = append(otlpOpts, otlptracehttp.WithHeaders(opts.OTLPHeaders))
		}
		otlpExp, err := otlptracehttp.New(ctx, otlpOpts...)
		if err != nil {
			return nil, fmt.Errorf("could not create otlp trace exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(otlpExp))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return &Providers{Tracer: tp, Meter: mp}, nil
}
