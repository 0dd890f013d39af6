// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "dungeonrun"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Session describes the run being traced. Its fields become resource
// attributes, so every span can be matched to the dungeon that produced it.
type Session struct {
	Seed     int64
	Topology string // "embedded" or the topology file path
	Player   string
}

// Attributes returns the session as resource attributes.
func (s Session) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("dungeon.seed", s.Seed),
		attribute.String("dungeon.topology", s.Topology),
		attribute.String("player.name", s.Player),
	}
}

// Setup installs a batching OTLP HTTP tracer provider for one session.
// The exporter reads OTEL_EXPORTER_OTLP_ENDPOINT and OTEL_EXPORTER_OTLP_HEADERS,
// see ConfigureHoneycomb.
//
// The returned shutdown flushes pending spans and must be called on exit.
func Setup(ctx context.Context, session Session) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, session)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource is not merged with resource.Default() to avoid schema URL conflicts.
func newResource(ctx context.Context, session Session) (*resource.Resource, error) {
	attrs := append([]attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", getHostname()),
		attribute.String("process.runtime.version", runtime.Version()),
	}, session.Attributes()...)

	return resource.New(ctx, resource.WithAttributes(attrs...))
}

// ConfigureHoneycomb points the OTLP exporter at Honeycomb.
// Headers are only set when an API key is given.
func ConfigureHoneycomb(apiKey, dataset string) {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)

	if dataset == "" {
		dataset = serviceName
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

// Tracer returns a named tracer for the given component.
// Use this to create spans within different parts of the application.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// Disable installs a no-op tracer provider so spans cost nothing.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
