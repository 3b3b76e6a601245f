// Package telemetry provides OpenTelemetry tracing exported over OTLP/HTTP.
package telemetry

import (
	"context"
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
	serviceName    = "dungeonwalk"
	serviceVersion = "0.1.0"
)

// Attribute keys shared by every component that records a generation.
const (
	KeyGenerationID = attribute.Key("generation.id")
	KeySeed         = attribute.Key("generation.seed")
	KeyPreset       = attribute.Key("generation.preset")
	KeyMode         = attribute.Key("dungeonwalk.mode")
)

// GenerationAttributes identifies one carved map on a span.
func GenerationAttributes(id string, seed int64, preset string) []attribute.KeyValue {
	return []attribute.KeyValue{
		KeyGenerationID.String(id),
		KeySeed.Int64(seed),
		KeyPreset.String(preset),
	}
}

// RunAttributes describes how the process was started. Setup attaches them
// to the resource so every span carries the configured preset and mode.
func RunAttributes(preset string, plain bool) []attribute.KeyValue {
	mode := "viewer"
	if plain {
		mode = "plain"
	}
	return []attribute.KeyValue{
		KeyPreset.String(preset),
		KeyMode.String(mode),
	}
}

// Setup installs a global tracer provider backed by an OTLP HTTP exporter,
// configured from the standard OTEL_* environment variables. The extra
// attributes are added to the resource.
//
// The returned shutdown function flushes pending spans.
func Setup(ctx context.Context, extra ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Not merged with resource.Default(): the schema URLs conflict.
	res, err := resource.New(ctx, resource.WithAttributes(resourceAttributes(extra)...))
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

func resourceAttributes(extra []attribute.KeyValue) []attribute.KeyValue {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	return append(attrs, extra...)
}

// Tracer returns a tracer named after the given component. Before Setup runs
// (and in tests) this is the no-op global provider.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a tracer that never records, regardless of Setup.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}
