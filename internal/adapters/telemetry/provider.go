package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/diffdirs/internal/core/ports"
)

// Install registers a global tracer provider that reports every ended span
// through logger. The returned function flushes and stops it.
func Install(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}
