package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/diffdirs/internal/adapters/telemetry"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func TestOTelTracer_Attributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "session.build")
	span.SetAttribute("mode", "two-way")
	span.SetAttribute("paths", 3)
	span.SetAttribute("rebuilt", true)
	span.SetAttribute("size", int64(7))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("files", []string{"a", "b"})
	span.SetAttribute("other", struct{ N int }{N: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "session.build", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("mode", "two-way"),
		attribute.Int("paths", 3),
		attribute.Bool("rebuilt", true),
		attribute.Int64("size", 7),
		attribute.Float64("ratio", 0.5),
		attribute.StringSlice("files", []string{"a", "b"}),
		attribute.String("other", "{1}"),
	}, spans[0].Attributes())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "session.jump")
	span.RecordError(errors.New("invalid diff path"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "invalid diff path", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, child := tracer.Start(ctx, "child")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test")
	assert.Equal(t, ctx, newCtx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
