package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestStartDisabledIsNoop(t *testing.T) {
	shutdown, err := Start(context.Background(), Config{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.False(t, Config{Endpoint: "  "}.Enabled())
	assert.True(t, Config{Endpoint: "localhost:4318"}.Enabled())
}

func TestSetTracerProviderRecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	SetTracerProvider(tp)
	t.Cleanup(func() { SetTracerProvider(noop.NewTracerProvider()) })

	_, span := Tracer.Start(context.Background(), "quiz.generate")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "quiz.generate", spans[0].Name)
}
