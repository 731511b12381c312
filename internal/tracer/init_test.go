package tracer

import (
	"context"
	"testing"

	"cloud-console-be/internal/config"
	"cloud-console-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown := InitTracer(context.Background(), config.TracingConfig{Enabled: false}, logger.NewNop())

	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewProviderTagsServiceName(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := NewProvider("cloud-console-test", sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	var service string
	for _, kv := range spans[0].Resource().Attributes() {
		if kv.Key == semconv.ServiceNameKey {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "cloud-console-test", service)
}
