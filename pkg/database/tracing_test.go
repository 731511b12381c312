package database

import (
	"testing"

	"cloud-console-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func tracedDryRunDB(t *testing.T) (*gorm.DB, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.Use(NewTracingPlugin(tp)))
	return db, recorder
}

func attributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestTracingPluginRecordsQuerySpan(t *testing.T) {
	db, recorder := tracedDryRunDB(t)

	var buckets []model.Bucket
	require.NoError(t, db.Where("name = ?", "logs").Find(&buckets).Error)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "gorm.query", span.Name())
	assert.Equal(t, trace.SpanKindClient, span.SpanKind())

	attrs := attributes(span)
	assert.Equal(t, "postgresql", attrs["db.system"].AsString())
	assert.Equal(t, "buckets", attrs["db.sql.table"].AsString())
	assert.Contains(t, attrs["db.statement"].AsString(), `FROM "buckets"`)
	assert.Contains(t, attrs["db.statement"].AsString(), "$1")
}

func TestTracingPluginNamesSpanPerOperation(t *testing.T) {
	db, recorder := tracedDryRunDB(t)

	require.NoError(t, db.Where("user_id = ?", "u").Delete(&model.Lambda{}).Error)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "gorm.delete", spans[0].Name())
	assert.Equal(t, "lambdas", attributes(spans[0])["db.sql.table"].AsString())
}

func TestTracingPluginName(t *testing.T) {
	assert.Equal(t, "otel:tracing", NewTracingPlugin(nil).Name())
}
