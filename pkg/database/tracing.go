package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "cloud-console-be/pkg/database"

// TracingPlugin opens a client span around every gorm statement.
type TracingPlugin struct {
	tracer trace.Tracer
}

// NewTracingPlugin uses the global provider when tp is nil.
func NewTracingPlugin(tp trace.TracerProvider) *TracingPlugin {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &TracingPlugin{tracer: tp.Tracer(instrumentationName)}
}

func (p *TracingPlugin) Name() string {
	return "otel:tracing"
}

func (p *TracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("otel:before_create", p.before("gorm.create")),
		cb.Create().After("gorm:create").Register("otel:after_create", p.after),
		cb.Query().Before("gorm:query").Register("otel:before_query", p.before("gorm.query")),
		cb.Query().After("gorm:query").Register("otel:after_query", p.after),
		cb.Update().Before("gorm:update").Register("otel:before_update", p.before("gorm.update")),
		cb.Update().After("gorm:update").Register("otel:after_update", p.after),
		cb.Delete().Before("gorm:delete").Register("otel:before_delete", p.before("gorm.delete")),
		cb.Delete().After("gorm:delete").Register("otel:after_delete", p.after),
		cb.Row().Before("gorm:row").Register("otel:before_row", p.before("gorm.row")),
		cb.Row().After("gorm:row").Register("otel:after_row", p.after),
		cb.Raw().Before("gorm:raw").Register("otel:before_raw", p.before("gorm.raw")),
		cb.Raw().After("gorm:raw").Register("otel:after_raw", p.after),
	)
}

func (p *TracingPlugin) before(name string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		ctx, _ := p.tracer.Start(tx.Statement.Context, name, trace.WithSpanKind(trace.SpanKindClient))
		tx.Statement.Context = ctx
	}
}

func (p *TracingPlugin) after(tx *gorm.DB) {
	span := trace.SpanFromContext(tx.Statement.Context)
	if !span.IsRecording() {
		return
	}
	defer span.End()

	span.SetAttributes(
		semconv.DBSystemPostgreSQL,
		semconv.DBSQLTable(tx.Statement.Table),
		semconv.DBStatement(tx.Statement.SQL.String()),
		attribute.Int64("db.rows_affected", tx.Statement.RowsAffected),
	)
	if err := tx.Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
