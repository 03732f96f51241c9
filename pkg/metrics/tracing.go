package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps span creation so connections can be traced without carrying
// OpenTelemetry types through the protocol packages.
type Tracer interface {
	// StartSpan starts a span; the returned SpanEnder must be called with
	// the outcome (nil on success).
	StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, SpanEnder)
}

// SpanEnder finishes a span, recording err when non-nil.
type SpanEnder func(err error)

// NoOpTracer is the default when tracing is not configured.
type NoOpTracer struct{}

// StartSpan returns the context unchanged and a no-op end function.
func (NoOpTracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, SpanEnder) {
	return ctx, func(error) {}
}

// OTelTracer backs Tracer with the global OpenTelemetry provider.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a tracer for the given service name.
func NewOTelTracer(serviceName string) *OTelTracer {
	if serviceName == "" {
		serviceName = "qosst-go"
	}
	return &OTelTracer{tracer: otel.Tracer(serviceName)}
}

// StartSpan starts an OpenTelemetry span.
func (t *OTelTracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, SpanEnder) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
		} else {
			span.SetStatus(otelcodes.Ok, "")
		}
		span.End()
	}
}
