package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Span attribute keys.
const (
	AttrOwnerID   = "owner.id"
	AttrOwnerName = "owner.name"
	AttrOwnerB    = "owner.other"
	AttrOwners    = "registry.owners"

	AttrRecordID   = "record.id"
	AttrRecordName = "record.name"
	AttrRecordB    = "record.other"
	AttrTreeSize   = "dex.size"

	AttrOutcome   = "fight.outcome"
	AttrCollided  = "evolve.collided"
	AttrAdded     = "merge.added"
	AttrDuplicate = "merge.duplicates"
	AttrFailed    = "merge.failed"

	AttrErrorMessage = "error.message"
)

// SpanPrefix namespaces every service operation span.
const SpanPrefix = "pokedex."

// Start opens an internal span named SpanPrefix+op. A nil tracer falls back
// to a no-op so callers never need to check.
func Start(ctx context.Context, tracer trace.Tracer, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	return tracer.Start(ctx, SpanPrefix+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// TraceID returns the hex trace ID of the span in ctx, or "" when none is recording.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
