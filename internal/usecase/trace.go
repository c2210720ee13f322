package usecase

import (
	"context"

	"github.com/riskibarqy/scout-market/internal/domain/user"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer   = otel.Tracer("scout-market/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only opens a child span when the caller is already traced,
// so background callers and tests pay nothing.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// startActorSpan tags the span with the acting user.
func startActorSpan(ctx context.Context, name string, actor user.Principal, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("enduser.id", actor.UserID),
		attribute.String("enduser.role", string(actor.Role)),
	)
	return startUsecaseSpan(ctx, name, attrs...)
}
