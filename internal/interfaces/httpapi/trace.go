package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	apiTracer = otel.Tracer("scout-market/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startSpan opens a handler span under the request span. Untraced requests
// (health probes, metrics scrapes) get a noop span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}

	return apiTracer.Start(ctx, name, trace.WithAttributes(principalAttributes(ctx)...))
}

func principalAttributes(ctx context.Context) []attribute.KeyValue {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return nil
	}
	return []attribute.KeyValue{
		attribute.String("enduser.id", principal.UserID),
		attribute.String("enduser.role", string(principal.Role)),
	}
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// nameServerSpan renames the otelhttp server span after the matched route so
// span names stay low-cardinality.
func nameServerSpan(r *http.Request) {
	if r.Pattern == "" {
		return
	}
	span := trace.SpanFromContext(r.Context())
	if !span.IsRecording() {
		return
	}
	span.SetName(r.Pattern)
	span.SetAttributes(attribute.String("http.route", r.Pattern))
}
