package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/scout-market/internal/domain/user"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.ListProblems", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeJSON", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartSpan_NoParentIsNoop(t *testing.T) {
	ctx, span := startSpan(t.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if ctx != t.Context() {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span without a parent")
	}
}

func TestNameServerSpan_UsesRoutePattern(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	ctx, span := provider.Tracer("test").Start(t.Context(), "GET /api/problems/42")
	req := httptest.NewRequest(http.MethodGet, "/api/problems/42", nil).WithContext(ctx)
	req.Pattern = "GET /api/problems/{id}"

	nameServerSpan(req)
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected one ended span, got %d", len(ended))
	}
	if ended[0].Name() != "GET /api/problems/{id}" {
		t.Fatalf("unexpected span name %q", ended[0].Name())
	}
}

func TestPrincipalAttributes(t *testing.T) {
	if attrs := principalAttributes(t.Context()); attrs != nil {
		t.Fatalf("expected no attributes without a principal, got %v", attrs)
	}

	ctx := withPrincipal(t.Context(), user.Principal{UserID: "user-1", Role: user.RoleAdmin})
	got := map[string]string{}
	for _, kv := range principalAttributes(ctx) {
		got[string(kv.Key)] = kv.Value.AsString()
	}
	if got["enduser.id"] != "user-1" || got["enduser.role"] != "admin" {
		t.Fatalf("unexpected attributes %v", got)
	}
}

