package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":               false,
		" /metrics ":             false,
		"/openapi.yaml":          false,
		"/openapi.json":          false,
		"/docs":                  false,
		"/docs/index.html":       false,
		"/api/problems":          true,
		"/api/users/me":          true,
		"/api/messages/chat/c-1": true,
		"/":                      true,
	}

	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q) = %v, want %v", path, got, want)
		}
	}
}
