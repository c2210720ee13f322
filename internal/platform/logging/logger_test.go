package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &out))
	return out
}

func TestNew_WritesServiceFieldsAndArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Service: "scout-market-api", Env: "dev", Output: &buf})

	logger.Info("advertisement created", "advertisement_id", "ad-1", "error", errors.New("boom"))

	line := decodeLine(t, &buf)
	assert.Equal(t, "advertisement created", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "scout-market-api", line["service"])
	assert.Equal(t, "dev", line["env"])
	assert.Equal(t, "ad-1", line["advertisement_id"])
	assert.Equal(t, "boom", line["error"])
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestInfoContext_AddsTraceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Output: &buf})

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "with trace")

	line := decodeLine(t, &buf)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", line["trace_id"])
	assert.Equal(t, "0102030405060708", line["span_id"])
}

func TestZapFields_OddArgs(t *testing.T) {
	fields := zapFields([]any{"a", 1, "dangling"})
	require.Len(t, fields, 2)
	assert.Equal(t, "dangling", fields[1].Key)
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("nil receiver")
	})
}

func TestContextWith_AddsFieldsToContextCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf})

	ctx := ContextWith(context.Background(), "user_id", "user-1")
	ctx = ContextWith(ctx, "chat_id", "chat-9")
	logger.InfoContext(ctx, "message sent")

	line := decodeLine(t, &buf)
	assert.Equal(t, "user-1", line["user_id"])
	assert.Equal(t, "chat-9", line["chat_id"])

	buf.Reset()
	logger.Info("no context")
	assert.NotContains(t, decodeLine(t, &buf), "user_id")
}

func TestContextWith_NoArgsKeepsContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, ContextWith(ctx))
}
