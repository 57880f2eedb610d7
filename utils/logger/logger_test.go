package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInitLogger(t *testing.T) {
	log := InitLogger()
	if log == nil {
		t.Fatal("InitLogger() returned nil")
	}
	if Logger == nil {
		t.Fatal("package Logger not set")
	}
}

func TestContextLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	cl := NewContextLogger(base)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	ctx = context.WithValue(ctx, UserIDKey, "user-456")

	cl.WithContext(ctx).Info("hello")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-123") {
		t.Errorf("expected request_id in output, got %q", out)
	}
	if !strings.Contains(out, "user_id=user-456") {
		t.Errorf("expected user_id in output, got %q", out)
	}
}

func TestContextLogger_WithContext_BareContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	cl := NewContextLogger(base)

	cl.WithContext(context.Background()).Info("hello")

	out := buf.String()
	if strings.Contains(out, "request_id") || strings.Contains(out, "user_id") {
		t.Errorf("expected no request-scoped attrs, got %q", out)
	}
}
