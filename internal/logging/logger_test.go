package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, env string) (*LogrusLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewWithWriter(&buf, env, "debug"), &buf
}

func TestLogrusLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t, "development")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"debug", "dbg", "a", "1"},
		{"info", "inf", "b", "2"},
		{"warning", "wrn", "c", "3"},
		{"error", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected attribute %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestLogrusLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t, "development")

	log.With("component", "contact").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=info", "msg=hello", "component=contact", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestLogrusLogger_ProductionWritesJSONWithRequestID(t *testing.T) {
	log, buf := newTestLogger(t, "production")
	ctx := WithRequestID(context.Background(), "rid-42")

	log.Error(ctx, "store failed", "error", errors.New("boom"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "rid-42" {
		t.Fatalf("expected request_id=rid-42, got %v", entry["request_id"])
	}
	if entry["error"] != "boom" {
		t.Fatalf("expected error=boom, got %v", entry["error"])
	}
}

func TestLogrusLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "development", "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info line should be filtered at warn level:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn line missing:\n%s", buf.String())
	}
}

func TestFields_OddArgs(t *testing.T) {
	f := fields([]any{"a", 1, "dangling"})
	if f["a"] != 1 {
		t.Fatalf("expected a=1, got %v", f["a"])
	}
	if f["!BADKEY"] != "dangling" {
		t.Fatalf("expected dangling value under !BADKEY, got %v", f["!BADKEY"])
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.With("a", 1).Error(ctx, "ctx-ok")
}
