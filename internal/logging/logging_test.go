package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConfigure_JSONLevel(t *testing.T) {
	prev := L()
	t.Cleanup(func() { def.Store(prev) })

	var buf bytes.Buffer
	Configure(Options{Level: "warn", JSON: true, Output: &buf})

	L().Info("hidden")
	L().Warn("shown", "topic", "orders")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["msg"] != "shown" || rec["topic"] != "orders" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitFromEnv(t *testing.T) {
	prev := L()
	t.Cleanup(func() { def.Store(prev) })

	t.Setenv("KUI_LOG_LEVEL", "debug")
	t.Setenv("KUI_LOG_JSON", "true")
	InitFromEnv()
	if !L().Enabled(t.Context(), slog.LevelDebug) {
		t.Fatal("debug level not applied")
	}
}
