package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "info", Format: "console", Output: &buf})

	lg.Debug("hidden")
	lg.With("component", "client").WithGroup("surface").Info("resized", "w", 800, "h", 600)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
	for _, want := range []string{"INFO ", "resized", "component=client", "surface.w=800", "surface.h=600"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("line not terminated: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: "debug", Format: "json", Output: &buf}).Debug("step", "frame", 3)
	if !strings.Contains(buf.String(), `"frame":3`) {
		t.Fatalf("unexpected json output %q", buf.String())
	}
}
