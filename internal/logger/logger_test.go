package logger

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs f with os.Stdout redirected to a pipe and returns the output.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()

	_ = w.Close()
	b, _ := io.ReadAll(r)
	_ = r.Close()
	return string(b)
}

func lastNonEmptyLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}

func TestLogger_IncludesServiceField(t *testing.T) {
	out := captureStdout(t, func() {
		log := New("test-service", "info")
		log.Info().Msg("hello")
	})

	line := lastNonEmptyLine(out)
	if line == "" {
		t.Fatalf("no output captured")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("invalid json log: %v\n%s", err, line)
	}
	if svc, ok := payload["service"].(string); !ok || svc != "test-service" {
		t.Fatalf("expected service=\"test-service\", got %v", payload["service"])
	}
	if lvl, ok := payload["level"].(string); !ok || lvl != "info" {
		t.Fatalf("expected level=\"info\", got %v", payload["level"])
	}
}

func TestLogger_LevelFiltersOutput(t *testing.T) {
	out := captureStdout(t, func() {
		log := New("test-service", "error")
		log.Info().Msg("suppressed")
	})
	if strings.TrimSpace(out) != "" {
		t.Fatalf("info log should be suppressed at error level: %s", out)
	}
}

func TestLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	out := captureStdout(t, func() {
		log := New("test-service", "chatty")
		log.Info().Msg("visible")
	})
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected info output with fallback level")
	}
}
