package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf)

	lg.Infof("converted %s", "a.png")
	lg.Warnf("destination exists")
	lg.Errorf("encode %s: %v", "webp", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "INFO  converted a.png") {
		t.Fatalf("unexpected info line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARN  destination exists") {
		t.Fatalf("unexpected warn line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "ERROR encode webp: boom") {
		t.Fatalf("unexpected error line: %q", lines[2])
	}
}
