package crashlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestWriteIncludesMessageAndStack(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	if err := Write(path, errors.New("terminal unavailable")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	text := string(b)
	if !strings.HasPrefix(text, "Error: terminal unavailable\n") {
		t.Fatalf("unexpected log header: %q", text)
	}
	if !strings.Contains(text, "crashlog_test.go") {
		t.Fatalf("log should contain a stack trace:\n%s", text)
	}
}

func TestWriteAddsStackToPlainErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	if err := Write(path, os.ErrPermission); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(b), "crashlog.go") {
		t.Fatalf("expected stack frames in log:\n%s", b)
	}
}

func TestWritePanicReplacesPreviousLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("old contents"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := WritePanic(path, "index out of range", []byte("goroutine 1 [running]:\n")); err != nil {
		t.Fatalf("WritePanic failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := "Error: index out of range\ngoroutine 1 [running]:\n"
	if string(b) != want {
		t.Fatalf("unexpected log contents: %q", b)
	}
}
