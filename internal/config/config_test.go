package config

import (
	"flag"
	"io"
	"path/filepath"
	"testing"

	"picconv/internal/crashlog"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("picconv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Format != "PNG" || cfg.Quality != 95 || !cfg.Interactive || cfg.Overwrite {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if filepath.Base(cfg.ErrorLogPath) != crashlog.FileName {
		t.Fatalf("unexpected default error log: %q", cfg.ErrorLogPath)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parse(newFlagSet(), []string{
		"-input", "in.png",
		"-format", "webp",
		"-output", "out.webp",
		"-quality", "400",
		"-overwrite",
		"-interactive=false",
		"-accessible",
		"-error-log", "/var/log/picconv.txt",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Input != "in.png" || cfg.Format != "webp" || cfg.Output != "out.webp" {
		t.Fatalf("paths not parsed: %+v", cfg)
	}
	if cfg.Quality != 100 {
		t.Fatalf("expected quality clamp to 100, got %d", cfg.Quality)
	}
	if !cfg.Overwrite || cfg.Interactive || !cfg.Accessible {
		t.Fatalf("bool flags not parsed: %+v", cfg)
	}
	if cfg.ErrorLogPath != "/var/log/picconv.txt" {
		t.Fatalf("unexpected error log: %q", cfg.ErrorLogPath)
	}
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	if _, err := parse(newFlagSet(), []string{"-albums", "all"}); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}
