package main

import (
	"strings"
	"testing"

	"picconv/internal/model"
)

func TestBuildStatePreviewEmpty(t *testing.T) {
	got := buildStatePreview("", model.PNG, "", "")
	want := "Input:  (none)\nFormat: PNG\nOutput: (none)"
	if got != want {
		t.Fatalf("unexpected preview:\n%s", got)
	}
}

func TestBuildStatePreviewWithSource(t *testing.T) {
	got := buildStatePreview("/tmp/photo.jpg", model.WEBP, "/tmp/photo_converted.webp", "JPEG, 4x4, 120 B\nCamera: X100V")

	for _, want := range []string{
		"Input:  /tmp/photo.jpg",
		"        JPEG, 4x4, 120 B",
		"        Camera: X100V",
		"Format: WEBP",
		"Output: /tmp/photo_converted.webp",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("preview missing %q:\n%s", want, got)
		}
	}
}

func TestFormatOptionsFollowFormats(t *testing.T) {
	options := formatOptions()
	if len(options) != len(model.Formats) {
		t.Fatalf("expected %d options, got %d", len(model.Formats), len(options))
	}
	for i, opt := range options {
		if opt.Value != model.Formats[i] || opt.Key != string(model.Formats[i]) {
			t.Fatalf("option %d mismatch: %+v", i, opt)
		}
	}
}
