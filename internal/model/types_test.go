package model

import "testing"

func TestParseFormatAliases(t *testing.T) {
	cases := map[string]Format{
		"png":   PNG,
		"JPEG":  JPEG,
		"jpg":   JPEG,
		".TIF":  TIFF,
		"tiff":  TIFF,
		" webp": WEBP,
		".ico":  ICO,
	}
	for raw, want := range cases {
		got, err := ParseFormat(raw)
		if err != nil {
			t.Fatalf("ParseFormat(%q) failed: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q): got=%s want=%s", raw, got, want)
		}
	}
}

func TestParseFormatUnknown(t *testing.T) {
	if _, err := ParseFormat("heic"); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if _, err := ParseFormat(""); err == nil {
		t.Fatalf("expected error for empty format")
	}
}

func TestFormatExt(t *testing.T) {
	if got := JPEG.Ext(); got != "jpeg" {
		t.Fatalf("unexpected JPEG extension: %q", got)
	}
	if got := WEBP.Ext(); got != "webp" {
		t.Fatalf("unexpected WEBP extension: %q", got)
	}
}

func TestDefaultFormatIsFirst(t *testing.T) {
	if Formats[0] != DefaultFormat {
		t.Fatalf("default format should lead the list, got %s", Formats[0])
	}
	if Format("RAW").Valid() {
		t.Fatalf("RAW should not be valid")
	}
}
