package model

import (
	"fmt"
	"strings"
)

// Format is a raster encoding the user may convert into.
type Format string

const (
	PNG  Format = "PNG"
	JPEG Format = "JPEG"
	BMP  Format = "BMP"
	GIF  Format = "GIF"
	TIFF Format = "TIFF"
	ICO  Format = "ICO"
	WEBP Format = "WEBP"
)

// Formats lists the selectable formats in display order. The first entry is the default.
var Formats = []Format{PNG, JPEG, BMP, GIF, TIFF, ICO, WEBP}

// DefaultFormat is preselected when the form opens.
const DefaultFormat = PNG

// InputExtensions are the file extensions offered by the source picker.
var InputExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tiff", ".tif", ".ico", ".webp"}

// Ext returns the lowercase extension for f, without a leading dot.
func (f Format) Ext() string {
	return strings.ToLower(string(f))
}

// Valid reports whether f is one of Formats.
func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat resolves a format name or file extension, case-insensitively.
func ParseFormat(raw string) (Format, error) {
	name := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(raw), "."))
	switch name {
	case "JPG":
		return JPEG, nil
	case "TIF":
		return TIFF, nil
	}

	f := Format(name)
	if !f.Valid() {
		return "", fmt.Errorf("unknown format %q", raw)
	}
	return f, nil
}

// Request is the triple consumed by the converter.
type Request struct {
	Source      string
	Destination string
	Format      Format
}
