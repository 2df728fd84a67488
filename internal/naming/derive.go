package naming

import (
	"path/filepath"
	"strings"

	"picconv/internal/model"
)

const (
	convertedSuffix = "_converted"
	untitledStem    = "untitled"
)

// Suggest returns <dir>/<stem>_converted.<ext> for a freshly picked source.
func Suggest(source string, format model.Format) string {
	return filepath.Join(filepath.Dir(source), stem(source)+convertedSuffix+"."+format.Ext())
}

// ReplaceExt swaps the extension of dest for the format's, keeping directory and stem.
func ReplaceExt(dest string, format model.Format) string {
	return filepath.Join(filepath.Dir(dest), stem(dest)+"."+format.Ext())
}

// SaveAsDefaults returns the initial directory and filename offered by the destination prompt.
func SaveAsDefaults(source string, format model.Format, home string) (dir, file string) {
	if strings.TrimSpace(source) == "" {
		return home, untitledStem + "." + format.Ext()
	}
	return filepath.Dir(source), stem(source) + convertedSuffix + "." + format.Ext()
}

// NormalizeSaveAs makes a chosen destination absolute and ensures it carries the format's extension.
func NormalizeSaveAs(path string, format model.Format) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	ext := "." + format.Ext()
	if !strings.HasSuffix(strings.ToLower(path), ext) {
		path += ext
	}
	return path
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
