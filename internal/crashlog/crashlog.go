package crashlog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileName is the log written next to the executable on fatal errors.
const FileName = "error_log.txt"

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// DefaultPath places the log beside the running executable, falling back to the working directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Write records err and its stack trace at path, replacing any previous log.
func Write(path string, err error) error {
	if _, ok := err.(stackTracer); !ok {
		err = errors.WithStack(err)
	}
	return writeFile(path, fmt.Sprintf("Error: %v\n%+v\n", err, err))
}

// WritePanic records a recovered panic value together with the goroutine stack.
func WritePanic(path string, recovered any, stack []byte) error {
	return writeFile(path, fmt.Sprintf("Error: %v\n%s", recovered, stack))
}

func writeFile(path, body string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create error log parent dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temporary error log: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temporary error log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temporary error log: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace error log: %w", err)
	}
	return nil
}
