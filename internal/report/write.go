package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrWrite marks failures to write the report destination.
var ErrWrite = errors.New("cannot write report")

// reportPerm is the mode of written report files.
const reportPerm = 0o644

// WriteFile writes data to path using write-to-temp-then-rename, so the
// destination either holds the complete report or is left untouched.
// The temp file is created in the same directory as path.
func WriteFile(path string, data []byte) error {
	if err := atomicWrite(path, data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}

// atomicWrite writes data to a temp file next to path and renames it into place.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".qareport-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Chmod(reportPerm); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
