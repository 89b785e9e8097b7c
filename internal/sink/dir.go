package sink

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Dir saves documents into a local directory.
type Dir struct {
	path string
}

// NewDir returns a Saver writing into path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the full path a file name is saved to.
func (d *Dir) Path(filename string) string {
	return filepath.Join(d.path, filepath.Base(filename))
}

// Save writes data atomically: to a temp file first, then renamed into place.
func (d *Dir) Save(data []byte, filename string) error {
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	path := d.Path(filename)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	slog.Info("saved calendar file", "path", path, "bytes", len(data))
	return nil
}
