package fs

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DryRunFileSystem simulates writes without modifying the real filesystem.
type DryRunFileSystem struct {
	afero.Fs
}

// WriteFileAtomic writes into the in-memory layer only.
// CoW cannot rename over files that exist only in the base layer, so the
// file is written directly instead of through a temp file.
func (d *DryRunFileSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	slog.Info("[DRY-RUN] would write", "path", path, "bytes", len(data))
	if err := d.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(d.Fs, path, data, perm)
}

// IsDryRun always returns true.
func (d *DryRunFileSystem) IsDryRun() bool {
	return true
}
