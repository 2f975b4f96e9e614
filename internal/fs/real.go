package fs

import (
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// RealFileSystem performs actual filesystem operations.
type RealFileSystem struct {
	afero.Fs
}

// WriteFileAtomic writes data to path on disk.
func (r *RealFileSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	slog.Debug("writing", "path", path, "bytes", len(data))
	return writeAtomic(r.Fs, path, data, perm)
}

// IsDryRun always returns false.
func (r *RealFileSystem) IsDryRun() bool {
	return false
}
