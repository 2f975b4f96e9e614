package fs

import (
	"os"

	"github.com/spf13/afero"
)

// MemFileSystem is an in-memory filesystem for testing.
// Unlike DryRunFileSystem, it performs no logging.
type MemFileSystem struct {
	afero.Fs
}

// WriteFileAtomic writes data to path in memory.
func (m *MemFileSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return writeAtomic(m.Fs, path, data, perm)
}

// IsDryRun always returns false.
func (m *MemFileSystem) IsDryRun() bool {
	return false
}
