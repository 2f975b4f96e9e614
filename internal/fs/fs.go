package fs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSystem extends afero.Fs with the operations mobiletest needs.
type FileSystem interface {
	afero.Fs

	// WriteFileAtomic writes data to path through a temporary file in the
	// same directory, creating parent directories as needed.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// IsDryRun reports whether writes are kept away from the real filesystem.
	IsDryRun() bool
}

// NewReal creates a FileSystem that performs actual filesystem operations.
func NewReal() FileSystem {
	return &RealFileSystem{
		Fs: afero.NewOsFs(),
	}
}

// NewDryRun creates a FileSystem that reads from disk but keeps writes in memory.
// Uses CopyOnWriteFs so a written report can still be read back.
func NewDryRun() FileSystem {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	layer := afero.NewMemMapFs()
	cow := afero.NewCopyOnWriteFs(base, layer)
	return &DryRunFileSystem{Fs: cow}
}

// NewMem creates an in-memory FileSystem for testing.
func NewMem() FileSystem {
	return &MemFileSystem{Fs: afero.NewMemMapFs()}
}

// writeAtomic writes to a temp file beside path and renames it into place.
func writeAtomic(afs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := afs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(afs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		afs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		afs.Remove(tmpName)
		return err
	}
	if err := afs.Chmod(tmpName, perm); err != nil {
		afs.Remove(tmpName)
		return err
	}
	if err := afs.Rename(tmpName, path); err != nil {
		afs.Remove(tmpName)
		return err
	}
	return nil
}
