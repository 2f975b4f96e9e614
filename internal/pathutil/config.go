package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReportFileName is the name of the report written by a default run.
const ReportFileName = "mobile-test-report.json"

// ExecutableDir returns the directory containing the running binary.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot determine executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// DefaultReportPath returns the report path beside the executable.
func DefaultReportPath() (string, error) {
	dir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ReportFileName), nil
}

// InTempDir reports whether path lies under the system temp directory,
// where "go run" places its binaries.
func InTempDir(path string) bool {
	tmp := os.TempDir()
	roots := []string{tmp}
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil && resolved != tmp {
		roots = append(roots, resolved)
	}
	for _, root := range roots {
		if within(filepath.Clean(root), filepath.Clean(path)) {
			return true
		}
	}
	return false
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
