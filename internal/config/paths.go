package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the application paths. This is the single source of
// truth for all file paths in the application.
type Paths struct {
	ExecutableDir string
	LogsDir       string
	ConfigFile    string
	StoreFile     string
}

// GetPaths returns the application paths relative to the executable
// location. All paths are always relative to the executable directory,
// never the current working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds a Paths rooted at baseDir. Used directly by tests and
// by GetPaths with the resolved executable directory.
func NewPaths(baseDir string) *Paths {
	return &Paths{
		ExecutableDir: baseDir,
		LogsDir:       filepath.Join(baseDir, "logs"),
		ConfigFile:    filepath.Join(baseDir, "alveo.yaml"),
		StoreFile:     filepath.Join(baseDir, StoreFileName),
	}
}

// EnsureDirectories creates all directories the application writes to.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.LogsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.LogsDir, err)
	}
	return nil
}

// GetLogPath returns the full path for a log file name.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
