// Package validation provides filesystem validation shared by the CLI
// commands: input files must exist and be readable, and the output
// location must be writable, before a batch is started.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileValidator provides common file validation functions.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateInputFiles validates that every input path names an existing
// regular file.
func (v *FileValidator) ValidateInputFiles(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no input files selected")
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			v.logger.Error("Input file does not exist",
				slog.String("path", path))
			return fmt.Errorf("input file %s does not exist", path)
		}
		if err != nil {
			v.logger.Error("Failed to stat input file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to stat input file %s: %w", path, err)
		}
		if info.IsDir() {
			v.logger.Error("Input path is a directory",
				slog.String("path", path))
			return fmt.Errorf("%s is a directory, not an instrument file", path)
		}
	}

	v.logger.Info("Input files validated",
		slog.Int("file_count", len(paths)))
	return nil
}

// ValidateOutputPath ensures the output file's directory exists or can
// be created and is writable.
func (v *FileValidator) ValidateOutputPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	// Verify the directory is writable by creating a probe file.
	probe := filepath.Join(dir, ".write_test")
	file, err := os.Create(probe)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(probe)

	return nil
}
