package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// FileInfo represents information about a discovered instrument file.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides instrument file discovery operations.
type Discovery struct {
	pattern string
}

// NewDiscovery creates a file discovery instance matching file names
// against pattern (filepath.Match syntax, e.g. "*.txt").
func NewDiscovery(pattern string) *Discovery {
	return &Discovery{pattern: pattern}
}

// FindInstrumentFiles finds all instrument files in dir whose names
// match the configured pattern. Results are sorted by name so a
// directory input always produces the same batch order, and therefore
// the same worksheet row order.
func (d *Discovery) FindInstrumentFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var found []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		matched, err := filepath.Match(d.pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", d.pattern, err)
		}
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		found = append(found, FileInfo{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	return found, nil
}
