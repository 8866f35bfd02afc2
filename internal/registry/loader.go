package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flipd/internal/common/fsutil"
	"flipd/pkg/types"
)

// Scanner builds a sequence of items from the files of a directory.
type Scanner struct {
	// Extension filter including the dot (e.g. ".jpg"); empty accepts every file.
	// Matching is case-insensitive.
	Ext string
}

// NewScanner returns a Scanner for files with the given extension.
func NewScanner(ext string) Scanner {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return Scanner{Ext: strings.ToLower(ext)}
}

// Scan lists matching regular files of dir sorted by name. ID and Name are the
// filename; Path is the absolute file path. Hidden files are skipped.
func (s Scanner) Scan(dir string) ([]types.Item, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var items []types.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if s.Ext != "" && strings.ToLower(filepath.Ext(name)) != s.Ext {
			continue
		}
		items = append(items, types.Item{ID: name, Name: name, Path: filepath.Join(abs, name)})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// LoadDir scans dir for files with the given extension.
func LoadDir(dir, ext string) ([]types.Item, error) {
	return NewScanner(ext).Scan(dir)
}
