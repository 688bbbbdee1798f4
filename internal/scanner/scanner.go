// Package scanner enumerates candidate media files in a single directory.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// List returns the paths of regular entries in dir whose name ends with ext,
// compared case-insensitively. Subdirectories are not descended into.
// Entries are returned in os.ReadDir order.
func List(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	suffix := strings.ToLower(ext)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), suffix) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
