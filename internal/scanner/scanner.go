// Package scanner enumerates candidate media files under a library root.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DefaultExtensions returns the media file extensions checked by default.
func DefaultExtensions() []string {
	return []string{".mkv", ".mp4", ".avi"}
}

// Options controls which files a scan collects.
type Options struct {
	// Extensions is the set of file extensions to include (with leading
	// dot, case-insensitive). Empty means DefaultExtensions.
	Extensions []string
}

// Scan walks root recursively and returns every file whose extension is in
// the configured set, sorted lexicographically for deterministic processing
// order. A walk error is fatal: enumeration is the one place where a
// filesystem failure aborts the whole run.
func Scan(fsys afero.Fs, root string, opts Options) ([]string, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	include := make(map[string]bool, len(exts))
	for _, ext := range exts {
		include[strings.ToLower(ext)] = true
	}

	var files []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if include[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}
