// Package fs walks a corpus directory for source texts. Matched files
// are returned sorted by path so document ordinals are stable across
// index runs.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

type Walker struct {
	includes []string
	excludes []string
}

// NewWalker builds a walker over doublestar include/exclude globs,
// matched against paths relative to the walk root.
func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*.txt", "**/*.md"}
	}
	return &Walker{includes: includes, excludes: excludes}
}

type FileInfo struct {
	Path    string
	ModTime int64
}

// Walk returns the matched files under root, sorted by path.
func (w *Walker) Walk(root string) ([]FileInfo, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if w.matchesAny(w.excludes, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if w.matchesAny(w.includes, rel) && !w.matchesAny(w.excludes, rel) {
			info, err := d.Info()
			if err != nil {
				return err
			}
			files = append(files, FileInfo{Path: path, ModTime: info.ModTime().Unix()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (w *Walker) matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}

// ReadFile reads a corpus file as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
