// Package discover walks project paths to find source files the mutate
// command should operate on, grounded on the teacher's
// internal/adapter/source_fs_adapter.go Walk/FindProjectRoot helpers.
package discover

import (
	"os"
	"path/filepath"
	"strings"

	"gooze.dev/pkg/gooze/internal/cache"
)

// sourceExt is the file extension the target language's source files use.
const sourceExt = ".lean"

// Sources walks every root in roots, returning every *.lean file found,
// skipping hidden directories and the cache directory, and dropping any
// path containing one of the exclude substrings.
func Sources(roots []string, exclude []string) ([]string, error) {
	seen := make(map[string]struct{})

	var files []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if isSourceFile(root) && !excluded(root, exclude) {
				if _, ok := seen[root]; !ok {
					seen[root] = struct{}{}
					files = append(files, root)
				}
			}

			continue
		}

		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				base := filepath.Base(path)
				if path != root && (strings.HasPrefix(base, ".") || base == cache.DirName) {
					return filepath.SkipDir
				}

				return nil
			}

			if !isSourceFile(path) || excluded(path, exclude) {
				return nil
			}

			if _, ok := seen[path]; ok {
				return nil
			}

			seen[path] = struct{}{}
			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func isSourceFile(path string) bool {
	return filepath.Ext(path) == sourceExt
}

func excluded(path string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(path, p) {
			return true
		}
	}

	return false
}

// FindProjectRoot walks up from startPath looking for a lakefile.lean or
// lakefile.toml, the Lean project manifest, mirroring the teacher's
// go.mod-based FindProjectRoot.
func FindProjectRoot(startPath string) (string, error) {
	dir := startPath

	info, err := os.Stat(startPath)
	if err == nil && !info.IsDir() {
		dir = filepath.Dir(startPath)
	}

	for {
		if manifestExists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return startPath, nil
		}

		dir = parent
	}
}

func manifestExists(dir string) bool {
	for _, name := range []string{"lakefile.lean", "lakefile.toml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}

	return false
}
