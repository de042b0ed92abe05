package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListDocuments walks root/subdir recursively and returns every file with
// the given extension in lexicographic order. Hidden files and directories,
// such as .ipynb_checkpoints, are skipped. A missing subdir yields no paths.
func ListDocuments(root, subdir, ext string) ([]string, error) {
	base := filepath.Join(root, subdir)

	info, err := os.Stat(base)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", base)
	}

	var paths []string
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != base && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ext {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", base, err)
	}

	sort.Strings(paths)
	return paths, nil
}
