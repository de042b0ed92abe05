package batch

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ReadBatchFile reads notebook paths from a file, one per line.
// Blank lines and lines starting with '#' are ignored. The result is sorted
// and free of duplicates so a run always visits notebooks in the same order.
func ReadBatchFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	seen := make(map[string]bool)
	var paths []string

	for _, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		paths = append(paths, line)
	}

	sort.Strings(paths)
	return paths, nil
}

// splitLines splits a string by newlines, dropping carriage returns
func splitLines(s string) []string {
	var lines []string
	var current strings.Builder
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current.String())
			current.Reset()
		} else if r != '\r' {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
