package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/bilingual/internal"
)

// BackupDocument copies the notebook at path into archiveDir before it is
// rewritten. The copy is named after the sanitized notebook path plus a
// unique backup ID so repeated runs never overwrite an earlier backup.
// It returns the path of the copy.
func BackupDocument(path, archiveDir string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open notebook for backup: %w", err)
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(path)
	base := internal.SanitizeFilename(strings.TrimSuffix(filepath.ToSlash(filepath.Clean(path)), ext))
	base = strings.TrimLeft(base, "_.")
	name := fmt.Sprintf("%s-%s%s", base, internal.GenerateBackupID(path), ext)
	backupPath := filepath.Join(archiveDir, name)

	// O_EXCL guards against two backups landing in the same millisecond
	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(backupPath)
		return "", fmt.Errorf("failed to copy notebook to backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(backupPath)
		return "", fmt.Errorf("failed to close backup file: %w", err)
	}

	return backupPath, nil
}
