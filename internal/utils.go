package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// GenerateBackupID creates a unique ID for a notebook backup based on the
// current time and the notebook path.
// Format: epochMillis_md5(path)[:8]
func GenerateBackupID(path string) string {
	epochMillis := time.Now().UnixMilli()

	hash := md5.Sum([]byte(path))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isFilenameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// isFilenameRune checks if a rune may appear in a backup file name as is.
// Letters of any script are allowed since notebook names are often Chinese.
func isFilenameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.'
}
