package notebook

import "strings"

// JoinSource rebuilds the full text of a cell from its line fragments
func JoinSource(fragments []string) string {
	return strings.Join(fragments, "")
}

// SplitSource splits text into line fragments the way notebooks store them:
// every fragment except the last keeps its trailing newline
func SplitSource(text string) []string {
	fragments := strings.SplitAfter(text, "\n")
	if fragments[len(fragments)-1] == "" {
		fragments = fragments[:len(fragments)-1]
	}
	return fragments
}
