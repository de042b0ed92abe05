// Package linkfix repairs placeholder repository identifiers, such as the
// "OWNER/REPO" token left in Colab badge links, by rewriting them to the
// canonical owner/repository identifier.
package linkfix

import (
	"strings"

	"codeberg.org/snonux/bilingual/internal/phrases"
)

// Rewriter replaces placeholder identifiers with the canonical one
type Rewriter struct {
	canonical    string
	placeholders []string
}

// NewRewriter creates a rewriter from the link section of the tables
func NewRewriter(links phrases.Links) *Rewriter {
	return &Rewriter{
		canonical:    links.Canonical,
		placeholders: append([]string(nil), links.Placeholders...),
	}
}

// Canonical returns the identifier placeholders are rewritten to
func (r *Rewriter) Canonical() string {
	return r.canonical
}

// Rewrite replaces every occurrence of each placeholder, in declared order
func (r *Rewriter) Rewrite(text string) string {
	for _, p := range r.placeholders {
		text = strings.ReplaceAll(text, p, r.canonical)
	}
	return text
}
