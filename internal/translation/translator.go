package translation

import (
	"regexp"
	"strings"

	"codeberg.org/snonux/bilingual/internal/linkfix"
	"codeberg.org/snonux/bilingual/internal/phrases"
)

type headingLevel int

const (
	notHeading headingLevel = iota
	headingOne
	headingTwo
)

// Translator turns Chinese headings and code comments into their bilingual form
type Translator struct {
	tables     *phrases.Tables
	links      *linkfix.Rewriter
	experiment *regexp.Regexp
}

// NewTranslator creates a new translator over the given tables
func NewTranslator(tables *phrases.Tables) *Translator {
	label := regexp.QuoteMeta(tables.Experiment.Label)
	return &Translator{
		tables:     tables,
		links:      linkfix.NewRewriter(tables.Links),
		experiment: regexp.MustCompile(`^(` + label + `\s*\d+)\s*[:：]\s*(.*)`),
	}
}

// RewriteLinks repairs placeholder repository identifiers in text
func (t *Translator) RewriteLinks(text string) string {
	return t.links.Rewrite(text)
}

// TranslateMarkup translates a whole markdown block line by line.
// A heading whose English rendering already sits on the line above is left
// alone, which keeps the conversion idempotent.
func (t *Translator) TranslateMarkup(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		translated := t.TranslateMarkupLine(line)
		if len(translated) == 2 && len(out) > 0 && out[len(out)-1] == translated[0] {
			out = append(out, t.links.Rewrite(line))
			continue
		}
		out = append(out, translated...)
	}

	return strings.Join(out, "\n")
}

// TranslateMarkupLine returns the lines that replace a single markdown line.
// Plain lines and headings without Chinese text come back unchanged.
func (t *Translator) TranslateMarkupLine(line string) []string {
	line = t.links.Rewrite(line)

	level, rest := classifyHeading(line)
	if level == notHeading || !ContainsCJK(line) {
		return []string{line}
	}

	text := strings.TrimSpace(rest)

	switch level {
	case headingOne:
		entry, ok := t.tables.LookupTitle(text)
		if !ok {
			return []string{line}
		}
		return []string{"# " + entry.English, "# " + text}

	case headingTwo:
		english, ok := t.translateSubheading(text)
		if !ok {
			return []string{line}
		}
		// The original stays as an HTML comment so it does not render as a second heading
		return []string{"## " + english, "<!-- " + text + " -->"}
	}

	return []string{line}
}

// translateSubheading resolves the English text of a level-2 heading.
// It reports false when nothing in the heading could be translated.
func (t *Translator) translateSubheading(text string) (string, bool) {
	if entry, ok := t.tables.LookupTitle(text); ok && entry.English != text {
		return entry.English, true
	}

	if m := t.experiment.FindStringSubmatch(text); m != nil {
		rest := t.tables.ApplyPhrases(m[2])
		if rest == m[2] {
			return "", false
		}
		label := strings.Replace(m[1], t.tables.Experiment.Label, t.tables.Experiment.English, 1)
		return label + ": " + rest, true
	}

	english := t.tables.ApplyPhrases(text)
	return english, english != text
}

// TranslateCodeBlock repairs links and replaces known comments in a code cell.
// Patterns are plain text substitutions, so a match inside a string literal
// is replaced as well.
func (t *Translator) TranslateCodeBlock(text string) string {
	text = t.links.Rewrite(text)
	for _, c := range t.tables.Comments {
		text = c.Regexp().ReplaceAllString(text, c.Replacement)
	}
	return text
}

func classifyHeading(line string) (headingLevel, string) {
	switch {
	case strings.HasPrefix(line, "# "):
		return headingOne, line[len("# "):]
	case strings.HasPrefix(line, "## "):
		return headingTwo, line[len("## "):]
	default:
		return notHeading, ""
	}
}
