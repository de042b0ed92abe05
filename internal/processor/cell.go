package processor

import (
	"codeberg.org/snonux/bilingual/internal/notebook"
	"codeberg.org/snonux/bilingual/internal/translation"
)

// TransformCell returns the converted source of a cell and whether it
// differs from the current source. The cell itself is not modified.
func TransformCell(tr *translation.Translator, cell *notebook.Cell) (string, bool) {
	text := cell.Text()

	var out string
	switch cell.Kind {
	case notebook.KindMarkdown:
		out = tr.TranslateMarkup(text)
	case notebook.KindCode:
		out = tr.TranslateCodeBlock(text)
	default:
		return text, false
	}

	return out, out != text
}
