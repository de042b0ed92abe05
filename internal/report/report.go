package report

import (
	"embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"codeberg.org/snonux/bilingual/internal/notebook"
)

//go:embed active.*.toml
var localeFS embed.FS

var catalogs = []string{"active.en.toml", "active.zh.toml"}

// Styles holds the styles of the status tags
type Styles struct {
	OK      lipgloss.Style
	Skipped lipgloss.Style
	Error   lipgloss.Style
	Heading lipgloss.Style
}

// NewStyles creates the tag styles for a renderer. A renderer writing to
// something other than a terminal produces plain text.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		OK:      r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Skipped: r.NewStyle().Foreground(lipgloss.Color("8")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Heading: r.NewStyle().Bold(true),
	}
}

// Reporter writes the run report to w
type Reporter struct {
	w         io.Writer
	localizer *i18n.Localizer
	styles    Styles
}

// NewReporter creates a reporter printing in the given language
func NewReporter(w io.Writer, lang string) (*Reporter, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid report language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range catalogs {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	if !supported(bundle, tag) {
		return nil, fmt.Errorf("unsupported report language %q", lang)
	}

	return &Reporter{
		w:         w,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		styles:    NewStyles(lipgloss.NewRenderer(w)),
	}, nil
}

func supported(bundle *i18n.Bundle, tag language.Tag) bool {
	base, _ := tag.Base()
	for _, t := range bundle.LanguageTags() {
		if b, _ := t.Base(); b == base {
			return true
		}
	}
	return false
}

func (r *Reporter) message(id string, data map[string]any) string {
	msg, err := r.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

func (r *Reporter) status(tag string, style lipgloss.Style, msg string) {
	_, _ = fmt.Fprintf(r.w, "  %s %s\n", style.Render(tag), msg)
}

// Found prints the number of notebooks about to be processed
func (r *Reporter) Found(total int) {
	_, _ = fmt.Fprintln(r.w, r.message("Found", map[string]any{"Count": total}))
}

// Updated prints the status line of a converted notebook
func (r *Reporter) Updated(path string) {
	r.status("[OK]", r.styles.OK, r.message("Updated", map[string]any{"Path": path}))
}

// Unchanged prints the status line of a notebook without changes
func (r *Reporter) Unchanged(path string) {
	r.status("[--]", r.styles.Skipped, r.message("Unchanged", map[string]any{"Path": path}))
}

// Failed prints the status line of a notebook that could not be processed
func (r *Reporter) Failed(path string, err error) {
	r.status("[ERR]", r.styles.Error, r.message("Failed", map[string]any{
		"Path":   path,
		"Reason": notebook.Reason(err),
	}))
}

// Done prints the summary and lists the notebooks that failed
func (r *Reporter) Done(updated, total int, failed []string) {
	_, _ = fmt.Fprintf(r.w, "\n%s\n", r.message("Done", map[string]any{
		"Updated": updated,
		"Total":   total,
	}))

	if len(failed) == 0 {
		return
	}

	header := r.message("ErrorsHeader", map[string]any{"Count": len(failed)})
	_, _ = fmt.Fprintln(r.w, r.styles.Heading.Render(header))
	for _, path := range failed {
		_, _ = fmt.Fprintf(r.w, "  - %s\n", path)
	}
}
