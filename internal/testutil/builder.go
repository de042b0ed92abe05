package testutil

import (
	"encoding/json"
	"strings"
)

// NotebookBuilder assembles notebook JSON for tests
type NotebookBuilder struct {
	cells []map[string]any
}

// NewNotebook starts an empty notebook
func NewNotebook() *NotebookBuilder {
	return &NotebookBuilder{}
}

// Markdown appends a markdown cell whose source is text split into lines
func (b *NotebookBuilder) Markdown(text string) *NotebookBuilder {
	return b.cell("markdown", text)
}

// Code appends a code cell whose source is text split into lines
func (b *NotebookBuilder) Code(text string) *NotebookBuilder {
	return b.cell("code", text)
}

// Raw appends a raw cell
func (b *NotebookBuilder) Raw(text string) *NotebookBuilder {
	return b.cell("raw", text)
}

func (b *NotebookBuilder) cell(cellType, text string) *NotebookBuilder {
	c := map[string]any{
		"cell_type": cellType,
		"metadata":  map[string]any{},
		"source":    lines(text),
	}
	if cellType == "code" {
		c["execution_count"] = nil
		c["outputs"] = []any{}
	}
	b.cells = append(b.cells, c)
	return b
}

// JSON returns the notebook in its stored form
func (b *NotebookBuilder) JSON() string {
	cells := b.cells
	if cells == nil {
		cells = []map[string]any{}
	}
	nb := map[string]any{
		"cells":          cells,
		"metadata":       map[string]any{},
		"nbformat":       4,
		"nbformat_minor": 5,
	}
	data, err := json.MarshalIndent(nb, "", " ")
	if err != nil {
		panic(err)
	}
	return string(data) + "\n"
}

func lines(text string) []string {
	out := []string{}
	if text == "" {
		return out
	}
	for _, l := range strings.SplitAfter(text, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
