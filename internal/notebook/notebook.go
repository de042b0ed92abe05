package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Kind is the type of a cell
type Kind int

const (
	// KindOther covers raw cells and any cell type this tool does not translate
	KindOther Kind = iota
	// KindMarkdown is a documentation cell
	KindMarkdown
	// KindCode is an executable cell
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindCode:
		return "code"
	default:
		return "other"
	}
}

// ParseKind maps a notebook cell_type to a Kind
func ParseKind(cellType string) Kind {
	switch cellType {
	case "markdown":
		return KindMarkdown
	case "code":
		return KindCode
	default:
		return KindOther
	}
}

// Cell is a single notebook cell
type Cell struct {
	Kind   Kind
	Type   string
	Source []string

	fields        map[string]json.RawMessage
	sourceChanged bool
}

// Text returns the full source of the cell
func (c *Cell) Text() string {
	return JoinSource(c.Source)
}

// SetText replaces the cell source, splitting it into line fragments
func (c *Cell) SetText(text string) {
	c.Source = SplitSource(text)
	c.sourceChanged = true
}

// Document is a notebook loaded into memory
type Document struct {
	Path  string
	Cells []*Cell

	fields map[string]json.RawMessage
	mode   os.FileMode
}

const defaultFileMode os.FileMode = 0644

// Load reads and parses the notebook at path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notebook: %w", err)
	}

	doc, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(path); err == nil {
		doc.mode = info.Mode().Perm()
	}
	return doc, nil
}

// Parse decodes notebook content; path is only used in error messages
func Parse(path string, data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, &ParseError{Path: path, Err: errors.New("content is not valid UTF-8")}
	}
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		if err == nil {
			err = errors.New("malformed JSON")
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	doc := &Document{Path: path, mode: defaultFileMode}
	if err := json.Unmarshal(data, &doc.fields); err != nil || doc.fields == nil {
		return nil, &StructureError{Path: path, Index: -1, Field: "document", Reason: "not a JSON object"}
	}

	rawCells, ok := doc.fields["cells"]
	if !ok {
		return doc, nil
	}

	var cells []json.RawMessage
	if err := json.Unmarshal(rawCells, &cells); err != nil {
		return nil, &StructureError{Path: path, Index: -1, Field: "cells", Reason: "not a list"}
	}

	for i, raw := range cells {
		cell, err := parseCell(path, i, raw)
		if err != nil {
			return nil, err
		}
		doc.Cells = append(doc.Cells, cell)
	}

	return doc, nil
}

func parseCell(path string, index int, raw json.RawMessage) (*Cell, error) {
	cell := &Cell{}
	if err := json.Unmarshal(raw, &cell.fields); err != nil || cell.fields == nil {
		return nil, &StructureError{Path: path, Index: index, Field: "cell", Reason: "not a JSON object"}
	}

	rawType, ok := cell.fields["cell_type"]
	if !ok {
		return nil, &StructureError{Path: path, Index: index, Field: "cell_type", Reason: "missing"}
	}
	if err := json.Unmarshal(rawType, &cell.Type); err != nil {
		return nil, &StructureError{Path: path, Index: index, Field: "cell_type", Reason: "not a string"}
	}
	cell.Kind = ParseKind(cell.Type)

	rawSource, ok := cell.fields["source"]
	if !ok {
		// Only the translated kinds need a source
		if cell.Kind == KindOther {
			return cell, nil
		}
		return nil, &StructureError{Path: path, Index: index, Field: "source", Reason: "missing"}
	}

	source, err := decodeSource(rawSource)
	if err != nil {
		return nil, &StructureError{Path: path, Index: index, Field: "source", Reason: err.Error()}
	}
	cell.Source = source

	return cell, nil
}

// decodeSource accepts both the list form and the single string form
func decodeSource(raw json.RawMessage) ([]string, error) {
	var fragments []string
	if err := json.Unmarshal(raw, &fragments); err == nil {
		return fragments, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return SplitSource(text), nil
	}

	return nil, errors.New("neither a string nor a list of strings")
}

// Marshal encodes the document with one-space indentation. Non-ASCII text
// is written as is so translated notebooks stay readable in their stored form.
func (d *Document) Marshal() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.fields)+1)
	for k, v := range d.fields {
		fields[k] = v
	}

	if _, ok := d.fields["cells"]; ok || len(d.Cells) > 0 {
		cells := make([]json.RawMessage, 0, len(d.Cells))
		for _, c := range d.Cells {
			raw, err := c.marshal()
			if err != nil {
				return nil, err
			}
			cells = append(cells, raw)
		}
		raw, err := encode(cells, false)
		if err != nil {
			return nil, err
		}
		fields["cells"] = raw
	}

	return encode(fields, true)
}

func (c *Cell) marshal() (json.RawMessage, error) {
	fields := make(map[string]json.RawMessage, len(c.fields))
	for k, v := range c.fields {
		fields[k] = v
	}

	if c.sourceChanged {
		source := c.Source
		if source == nil {
			source = []string{}
		}
		raw, err := encode(source, false)
		if err != nil {
			return nil, err
		}
		fields["source"] = raw
	}

	return encode(fields, false)
}

func encode(v any, indent bool) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", " ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode notebook: %w", err)
	}
	if !indent {
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}
	return buf.Bytes(), nil
}

// Save writes the document to path atomically: the content goes to a
// temporary file in the same directory which then replaces the target
func Save(doc *Document, path string) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	mode := doc.mode
	if mode == 0 {
		mode = defaultFileMode
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*.ipynb")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write notebook: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync notebook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close notebook: %w", err)
	}
	_ = os.Chmod(tmpPath, mode)

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace notebook: %w", err)
	}

	return nil
}
