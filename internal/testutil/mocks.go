package testutil

import (
	"fmt"
	"os"

	"codeberg.org/snonux/bilingual/internal/notebook"
)

// MockStore keeps notebooks in memory and records every call
type MockStore struct {
	Files      map[string][]byte
	LoadErrors map[string]error
	SaveErrors map[string]error
	Calls      []string
}

// NewMockStore creates a store holding the given notebooks
func NewMockStore(files map[string]string) *MockStore {
	m := &MockStore{
		Files:      make(map[string][]byte),
		LoadErrors: make(map[string]error),
		SaveErrors: make(map[string]error),
	}
	for path, content := range files {
		m.Files[path] = []byte(content)
	}
	return m
}

// Load mocks reading a notebook
func (m *MockStore) Load(path string) (*notebook.Document, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("LOAD %s", path))

	if err, ok := m.LoadErrors[path]; ok {
		return nil, err
	}

	data, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("failed to read notebook: %w", os.ErrNotExist)
	}
	return notebook.Parse(path, data)
}

// Save mocks writing a notebook
func (m *MockStore) Save(doc *notebook.Document, path string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("SAVE %s", path))

	if err, ok := m.SaveErrors[path]; ok {
		return err
	}

	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	m.Files[path] = data
	return nil
}

// Saved reports whether Save was called for path
func (m *MockStore) Saved(path string) bool {
	for _, c := range m.Calls {
		if c == "SAVE "+path {
			return true
		}
	}
	return false
}

// MockReporter records report events as plain strings
type MockReporter struct {
	Events []string
}

// Found mocks the discovery line
func (m *MockReporter) Found(total int) {
	m.Events = append(m.Events, fmt.Sprintf("found %d", total))
}

// Updated mocks an updated status line
func (m *MockReporter) Updated(path string) {
	m.Events = append(m.Events, "ok "+path)
}

// Unchanged mocks an unchanged status line
func (m *MockReporter) Unchanged(path string) {
	m.Events = append(m.Events, "unchanged "+path)
}

// Failed mocks a failure status line
func (m *MockReporter) Failed(path string, err error) {
	m.Events = append(m.Events, "err "+path)
}

// Done mocks the summary
func (m *MockReporter) Done(updated, total int, failed []string) {
	m.Events = append(m.Events, fmt.Sprintf("done %d/%d failed %d", updated, total, len(failed)))
}
