package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/bilingual/internal/notebook"
)

func TestReporter_English(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter(&buf, "en")
	require.NoError(t, err)

	_, parseErr := notebook.Parse("demos/b.ipynb", []byte(`{"cells": {}}`))
	require.Error(t, parseErr)

	r.Found(3)
	r.Updated("demos/a.ipynb")
	r.Failed("demos/b.ipynb", parseErr)
	r.Unchanged("demos/c.ipynb")
	r.Done(1, 3, []string{"demos/b.ipynb"})

	want := strings.Join([]string{
		"Found 3 notebooks",
		"  [OK] demos/a.ipynb",
		"  [ERR] demos/b.ipynb: cells: not a list",
		"  [--] demos/c.ipynb (no changes)",
		"",
		"Done: 1/3 notebooks updated",
		"Errors (1 files with invalid JSON):",
		"  - demos/b.ipynb",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestReporter_NoFailures(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter(&buf, "en")
	require.NoError(t, err)

	r.Done(0, 0, nil)
	assert.Equal(t, "\nDone: 0/0 notebooks updated\n", buf.String())
}

func TestReporter_Chinese(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter(&buf, "zh")
	require.NoError(t, err)

	r.Found(2)
	r.Unchanged("demos/a.ipynb")
	r.Done(0, 2, []string{"demos/b.ipynb"})

	out := buf.String()
	assert.Contains(t, out, "找到 2 个笔记本")
	assert.Contains(t, out, "  [--] demos/a.ipynb（无变化）")
	assert.Contains(t, out, "完成：已更新 0/2 个笔记本")
	assert.Contains(t, out, "  - demos/b.ipynb")
}

func TestReporter_RegionalTag(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter(&buf, "zh-CN")
	require.NoError(t, err)

	r.Found(1)
	assert.Equal(t, "找到 1 个笔记本\n", buf.String())
}

func TestNewReporter_InvalidLanguage(t *testing.T) {
	tests := []string{"", "not a tag!", "fr"}

	for _, lang := range tests {
		t.Run(lang, func(t *testing.T) {
			_, err := NewReporter(&bytes.Buffer{}, lang)
			assert.Error(t, err)
		})
	}
}
