package processor

import (
	"context"
	"fmt"
	"log/slog"

	"codeberg.org/snonux/bilingual/internal/archive"
	"codeberg.org/snonux/bilingual/internal/notebook"
	"codeberg.org/snonux/bilingual/internal/translation"
)

// Status is the outcome of processing a single notebook
type Status int

const (
	// StatusUnchanged means no cell needed a conversion
	StatusUnchanged Status = iota
	// StatusUpdated means at least one cell changed and the notebook was written
	StatusUpdated
	// StatusFailed means the notebook could not be parsed
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	default:
		return "unchanged"
	}
}

// Store loads and saves notebooks
type Store interface {
	Load(path string) (*notebook.Document, error)
	Save(doc *notebook.Document, path string) error
}

// FileStore is the Store backed by the local file system
type FileStore struct{}

// Load reads the notebook at path
func (FileStore) Load(path string) (*notebook.Document, error) {
	return notebook.Load(path)
}

// Save writes doc to path atomically
func (FileStore) Save(doc *notebook.Document, path string) error {
	return notebook.Save(doc, path)
}

// Reporter receives progress of a run
type Reporter interface {
	Found(total int)
	Updated(path string)
	Unchanged(path string)
	Failed(path string, err error)
	Done(updated, total int, failed []string)
}

// Options control how documents are written
type Options struct {
	// DryRun reports changes without writing any file
	DryRun bool
	// BackupDir receives a copy of every notebook before it is overwritten.
	// Empty disables backups.
	BackupDir string
}

// Summary counts the results of a run
type Summary struct {
	Total     int
	Updated   int
	Unchanged int
	Failed    []string
}

// Processor converts notebooks to their bilingual form
type Processor struct {
	translator *translation.Translator
	store      Store
	reporter   Reporter
	logger     *slog.Logger
	opts       Options
}

// NewProcessor creates a new notebook processor
func NewProcessor(tr *translation.Translator, store Store, reporter Reporter, logger *slog.Logger, opts Options) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		translator: tr,
		store:      store,
		reporter:   reporter,
		logger:     logger,
		opts:       opts,
	}
}

// ProcessDocument converts a single notebook. Document errors (invalid JSON
// or an invalid notebook shape) are returned with StatusFailed; the caller
// decides whether to continue.
func (p *Processor) ProcessDocument(path string) (Status, error) {
	doc, err := p.store.Load(path)
	if err != nil {
		if notebook.IsDocumentError(err) {
			return StatusFailed, err
		}
		return StatusFailed, fmt.Errorf("failed to load %s: %w", path, err)
	}

	changed := 0
	for i, cell := range doc.Cells {
		out, ok := TransformCell(p.translator, cell)
		if !ok {
			continue
		}
		p.logger.Debug("cell changed", "path", path, "index", i, "kind", cell.Kind.String())
		cell.SetText(out)
		changed++
	}

	if changed == 0 {
		return StatusUnchanged, nil
	}

	if p.opts.DryRun {
		p.logger.Debug("dry run, not writing", "path", path, "cells", changed)
		return StatusUpdated, nil
	}

	if p.opts.BackupDir != "" {
		backupPath, err := archive.BackupDocument(path, p.opts.BackupDir)
		if err != nil {
			return StatusFailed, fmt.Errorf("failed to back up %s: %w", path, err)
		}
		p.logger.Debug("notebook backed up", "path", path, "backup", backupPath)
	}

	if err := p.store.Save(doc, path); err != nil {
		return StatusFailed, fmt.Errorf("failed to save %s: %w", path, err)
	}
	p.logger.Debug("notebook written", "path", path, "cells", changed)

	return StatusUpdated, nil
}

// ProcessAll converts the notebooks in paths in the given order. A document
// error is reported and the run moves on to the next notebook. Any other
// error, or a cancelled context, stops the run and is returned.
func (p *Processor) ProcessAll(ctx context.Context, paths []string) (Summary, error) {
	summary := Summary{Total: len(paths)}
	p.reporter.Found(len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("processing interrupted: %w", err)
		}

		status, err := p.ProcessDocument(path)
		switch {
		case err != nil && notebook.IsDocumentError(err):
			p.logger.Debug("notebook skipped", "path", path, "error", err)
			summary.Failed = append(summary.Failed, path)
			p.reporter.Failed(path, err)
		case err != nil:
			return summary, err
		case status == StatusUpdated:
			summary.Updated++
			p.reporter.Updated(path)
		default:
			summary.Unchanged++
			p.reporter.Unchanged(path)
		}
	}

	p.reporter.Done(summary.Updated, summary.Total, summary.Failed)
	return summary, nil
}
