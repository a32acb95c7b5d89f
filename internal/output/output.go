// Package output persists a session report: the updated set and the invalid
// address log, each to its own file. Each file is written to a temporary
// sibling and renamed into place, so a failed write leaves any previous file
// untouched and never produces a truncated one.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"netupdate/internal/codec"
	"netupdate/internal/domain"

	"go.uber.org/zap"
)

// Sink names
const (
	SinkUpdated = "updated"
	SinkInvalid = "invalid"
)

// Result is the outcome of writing one sink
type Result struct {
	Sink string
	Path string
	Err  error
}

// Writer writes report sinks with a single exporter
type Writer struct {
	exporter    codec.Exporter
	updatedPath string
	invalidPath string
	logger      *zap.Logger
}

// New creates a writer
func New(exporter codec.Exporter, updatedPath, invalidPath string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		exporter:    exporter,
		updatedPath: updatedPath,
		invalidPath: invalidPath,
		logger:      logger,
	}
}

// WriteUpdated writes the updated set
func (w *Writer) WriteUpdated(report *domain.Report) error {
	return WriteFileAtomic(w.updatedPath, func(out io.Writer) error {
		return w.exporter.ExportTable(report.Updated, out)
	})
}

// WriteInvalid writes the invalid address log
func (w *Writer) WriteInvalid(report *domain.Report) error {
	return WriteFileAtomic(w.invalidPath, func(out io.Writer) error {
		return w.exporter.ExportList(report.InvalidIPs, out)
	})
}

// WriteAll writes both sinks. A failure on one does not stop the other.
func (w *Writer) WriteAll(report *domain.Report) []Result {
	results := []Result{
		{Sink: SinkUpdated, Path: w.updatedPath, Err: w.WriteUpdated(report)},
		{Sink: SinkInvalid, Path: w.invalidPath, Err: w.WriteInvalid(report)},
	}

	for _, r := range results {
		if r.Err != nil {
			w.logger.Warn("output not written",
				zap.String("sink", r.Sink),
				zap.String("path", r.Path),
				zap.Error(r.Err))
			continue
		}
		w.logger.Info("output written",
			zap.String("sink", r.Sink),
			zap.String("path", r.Path),
			zap.String("format", w.exporter.Format()))
	}
	return results
}

// WriteFileAtomic streams fn's output into a temp file next to path and
// renames it over path once fn and the flush succeed
func WriteFileAtomic(path string, fn func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fn(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
