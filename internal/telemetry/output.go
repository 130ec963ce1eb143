package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Writer appends window stats as CSV rows, writing the header once.
type Writer struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewWriter writes CSV to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Create opens path for writing, creating parent directories.
// An empty path returns a nil writer, which discards everything.
func Create(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Writer{out: f, closer: f}, nil
}

// Write appends one record.
func (w *Writer) Write(stats WindowStats) error {
	if w == nil {
		return nil
	}
	records := []WindowStats{stats}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the writer owns one.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
