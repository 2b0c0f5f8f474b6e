package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RotatingWriter is a file writer that rotates the log file into an old/
// directory once it grows past maxSize.
type RotatingWriter struct {
	f          *os.File
	path       string
	dir        string
	base       string
	maxSize    int64
	approxSize int64
	now        func() time.Time
}

// NewRotatingWriter opens path for appending. A file that already exceeds
// maxSize is rotated before the first write.
func NewRotatingWriter(path string, maxSize int64) (*RotatingWriter, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	w := &RotatingWriter{
		path:    path,
		dir:     filepath.Dir(path),
		base:    filepath.Base(path),
		maxSize: maxSize,
		now:     time.Now,
	}

	if err := w.openForAppend(); err != nil {
		return nil, err
	}

	if w.approxSize >= w.maxSize {
		if err := w.rotate(); err != nil {
			w.f.Close()
			return nil, err
		}
	}

	return w, nil
}

// Write implements io.Writer
func (w *RotatingWriter) Write(p []byte) (int, error) {
	if w.f == nil {
		return 0, os.ErrClosed
	}
	if w.approxSize > 0 && w.approxSize+int64(len(p)) >= w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.f.Write(p)
	w.approxSize += int64(n)
	return n, err
}

// Close closes the file
func (w *RotatingWriter) Close() error {
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

func (w *RotatingWriter) openForAppend() error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}

	w.f = f
	w.approxSize = fi.Size()
	return nil
}

// rotate moves the current file to old/<basename>.YYYYMMDD-HHMMSS and
// starts a fresh one
func (w *RotatingWriter) rotate() error {
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}

	oldDir := filepath.Join(w.dir, "old")
	if err := os.MkdirAll(oldDir, 0755); err != nil {
		return fmt.Errorf("creating old/ directory: %w", err)
	}

	archiveName := fmt.Sprintf("%s.%s", w.base, w.now().Format("20060102-150405"))
	_ = os.Rename(w.path, filepath.Join(oldDir, archiveName))

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating new log file: %w", err)
	}

	w.f = f
	w.approxSize = 0
	return nil
}
