// Package sink holds the file-writing collaborator used by the engines' File
// operations.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
)

// Writer persists rendered output. Implementations make sure every directory
// in path exists and replace any existing content.
type Writer interface {
	WriteFile(path, content string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(path, content string) error

// WriteFile calls f.
func (f WriterFunc) WriteFile(path, content string) error {
	return f(path, content)
}

// AtomicWriter writes through a temp file and rename, so readers only ever see
// the old or the new content.
type AtomicWriter struct {
	// DirMode is used for missing parent directories. Zero means 0o755.
	DirMode os.FileMode
}

var _ Writer = AtomicWriter{}

// WriteFile creates the parent directories of path and writes content.
func (w AtomicWriter) WriteFile(path, content string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("sink: path is required")
	}
	mode := w.DirMode
	if mode == 0 {
		mode = 0o755
	}
	if err := os.MkdirAll(filepath.Dir(path), mode); err != nil {
		return fmt.Errorf("sink: create directory for %q: %w", path, err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("sink: write %q: %w", path, err)
	}
	return nil
}

// MemoryWriter records writes in memory. Useful in tests and dry runs.
type MemoryWriter struct {
	mu    sync.RWMutex
	files map[string]string
	order []string
}

// NewMemoryWriter returns an empty in-memory writer.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: make(map[string]string)}
}

// WriteFile stores content under the cleaned path.
func (w *MemoryWriter) WriteFile(path, content string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("sink: path is required")
	}
	key := filepath.Clean(path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files == nil {
		w.files = make(map[string]string)
	}
	if _, exists := w.files[key]; !exists {
		w.order = append(w.order, key)
	}
	w.files[key] = content
	return nil
}

// File returns the content written to path.
func (w *MemoryWriter) File(path string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	content, ok := w.files[filepath.Clean(path)]
	return content, ok
}

// Paths lists written paths in first-write order.
func (w *MemoryWriter) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}
