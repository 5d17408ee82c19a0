package render

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-markup/pkg/sink"
)

// Registry stores render targets by name, providing discovery and duplication
// safeguards for batch builds.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]Target
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[string]Target),
	}
}

// Register adds a target by its Name(). Duplicate names return an error.
func (r *Registry) Register(target Target) error {
	if target == nil {
		return fmt.Errorf("render: target is required")
	}
	name := target.Name()
	if name == "" {
		return fmt.Errorf("render: target name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.targets[name]; exists {
		return fmt.Errorf("render: target %q already registered", name)
	}

	r.targets[name] = target
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(target Target) {
	if err := r.Register(target); err != nil {
		panic(err)
	}
}

// Get retrieves a target by name.
func (r *Registry) Get(name string) (Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	target, ok := r.targets[name]
	if !ok {
		return nil, fmt.Errorf("render: target %q not found", name)
	}
	return target, nil
}

// List returns a sorted list of target names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a target is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.targets[name]
	return ok
}

// BuildOptions control where Build writes its output.
type BuildOptions struct {
	OutDir string
	Writer sink.Writer
	Logger zerolog.Logger
}

// Build renders every registered target in name order and writes each one to
// <OutDir>/<name><ext>. It stops at the first failure and returns the paths
// written so far alongside the error.
func (r *Registry) Build(ctx context.Context, opts BuildOptions) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	writer := opts.Writer
	if writer == nil {
		writer = sink.AtomicWriter{}
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = "."
	}

	var written []string
	for _, name := range r.List() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		target, err := r.Get(name)
		if err != nil {
			return written, err
		}

		output, err := target.Render()
		if err != nil {
			return written, fmt.Errorf("render: target %q: %w", name, err)
		}
		path := filepath.Join(outDir, name+target.Extension())
		if err := writer.WriteFile(path, output); err != nil {
			return written, fmt.Errorf("render: write target %q: %w", name, err)
		}
		opts.Logger.Debug().Str("target", name).Str("path", path).Int("bytes", len(output)).Msg("target written")
		written = append(written, path)
	}
	return written, nil
}
