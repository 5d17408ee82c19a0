package render_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-markup/pkg/render"
	"github.com/goliatone/go-markup/pkg/sink"
)

type stubTarget struct {
	name string
	ext  string
	out  string
	err  error
}

func (s stubTarget) Name() string            { return s.name }
func (s stubTarget) Extension() string       { return s.ext }
func (s stubTarget) Render() (string, error) { return s.out, s.err }

func TestRegistry_RegisterAndList(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubTarget{name: "page", ext: ".html"})
	registry.MustRegister(stubTarget{name: "about", ext: ".html"})

	if err := registry.Register(stubTarget{name: "page"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubTarget{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil target error")
	}

	if diff := cmp.Diff([]string{"about", "page"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("about") || registry.Has("missing") {
		t.Fatalf("Has reported wrong membership")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected missing target error")
	}
}

func TestRegistry_BuildWritesEveryTarget(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubTarget{name: "site", ext: ".css", out: "a: 1"})
	registry.MustRegister(stubTarget{name: "index", ext: ".html", out: "<p>hi</p>"})

	writer := sink.NewMemoryWriter()
	paths, err := registry.Build(context.Background(), render.BuildOptions{OutDir: "dist", Writer: writer})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{filepath.Join("dist", "index.html"), filepath.Join("dist", "site.css")}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	if got, _ := writer.File(filepath.Join("dist", "site.css")); got != "a: 1" {
		t.Fatalf("css content mismatch: %q", got)
	}
}

func TestRegistry_BuildStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	registry := render.NewRegistry()
	registry.MustRegister(stubTarget{name: "a", ext: ".html", out: "ok"})
	registry.MustRegister(stubTarget{name: "b", ext: ".html", err: boom})
	registry.MustRegister(stubTarget{name: "c", ext: ".html", out: "never"})

	writer := sink.NewMemoryWriter()
	paths, err := registry.Build(context.Background(), render.BuildOptions{Writer: writer})
	if !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected one written path before failure, got %v", paths)
	}
	if _, ok := writer.File("c.html"); ok {
		t.Fatalf("targets after the failure must not be written")
	}
}

func TestRegistry_BuildHonoursCancellation(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubTarget{name: "a", ext: ".html"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registry.Build(ctx, render.BuildOptions{Writer: sink.NewMemoryWriter()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
