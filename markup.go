// Package markup is the top-level entry point: it re-exports the common types
// of the html and css engines and builds directories of declarative documents.
package markup

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-markup/pkg/css"
	"github.com/goliatone/go-markup/pkg/document"
	"github.com/goliatone/go-markup/pkg/html"
	"github.com/goliatone/go-markup/pkg/render"
	"github.com/goliatone/go-markup/pkg/scope"
	"github.com/goliatone/go-markup/pkg/sink"
)

type (
	// Props are the explicit arguments of a component.
	Props = scope.Props
	// Context is the ambient mapping visible to components.
	Context = scope.Context
	// Fragment renders given the text accumulated before it.
	Fragment = html.Fragment
	// Component builds a fragment from props. The same type serves both
	// engines.
	Component = html.Component
	// Node is a declarative HTML node.
	Node = html.Node
	// Decls is an ordered CSS declaration object.
	Decls = css.Decls
	// ModuleResult pairs a scoped class name with its style block.
	ModuleResult = css.ModuleResult
)

var (
	// ErrOutOfScopeContextAccess reports a context read with no active scope.
	ErrOutOfScopeContextAccess = scope.ErrOutOfScopeContextAccess
	// ErrOutOfScopeNestedUse reports Use called outside a component body.
	ErrOutOfScopeNestedUse = scope.ErrOutOfScopeNestedUse
)

// NewHTML constructs an isolated HTML engine.
func NewHTML(options ...html.Option) *html.Engine {
	return html.New(options...)
}

// NewCSS constructs an isolated CSS engine.
func NewCSS(options ...css.Option) *css.Engine {
	return css.New(options...)
}

// HTML returns the process-wide HTML engine used by the html package functions.
func HTML() *html.Engine { return html.Default }

// CSS returns the process-wide CSS engine used by the css package functions.
func CSS() *css.Engine { return css.Default }

// BuildRequest describes a batch build of a document tree.
type BuildRequest struct {
	// Source holds *.yaml, *.yml and *.json documents; *.css.* files are
	// style documents.
	Source fs.FS
	// Context is the ambient context shared by every document.
	Context Context
	// HTML and CSS default to fresh engines.
	HTML *html.Engine
	CSS  *css.Engine

	OutDir string
	Writer sink.Writer
	Logger zerolog.Logger
}

// Build loads every document in req.Source, registers each as a render target
// and writes them under req.OutDir. It returns the written paths in name order.
func Build(ctx context.Context, req BuildRequest) ([]string, error) {
	if req.Source == nil {
		return nil, fmt.Errorf("markup: build source is required")
	}
	docs, err := document.LoadFS(req.Source)
	if err != nil {
		return nil, err
	}

	htmlEngine := req.HTML
	if htmlEngine == nil {
		htmlEngine = html.New(html.WithLogger(req.Logger))
	}
	cssEngine := req.CSS
	if cssEngine == nil {
		cssEngine = css.New(css.WithLogger(req.Logger))
	}

	registry := render.NewRegistry()
	for _, doc := range docs {
		if err := registry.Register(doc.Target(htmlEngine, cssEngine, req.Context)); err != nil {
			return nil, err
		}
	}
	req.Logger.Debug().Int("documents", len(docs)).Msg("documents registered")

	return registry.Build(ctx, render.BuildOptions{
		OutDir: req.OutDir,
		Writer: req.Writer,
		Logger: req.Logger,
	})
}
