// Package html renders HTML from lazily evaluated fragments: literal templates
// that interleave text with values, and declarative nodes mapping tags to
// content. Components compose through an Engine, which threads an ambient
// context through nested calls.
//
//	page := func(props html.Props) (html.Fragment, error) {
//		nav, err := html.Use(Nav)
//		if err != nil {
//			return nil, err
//		}
//		return html.Template([]string{"<h1>", "</h1>", ""}, props["title"], nav), nil
//	}
//	out, err := html.Render(page, html.Props{"title": "Hi"})
package html

import (
	"github.com/goliatone/go-markup/pkg/component"
	"github.com/goliatone/go-markup/pkg/scope"
	"github.com/goliatone/go-markup/pkg/value"
)

// Extension is used for default file names.
const Extension = ".html"

type (
	// Fragment renders given the text accumulated before it.
	Fragment = component.Fragment
	// Component builds a fragment from props.
	Component = component.Component
	// Nested is a component wrapped by Use.
	Nested = component.Nested
	// Option configures an Engine.
	Option = component.Option
	// Props are the explicit arguments of a component.
	Props = scope.Props
	// Context is the ambient mapping visible to components.
	Context = scope.Context
)

var (
	WithWriter   = component.WithWriter
	WithLogger   = component.WithLogger
	WithRegister = component.WithRegister
)

var resolver = value.Resolver{Escape: Escape}

// Engine is one HTML instantiation with its own context register. Renders on
// the same engine must not run concurrently.
type Engine struct {
	*component.Invoker
}

// New constructs an engine applying any provided options.
func New(options ...Option) *Engine {
	return &Engine{Invoker: component.New("html", Extension, options...)}
}

// Template builds a literal template fragment from chunks and the values
// between them. Text and numbers are escaped; evaluators are called with the
// text rendered before them. Ambient context is unreachable while the
// template evaluates.
func (e *Engine) Template(chunks []string, values ...any) Fragment {
	resolved := value.OfAll(values)
	return func(string) (string, error) {
		return e.Sealed(func() (string, error) {
			return resolver.Fold(chunks, resolved)
		})
	}
}

// Node wraps a declarative node as a fragment.
func (e *Engine) Node(node Node) Fragment {
	return node.Eval
}

// Static returns a component that always renders node.
func Static(node Node) Component {
	return func(Props) (Fragment, error) {
		return node.Eval, nil
	}
}
