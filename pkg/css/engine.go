// Package css renders style rules from lazily evaluated fragments: literal
// templates and ordered declaration objects. It shares the component model of
// the html package and adds sinks for <style> blocks, inline style attributes
// and scoped modules.
package css

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-markup/pkg/component"
	"github.com/goliatone/go-markup/pkg/scope"
	"github.com/goliatone/go-markup/pkg/sink"
	"github.com/goliatone/go-markup/pkg/value"
)

// Extension is used for default file names.
const Extension = ".css"

type (
	// Fragment renders given the text accumulated before it.
	Fragment = component.Fragment
	// Component builds a fragment from props.
	Component = component.Component
	// Nested is a component wrapped by Use.
	Nested = component.Nested
	// Props are the explicit arguments of a component.
	Props = scope.Props
	// Context is the ambient mapping visible to components.
	Context = scope.Context
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	invoker []component.Option
	namer   ClassNamer
}

// WithWriter replaces the file-writing collaborator.
func WithWriter(w sink.Writer) Option {
	return func(cfg *config) {
		cfg.invoker = append(cfg.invoker, component.WithWriter(w))
	}
}

// WithLogger sets the logger used for scope and file events.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.invoker = append(cfg.invoker, component.WithLogger(logger))
	}
}

// WithRegister shares a context register with another engine.
func WithRegister(reg *scope.Register) Option {
	return func(cfg *config) {
		cfg.invoker = append(cfg.invoker, component.WithRegister(reg))
	}
}

// WithClassNamer replaces the class-name generator used by Module.
func WithClassNamer(namer ClassNamer) Option {
	return func(cfg *config) {
		if namer != nil {
			cfg.namer = namer
		}
	}
}

var resolver = value.Resolver{}

// Engine is one CSS instantiation with its own context register. Renders on
// the same engine must not run concurrently.
type Engine struct {
	*component.Invoker
	namer ClassNamer
}

// New constructs an engine applying any provided options.
func New(options ...Option) *Engine {
	cfg := config{namer: RandomClassNamer{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Engine{
		Invoker: component.New("css", Extension, cfg.invoker...),
		namer:   cfg.namer,
	}
}

// Template builds a literal template fragment. Values are interpolated without
// escaping; ambient context is unreachable while it evaluates.
func (e *Engine) Template(chunks []string, values ...any) Fragment {
	resolved := value.OfAll(values)
	return func(string) (string, error) {
		return e.Sealed(func() (string, error) {
			return resolver.Fold(chunks, resolved)
		})
	}
}

// Sheet wraps a declaration object as a fragment evaluated with the register
// sealed.
func (e *Engine) Sheet(decls Decls) Fragment {
	return func(acc string) (string, error) {
		return e.Sealed(func() (string, error) {
			return decls.Eval(acc)
		})
	}
}

// Static returns a component that always renders decls on e.
func (e *Engine) Static(decls Decls) Component {
	return func(Props) (Fragment, error) {
		return e.Sheet(decls), nil
	}
}
