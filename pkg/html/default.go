package html

import "github.com/goliatone/go-markup/pkg/scope"

// Default is the process-wide engine behind the package-level functions.
var Default = New()

// Template builds a literal template on the default engine. It seals only
// Default's register, so components rendered by an engine from New must build
// their templates with that engine's Template method.
func Template(chunks []string, values ...any) Fragment {
	return Default.Template(chunks, values...)
}

// Render renders c on the default engine. ctx defaults to props.
func Render(c Component, props Props, ctx ...Context) (string, error) {
	return Default.Render(c, props, ctx...)
}

// Use wraps c for nested use on the default engine.
func Use(c Component) (*Nested, error) {
	return Default.Use(c)
}

// File renders c on the default engine and writes it to path.
func File(c Component, props Props, ctx Context, path string) (string, error) {
	return Default.File(c, props, ctx, path)
}

// UseContext reads the default engine's ambient context: no name returns the
// whole mapping, a name returns one entry.
func UseContext(name ...string) (any, error) {
	return Default.Accessor()(name...)
}

// Lookup returns one entry of the default engine's ambient context.
func Lookup(name string) (any, error) {
	return Default.Lookup(name)
}

// CurrentContext returns a copy of the default engine's ambient context.
func CurrentContext() (scope.Context, error) {
	return Default.Context()
}
