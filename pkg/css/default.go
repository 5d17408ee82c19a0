package css

// Default is the process-wide engine behind the package-level functions.
var Default = New()

// Template builds a literal template on the default engine. It seals only
// Default's register; use the engine's own Template when rendering with New.
func Template(chunks []string, values ...any) Fragment {
	return Default.Template(chunks, values...)
}

// Sheet wraps decls as a fragment on the default engine. Like Template, it
// seals only Default's register.
func Sheet(decls Decls) Fragment {
	return Default.Sheet(decls)
}

// Static returns a component rendering decls on the default engine.
func Static(decls Decls) Component {
	return Default.Static(decls)
}

// Render renders c on the default engine. ctx defaults to props.
func Render(c Component, props Props, ctx ...Context) (string, error) {
	return Default.Render(c, props, ctx...)
}

// Use wraps c for nested use on the default engine.
func Use(c Component) (*Nested, error) {
	return Default.Use(c)
}

// UseContext reads the default engine's ambient context.
func UseContext(name ...string) (any, error) {
	return Default.Accessor()(name...)
}

// File renders c on the default engine and writes it to path.
func File(c Component, props Props, ctx Context, path string) (string, error) {
	return Default.File(c, props, ctx, path)
}

// Inner renders c into a <style> element on the default engine.
func Inner(c Component, props Props, ctx Context) (string, error) {
	return Default.Inner(c, props, ctx)
}

// Inline renders c as a style attribute on the default engine.
func Inline(c Component, props Props, ctx Context) (string, error) {
	return Default.Inline(c, props, ctx)
}

// Module renders c under a generated class on the default engine.
func Module(c Component, props Props, ctx Context) (ModuleResult, error) {
	return Default.Module(c, props, ctx)
}

// FileLink writes c on the default engine and returns a <link> element.
func FileLink(c Component, props Props, ctx Context, path string) (string, error) {
	return Default.FileLink(c, props, ctx, path)
}
