package scope

// Context is the mapping visible to components without explicit parameters.
type Context map[string]any

// Props carries the explicit arguments of a component call. It shares the
// Context shape so a root render can use the same mapping for both.
type Props = Context

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for key, value := range c {
		out[key] = value
	}
	return out
}

// Accessor reads the ambient context. Called without a name it returns the
// whole mapping; with a name it returns that entry (nil when missing).
type Accessor func(name ...string) (any, error)
