package component

import (
	"github.com/goliatone/go-markup/pkg/scope"
	"github.com/goliatone/go-markup/pkg/value"
)

// Nested is a component wrapped for use inside another component. Interpolated
// directly it renders with the ambient context it captured; With starts a
// scope of its own.
type Nested struct {
	invoker   *Invoker
	component Component
	ambient   scope.Context
}

var _ value.Evaluator = (*Nested)(nil)

// Eval invokes the component with a copy of the captured ambient context as
// props and scope, then evaluates its fragment against acc.
func (n *Nested) Eval(acc string) (string, error) {
	fragment, err := n.invoker.with(n.component, n.ambient.Clone(), n.ambient)
	if err != nil {
		return "", err
	}
	if fragment == nil {
		return "", nil
	}
	return fragment(acc)
}

// Fragment returns Eval as a Fragment value.
func (n *Nested) Fragment() Fragment {
	return n.Eval
}

// With invokes the component with props inside a new scope over ctx (default:
// the captured ambient context). The returned fragment is not evaluated.
func (n *Nested) With(props scope.Props, ctx ...scope.Context) (Fragment, error) {
	context := n.ambient
	if len(ctx) > 0 && ctx[0] != nil {
		context = ctx[0]
	}
	if props == nil {
		props = scope.Props{}
	}
	return n.invoker.with(n.component, props, context)
}

// Ambient returns a copy of the context captured when the wrapper was built.
func (n *Nested) Ambient() scope.Context {
	return n.ambient.Clone()
}
