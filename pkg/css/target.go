package css

import "github.com/goliatone/go-markup/pkg/render"

type target struct {
	engine *Engine
	name   string
	c      Component
	props  Props
	ctx    Context
}

// Target binds c to its props and context so a render.Registry can build it.
// An empty name falls back to the component's function name.
func (e *Engine) Target(name string, c Component, props Props, ctx Context) render.Target {
	if name == "" {
		name = render.ComponentName(c)
	}
	return target{engine: e, name: name, c: c, props: props, ctx: ctx}
}

func (t target) Name() string      { return t.name }
func (t target) Extension() string { return Extension }

func (t target) Render() (string, error) {
	if t.ctx == nil {
		return t.engine.Render(t.c, t.props)
	}
	return t.engine.Render(t.c, t.props, t.ctx)
}
