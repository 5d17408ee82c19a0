// Package component implements the invocation modes shared by the HTML and
// CSS engines: root renders, nested use with implicit context, scoped With
// calls and the file sink.
package component

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-markup/pkg/render"
	"github.com/goliatone/go-markup/pkg/scope"
	"github.com/goliatone/go-markup/pkg/sink"
	"github.com/goliatone/go-markup/pkg/value"
)

// Fragment renders given the text accumulated before it.
type Fragment = value.EvalFunc

// Component builds a fragment from its props. Context is read through the
// invoker while the component body runs.
type Component func(props scope.Props) (Fragment, error)

// Option configures an Invoker.
type Option func(*config)

type config struct {
	writer   sink.Writer
	logger   zerolog.Logger
	register *scope.Register
}

// WithWriter replaces the file-writing collaborator.
func WithWriter(w sink.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.writer = w
		}
	}
}

// WithLogger sets the logger used for scope and file events.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithRegister shares a register between invokers. Engines that share one
// register see each other's scopes.
func WithRegister(reg *scope.Register) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.register = reg
		}
	}
}

// Invoker owns one context register and the operations that scope it.
type Invoker struct {
	variant  string
	ext      string
	register *scope.Register
	writer   sink.Writer
	logger   zerolog.Logger
}

// New builds an invoker for a variant ("html", "css") whose files use ext.
func New(variant, ext string, options ...Option) *Invoker {
	cfg := config{
		writer: sink.AtomicWriter{},
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.register == nil {
		cfg.register = scope.New()
	}

	return &Invoker{
		variant:  variant,
		ext:      ext,
		register: cfg.register,
		writer:   cfg.writer,
		logger:   cfg.logger.With().Str("variant", variant).Logger(),
	}
}

// Register exposes the invoker's context register.
func (i *Invoker) Register() *scope.Register { return i.register }

// Extension returns the file extension used by File.
func (i *Invoker) Extension() string { return i.ext }

// Logger returns the invoker's logger.
func (i *Invoker) Logger() zerolog.Logger { return i.logger }

// Sealed runs fn with the register sealed, so nothing evaluated inside can
// read ambient context.
func (i *Invoker) Sealed(fn func() (string, error)) (string, error) {
	restore := i.register.Seal()
	defer restore()
	return fn()
}

// Render is the root entry point. ctx defaults to props. The component runs
// and its fragment is evaluated with an empty accumulator inside a fresh
// scope; the previous register state is restored on every exit path.
func (i *Invoker) Render(c Component, props scope.Props, ctx ...scope.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("%s: component is required", i.variant)
	}
	if props == nil {
		props = scope.Props{}
	}
	context := props
	if len(ctx) > 0 && ctx[0] != nil {
		context = ctx[0]
	}

	// nested wrappers capture the frame, never the caller's map
	restore := i.enter(context.Clone())
	defer restore()

	fragment, err := i.with(c, props, context)
	if err != nil {
		return "", err
	}
	if fragment == nil {
		return "", nil
	}
	return fragment("")
}

// File renders c through Render and hands the text to the writer. A nil ctx
// renders with an empty context; an empty path defaults to ./<name><ext>.
func (i *Invoker) File(c Component, props scope.Props, ctx scope.Context, path string) (string, error) {
	if path == "" {
		path = render.DefaultPath(c, i.ext)
	}
	if ctx == nil {
		ctx = scope.Context{}
	}

	output, err := i.Render(c, props, ctx)
	if err != nil {
		return "", err
	}
	if err := i.writer.WriteFile(path, output); err != nil {
		return "", err
	}
	i.logger.Debug().Str("path", path).Int("bytes", len(output)).Msg("file written")
	return path, nil
}

// Use wraps c for nested use. It must be called while a component scope is
// active; the ambient context at that moment is captured.
func (i *Invoker) Use(c Component) (*Nested, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: component is required", i.variant)
	}
	ambient, err := i.register.Current()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i.variant, scope.ErrOutOfScopeNestedUse)
	}
	return &Nested{invoker: i, component: c, ambient: ambient}, nil
}

// MustUse is Use for component bodies that are known to run inside a render.
func (i *Invoker) MustUse(c Component) *Nested {
	nested, err := i.Use(c)
	if err != nil {
		panic(err)
	}
	return nested
}

// Lookup returns one entry of the ambient context.
func (i *Invoker) Lookup(name string) (any, error) {
	got, err := i.register.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i.variant, err)
	}
	return got, nil
}

// Context returns a copy of the whole ambient context.
func (i *Invoker) Context() (scope.Context, error) {
	ctx, err := i.register.Context()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i.variant, err)
	}
	return ctx, nil
}

// Accessor returns the ambient accessor: no name yields the whole mapping,
// a name yields that entry.
func (i *Invoker) Accessor() scope.Accessor {
	access := i.register.Accessor()
	return func(name ...string) (any, error) {
		got, err := access(name...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", i.variant, err)
		}
		return got, nil
	}
}

func (i *Invoker) with(c Component, props scope.Props, ctx scope.Context) (Fragment, error) {
	restore := i.enter(ctx.Clone())
	defer restore()
	return c(props)
}

func (i *Invoker) enter(ctx scope.Context) func() {
	restore := i.register.Enter(ctx)
	depth := i.register.Depth()
	i.logger.Trace().Int("depth", depth).Msg("scope entered")
	return func() {
		restore()
		i.logger.Trace().Int("depth", depth).Msg("scope restored")
	}
}
