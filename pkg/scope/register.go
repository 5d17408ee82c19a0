package scope

type frame struct {
	ctx    Context
	sealed bool
}

// Register is the slot holding the active context. The zero value is ready to
// use and starts out of scope.
//
// A Register belongs to one render tree at a time; it is not safe for
// concurrent renders. Give each concurrent render its own register.
type Register struct {
	frames []frame
}

// New returns an empty register.
func New() *Register {
	return &Register{}
}

// Enter installs ctx as the active context and returns the function that
// restores the previous state. The mapping is used as given; callers that need
// isolation pass a clone.
func (r *Register) Enter(ctx Context) (restore func()) {
	if ctx == nil {
		ctx = Context{}
	}
	return r.push(frame{ctx: ctx})
}

// Seal installs the out-of-scope sentinel until restore is called.
func (r *Register) Seal() (restore func()) {
	return r.push(frame{sealed: true})
}

func (r *Register) push(f frame) func() {
	depth := len(r.frames)
	r.frames = append(r.frames, f)
	return func() {
		r.truncate(depth)
	}
}

func (r *Register) truncate(depth int) {
	if depth > len(r.frames) {
		return
	}
	for idx := depth; idx < len(r.frames); idx++ {
		r.frames[idx] = frame{}
	}
	r.frames = r.frames[:depth]
}

// Depth reports how many frames (scopes and seals) are stacked.
func (r *Register) Depth() int {
	return len(r.frames)
}

// Active reports whether a component scope is readable right now: a frame
// exists and it is not the sealed sentinel.
func (r *Register) Active() bool {
	_, ok := r.top()
	return ok
}

func (r *Register) top() (Context, bool) {
	if len(r.frames) == 0 {
		return nil, false
	}
	current := r.frames[len(r.frames)-1]
	if current.sealed {
		return nil, false
	}
	return current.ctx, true
}

// Current returns the active mapping itself, without copying. Engines use it
// to capture the ambient context for nested components.
func (r *Register) Current() (Context, error) {
	ctx, ok := r.top()
	if !ok {
		return nil, ErrOutOfScopeContextAccess
	}
	return ctx, nil
}

// Context returns a copy of the active mapping.
func (r *Register) Context() (Context, error) {
	ctx, err := r.Current()
	if err != nil {
		return nil, err
	}
	return ctx.Clone(), nil
}

// Lookup returns one entry of the active mapping. Missing names yield nil.
func (r *Register) Lookup(name string) (any, error) {
	ctx, err := r.Current()
	if err != nil {
		return nil, err
	}
	return ctx[name], nil
}

// Accessor returns a function that reads whatever scope is active when it is
// called.
func (r *Register) Accessor() Accessor {
	return func(name ...string) (any, error) {
		if len(name) == 0 || name[0] == "" {
			ctx, err := r.Context()
			if err != nil {
				return nil, err
			}
			return ctx, nil
		}
		return r.Lookup(name[0])
	}
}
