package internal

// Context carries a value scoped to the owner tree. Reading walks the owner
// chain upward, so nested scopes inherit from their parents.
type Context struct {
	initial any
}

func (r *Runtime) NewContext(initial any) *Context {
	return &Context{initial: initial}
}

// Value returns the nearest value bound up the active owner chain, falling
// back to the context's initial value.
func (c *Context) Value() any {
	r := GetRuntime()

	for o := r.currentOwner; o != nil; o = o.parent {
		if o.context == nil {
			continue
		}
		if v, ok := o.context[c]; ok {
			return v
		}
	}

	return c.initial
}

// Set binds a value for the current owner scope. Without an active owner the
// write is dropped and Value keeps returning the initial value.
func (c *Context) Set(v any) {
	r := GetRuntime()

	o := r.currentOwner
	if o == nil {
		return
	}

	if o.context == nil {
		o.context = make(map[*Context]any)
	}
	o.context[c] = v
}
