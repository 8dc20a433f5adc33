package gfx

import "github.com/gregjohnson2017/glsu/pkg/log"

// Binder is anything that can be made current and released again.
type Binder interface {
	Bind()
	Unbind()
}

// Resource is a wrapper that exclusively owns one OpenGL object name.
//
// A resource is Unallocated until its constructor succeeds, Valid until
// Destroy, and Destroyed afterwards. Bind is only meaningful while Valid;
// binding anything else reports INVALID_OPERATION to the context's
// ErrorProbe instead of touching the driver. Unbind binds the 0 name to the
// same target, so nesting binds of two objects of one kind is not safe.
// Destroy frees the name once and is a no-op after that.
//
// A nil wrapper, as returned by a failed constructor, has no context to
// report to. Binding one only logs a warning.
type Resource interface {
	Binder
	ID() uint32
	IsValid() bool
	Destroy()
}

// ErrInvalidResource indicates an operation on an unallocated or destroyed
// resource.
const ErrInvalidResource log.ConstErr = "resource is not valid"

// Bound binds b and returns the matching release, for use with defer:
//
//	defer gfx.Bound(vao)()
func Bound(b Binder) func() {
	b.Bind()
	return b.Unbind
}

// WithBound binds every binder in order, runs fn, and unbinds them in reverse
// order however fn returns.
func WithBound(fn func() error, binders ...Binder) error {
	for i, b := range binders {
		b.Bind()
		defer binders[i].Unbind()
	}
	return fn()
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527 for details;
// go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// misuse records an attempt to use a resource that is not Valid.
func misuse(ctx *Context, kind, op string) {
	log.Warnf("%v of invalid %v", op, kind)
	if ctx != nil {
		ctx.probe.Report(InvalidOperation)
	}
}
