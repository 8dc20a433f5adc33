package gfx

import (
	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

// Context is the per-GL-context state every resource is created from: the
// function table, the error probe and the name of the program in use.
//
// A Context and everything created from it must only be used from the
// goroutine (locked to its OS thread) that owns the GL context.
type Context struct {
	fn      glapi.Functions
	probe   *ErrorProbe
	program uint32
}

// NewContext wraps a function table whose context is current. Any error
// flags left over from context creation are discarded.
func NewContext(fn glapi.Functions) *Context {
	ctx := &Context{
		fn:    fn,
		probe: newErrorProbe(fn),
	}
	ctx.probe.Clear()
	return ctx
}

// Functions returns the underlying function table.
func (c *Context) Functions() glapi.Functions {
	return c.fn
}

// Probe returns the context's error probe.
func (c *Context) Probe() *ErrorProbe {
	return c.probe
}

// Close drains the error flags, logging anything still pending. The context
// must not be used afterwards.
func (c *Context) Close() {
	if err := c.probe.Check("context close"); err != nil {
		log.Warn(err)
	}
	c.program = 0
}
