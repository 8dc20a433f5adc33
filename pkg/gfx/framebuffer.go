package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

// ErrFrameBuffer indicates a framebuffer that could not be made complete.
const ErrFrameBuffer log.ConstErr = "incomplete framebuffer"

// FrameBuffer renders into an owned RGBA color texture.
type FrameBuffer struct {
	noCopy noCopy

	ctx *Context
	id  uint32
	tex *Texture
}

var _ Resource = (*FrameBuffer)(nil)

// NewFrameBuffer allocates a width×height color texture and a framebuffer
// rendering into it.
func NewFrameBuffer(ctx *Context, width, height int32) (*FrameBuffer, error) {
	tex, err := NewTexture(ctx, width, height, nil, RGBA)
	if err != nil {
		return nil, err
	}
	tex.SetMinFilter(Linear)
	tex.SetMagFilter(Linear)

	id := ctx.fn.GenFramebuffer()
	if id == 0 {
		tex.Destroy()
		return nil, fmt.Errorf("%w: no framebuffer name", ErrFrameBuffer)
	}
	fb := &FrameBuffer{ctx: ctx, id: id, tex: tex}
	fb.Bind()
	ctx.fn.FramebufferTexture2D(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.TEXTURE_2D, tex.id, 0)
	status := ctx.fn.CheckFramebufferStatus(glapi.FRAMEBUFFER)
	fb.Unbind()
	if status != glapi.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return nil, fmt.Errorf("%w: status %#x", ErrFrameBuffer, status)
	}
	return fb, nil
}

// Texture returns the color attachment. It is owned by the framebuffer.
func (fb *FrameBuffer) Texture() *Texture {
	return fb.tex
}

func (fb *FrameBuffer) Bind() {
	if !fb.IsValid() {
		misuse(fb.context(), "framebuffer", "bind")
		return
	}
	fb.ctx.fn.BindFramebuffer(glapi.FRAMEBUFFER, fb.id)
}

// Unbind makes the default framebuffer the render target again.
func (fb *FrameBuffer) Unbind() {
	if fb == nil || fb.ctx == nil {
		return
	}
	fb.ctx.fn.BindFramebuffer(glapi.FRAMEBUFFER, 0)
}

func (fb *FrameBuffer) ID() uint32 {
	if fb == nil {
		return 0
	}
	return fb.id
}

func (fb *FrameBuffer) IsValid() bool {
	return fb != nil && fb.id != 0
}

// Take moves ownership of the framebuffer and its texture into a new
// wrapper, leaving fb unallocated.
func (fb *FrameBuffer) Take() *FrameBuffer {
	if fb == nil {
		return nil
	}
	moved := &FrameBuffer{ctx: fb.ctx, id: fb.id, tex: fb.tex.Take()}
	fb.id = 0
	return moved
}

// Destroy frees the framebuffer and its color texture.
func (fb *FrameBuffer) Destroy() {
	if !fb.IsValid() {
		return
	}
	fb.ctx.fn.DeleteFramebuffer(fb.id)
	fb.id = 0
	fb.tex.Destroy()
}

func (fb *FrameBuffer) context() *Context {
	if fb == nil {
		return nil
	}
	return fb.ctx
}
