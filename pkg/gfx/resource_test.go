package gfx_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/glapi/glapitest"
)

type resourceCase struct {
	create func(ctx *gfx.Context) (gfx.Resource, error)
	live   func(fn *glapitest.Functions, id uint32) bool
}

func testLifecycle(rc resourceCase) func(t *testing.T) {
	return func(t *testing.T) {
		fn, ctx := newContext(t)
		r, err := rc.create(ctx)
		if err != nil {
			t.Fatal(err)
		}
		id := r.ID()
		if !r.IsValid() || id == 0 || !rc.live(fn, id) {
			t.Fatalf("expected a valid resource, got id %v", id)
		}
		r.Destroy()
		if r.IsValid() || r.ID() != 0 || rc.live(fn, id) {
			t.Fatal("resource still valid after Destroy")
		}
		r.Destroy()
		if r.IsValid() {
			t.Fatal("second Destroy revived the resource")
		}
		ctx.Probe().AssertNoErrors("lifecycle")
	}
}

func TestResourceLifecycle(t *testing.T) {
	t.Run("buffer", testLifecycle(resourceCase{
		create: func(ctx *gfx.Context) (gfx.Resource, error) { return gfx.NewBufferObject(ctx, gfx.ArrayBuffer) },
		live:   (*glapitest.Functions).IsBuffer,
	}))
	t.Run("vertex array", testLifecycle(resourceCase{
		create: func(ctx *gfx.Context) (gfx.Resource, error) { return gfx.NewVertexArrayObject(ctx, gfx.Triangles) },
		live:   (*glapitest.Functions).IsVertexArray,
	}))
	t.Run("program", testLifecycle(resourceCase{
		create: func(ctx *gfx.Context) (gfx.Resource, error) {
			return gfx.NewShaderProgram(ctx, gfx.PositionVertex, gfx.SolidColorFragment)
		},
		live: (*glapitest.Functions).IsProgram,
	}))
	t.Run("texture", testLifecycle(resourceCase{
		create: func(ctx *gfx.Context) (gfx.Resource, error) { return gfx.NewTexture(ctx, 2, 2, nil, gfx.RGBA) },
		live:   (*glapitest.Functions).IsTexture,
	}))
	t.Run("framebuffer", testLifecycle(resourceCase{
		create: func(ctx *gfx.Context) (gfx.Resource, error) { return gfx.NewFrameBuffer(ctx, 4, 4) },
		live:   (*glapitest.Functions).IsFramebuffer,
	}))
}

func TestNilResources(t *testing.T) {
	var (
		bo  *gfx.BufferObject
		va  *gfx.VertexArrayObject
		iva *gfx.IndexedVertexArrayObject
		p   *gfx.ShaderProgram
		tex *gfx.Texture
		fb  *gfx.FrameBuffer
	)
	for _, r := range []gfx.Resource{bo, va, iva, p, tex, fb} {
		if r.IsValid() {
			t.Fatalf("nil %T reports valid", r)
		}
		// no context to report to, so only a warning is logged
		r.Bind()
		r.Destroy()
		r.Unbind()
	}
	va.Draw(0, 3)
	iva.DrawElements()
}

func TestBindRoundTrip(t *testing.T) {
	fn, ctx := newContext(t)
	bo, _ := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	va, _ := gfx.NewVertexArrayObject(ctx, gfx.Points)
	p, _ := gfx.NewShaderProgram(ctx, gfx.PositionVertex, gfx.SolidColorFragment)
	tex, _ := gfx.NewTexture(ctx, 1, 1, nil, gfx.RGBA)
	fb, _ := gfx.NewFrameBuffer(ctx, 1, 1)

	bound := []struct {
		name  string
		r     gfx.Resource
		query func() uint32
	}{
		{"buffer", bo, func() uint32 { return fn.BoundBuffer(glapi.ARRAY_BUFFER) }},
		{"vertex array", va, fn.BoundVertexArray},
		{"program", p, fn.CurrentProgram},
		{"texture", tex, func() uint32 { return fn.BoundTexture(0) }},
		{"framebuffer", fb, fn.BoundFramebuffer},
	}
	for _, b := range bound {
		b.r.Bind()
		if got := b.query(); got != b.r.ID() {
			t.Fatalf("%v: expected %v bound, got %v", b.name, b.r.ID(), got)
		}
		b.r.Unbind()
		if got := b.query(); got != 0 {
			t.Fatalf("%v: expected 0 bound after Unbind, got %v", b.name, got)
		}
		b.r.Destroy()
	}
	ctx.Probe().AssertNoErrors("bind round trip")
}

func TestBindInvalidReportsInvalidOperation(t *testing.T) {
	fn, ctx := newContext(t)
	bo, _ := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	bo.Destroy()
	bo.Bind()
	if fn.BoundBuffer(glapi.ARRAY_BUFFER) != 0 {
		t.Fatal("destroyed buffer was bound")
	}
	var apiErr *gfx.APIError
	err := ctx.Probe().Check("bind destroyed")
	if !errors.As(err, &apiErr) || !reflect.DeepEqual(apiErr.Codes, []gfx.GLError{gfx.InvalidOperation}) {
		t.Fatalf("expected INVALID_OPERATION, got %v", err)
	}
	if !errors.Is(err, gfx.ErrGL) {
		t.Fatalf("expected ErrGL, got %v", err)
	}
}

func TestTake(t *testing.T) {
	fn, ctx := newContext(t)
	bo, _ := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	_ = bo.SetData([]byte{1, 2, 3}, gfx.StaticDraw)
	id := bo.ID()
	moved := bo.Take()
	if bo.IsValid() || !moved.IsValid() || moved.ID() != id {
		t.Fatalf("ownership not moved: source %v, destination %v", bo.ID(), moved.ID())
	}
	bo.Destroy()
	if !fn.IsBuffer(id) {
		t.Fatal("destroying the moved-from wrapper freed the buffer")
	}
	if moved.Count() != 3 {
		t.Fatalf("expected count to move with the buffer, got %v", moved.Count())
	}
	moved.Destroy()
	if fn.IsBuffer(id) {
		t.Fatal("buffer leaked")
	}
	ctx.Probe().AssertNoErrors("take")
}

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Bind()   { *r.log = append(*r.log, "bind "+r.name) }
func (r recorder) Unbind() { *r.log = append(*r.log, "unbind "+r.name) }

func TestWithBound(t *testing.T) {
	var calls []string
	a, b := recorder{"a", &calls}, recorder{"b", &calls}
	errFailed := errors.New("failed")
	err := gfx.WithBound(func() error {
		calls = append(calls, "run")
		return errFailed
	}, a, b)
	if err != errFailed {
		t.Fatalf("expected the function's error, got %v", err)
	}
	expected := []string{"bind a", "bind b", "run", "unbind b", "unbind a"}
	if !reflect.DeepEqual(expected, calls) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, calls)
	}

	calls = nil
	func() {
		defer gfx.Bound(a)()
		calls = append(calls, "run")
	}()
	expected = []string{"bind a", "run", "unbind a"}
	if !reflect.DeepEqual(expected, calls) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, calls)
	}
}
