package gfx_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/glapi"
)

func TestBufferObjectSize(t *testing.T) {
	_, ctx := newContext(t)
	bo, err := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	if err != nil {
		t.Fatal(err)
	}
	defer bo.Destroy()
	data := make([]byte, 100)
	if err := bo.SetData(data, gfx.StaticDraw); err != nil {
		t.Fatal(err)
	}
	if bo.Size() != 100 {
		t.Fatalf("expected size 100, got %v", bo.Size())
	}
	ctx.Probe().AssertNoErrors("buffer size")
}

func TestBufferObjectIndices(t *testing.T) {
	_, ctx := newContext(t)
	bo, err := gfx.NewBufferObject(ctx, gfx.ElementBuffer)
	if err != nil {
		t.Fatal(err)
	}
	defer bo.Destroy()

	if err := bo.SetIndices([]uint16{0, 1, 2, 2, 3, 0}, gfx.StaticDraw); err != nil {
		t.Fatal(err)
	}
	if bo.Count() != 6 || bo.IndexType() != gfx.Uint16 || bo.Size() != 12 {
		t.Fatalf("expected 6 uint16 indices in 12 bytes, got %v %v in %v", bo.Count(), bo.IndexType(), bo.Size())
	}

	if err := bo.SetIndices([]uint32{0, 1, 2}, gfx.DynamicDraw); err != nil {
		t.Fatal(err)
	}
	if bo.Count() != 3 || bo.IndexType() != gfx.Uint32 {
		t.Fatalf("expected 3 uint32 indices, got %v %v", bo.Count(), bo.IndexType())
	}

	if err := bo.SetIndices([]int{1, 2}, gfx.StaticDraw); !errors.Is(err, gfx.ErrIndexType) {
		t.Fatalf("expected ErrIndexType, got %v", err)
	}
	if err := bo.SetIndices([]uint8{}, gfx.StaticDraw); !errors.Is(err, gfx.ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
	ctx.Probe().AssertNoErrors("buffer indices")
}

func TestBufferObjectData(t *testing.T) {
	_, ctx := newContext(t)
	bo, err := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	if err != nil {
		t.Fatal(err)
	}
	defer bo.Destroy()

	if err := bo.SetData(nil, gfx.StaticDraw); !errors.Is(err, gfx.ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
	if err := bo.SetData([]byte{1, 2, 3, 4, 5, 6}, gfx.DynamicDraw); err != nil {
		t.Fatal(err)
	}
	if err := bo.SetSubData(2, []byte{9, 9}); err != nil {
		t.Fatal(err)
	}
	expected := []byte{1, 2, 9, 9, 5, 6}
	if actual := bo.Data(); !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, actual)
	}
	if err := bo.SetSubData(5, []byte{1, 2}); !errors.Is(err, gfx.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	ctx.Probe().AssertNoErrors("buffer data")
}

func TestBufferObjectVertices(t *testing.T) {
	_, ctx := newContext(t)
	bo, err := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	if err != nil {
		t.Fatal(err)
	}
	defer bo.Destroy()

	if err := bo.SetVertices([]texturedVertex{{}, {}, {}}, gfx.StaticDraw); err != nil {
		t.Fatal(err)
	}
	if bo.Size() != 72 || bo.Count() != 3 {
		t.Fatalf("expected 3 vertices in 72 bytes, got %v in %v", bo.Count(), bo.Size())
	}
	if err := bo.SetVertices([]float32{1, 2}, gfx.StaticDraw); err != nil {
		t.Fatal(err)
	}
	if bo.Size() != 8 || bo.IndexType() != gfx.Float32 {
		t.Fatalf("expected 8 bytes of float32, got %v of %v", bo.Size(), bo.IndexType())
	}
	if err := bo.SetVertices(42, gfx.StaticDraw); err == nil {
		t.Fatal("expected an error for a non-slice")
	}
	if err := bo.SetVertices([]float32{}, gfx.StaticDraw); !errors.Is(err, gfx.ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestBufferObjectUsageHints(t *testing.T) {
	usages := []gfx.Usage{
		gfx.StaticDraw, gfx.DynamicDraw, gfx.StreamDraw,
		gfx.StaticRead, gfx.DynamicRead, gfx.StreamRead,
		gfx.StaticCopy, gfx.DynamicCopy, gfx.StreamCopy,
	}
	_, ctx := newContext(t)
	bo, _ := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	defer bo.Destroy()
	for _, u := range usages {
		if err := bo.SetData([]byte{1}, u); err != nil {
			t.Fatal(err)
		}
		ctx.Probe().AssertNoErrors("usage hint")
	}
}

func TestInvalidUsageReportsInvalidEnum(t *testing.T) {
	fn, ctx := newContext(t)
	var failure string
	ctx.Probe().SetFailFunc(func(format string, v ...interface{}) {
		failure = format
	})
	bo, _ := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	defer bo.Destroy()
	if err := bo.SetData([]byte{1, 2, 3}, gfx.Usage(99)); !errors.Is(err, gfx.ErrBufferData) {
		t.Fatalf("expected ErrBufferData, got %v", err)
	}
	if pending := fn.PendingErrors(); len(pending) != 1 || pending[0] != glapi.INVALID_ENUM {
		t.Fatalf("expected INVALID_ENUM pending, got %v", pending)
	}
	err := ctx.Probe().Check("buffer data")
	var apiErr *gfx.APIError
	if !errors.As(err, &apiErr) || !reflect.DeepEqual(apiErr.Codes, []gfx.GLError{gfx.InvalidEnum}) {
		t.Fatalf("expected INVALID_ENUM, got %v", err)
	}

	_ = bo.SetData([]byte{1}, gfx.Usage(0))
	ctx.Probe().AssertNoErrors("buffer data")
	if failure == "" {
		t.Fatal("AssertNoErrors did not fail")
	}
}

func TestRejectedUploadKeepsStore(t *testing.T) {
	fn, ctx := newContext(t)
	bo, _ := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	defer bo.Destroy()

	if err := bo.SetData(make([]byte, 16), gfx.Usage(99)); !errors.Is(err, gfx.ErrBufferData) {
		t.Fatalf("expected ErrBufferData, got %v", err)
	}
	ctx.Probe().Clear()
	if bo.Count() != 0 || bo.Data() != nil {
		t.Fatalf("empty buffer reports %v elements and data %v", bo.Count(), bo.Data())
	}

	if err := bo.SetIndices([]uint16{1, 2}, gfx.StaticDraw); err != nil {
		t.Fatal(err)
	}
	if err := bo.SetIndices([]uint8{7, 7, 7, 7}, gfx.Usage(0)); !errors.Is(err, gfx.ErrBufferData) {
		t.Fatalf("expected ErrBufferData, got %v", err)
	}
	ctx.Probe().Clear()
	expected := []byte{1, 0, 2, 0}
	if bo.Count() != 2 || bo.IndexType() != gfx.Uint16 || !reflect.DeepEqual(bo.Data(), expected) {
		t.Fatalf("expected 2 uint16 indices %v, got %v %v %v", expected, bo.Count(), bo.IndexType(), bo.Data())
	}
	if pending := fn.PendingErrors(); len(pending) != 0 {
		t.Fatalf("readback raised %v", pending)
	}
}

func TestBufferObjectCreateFailure(t *testing.T) {
	fn, ctx := newContext(t)
	fn.FailNextGen()
	if _, err := gfx.NewBufferObject(ctx, gfx.ArrayBuffer); !errors.Is(err, gfx.ErrCreateBuffer) {
		t.Fatalf("expected ErrCreateBuffer, got %v", err)
	}
	ctx.Probe().Clear()
}
