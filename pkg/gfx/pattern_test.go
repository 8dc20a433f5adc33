package gfx_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/glapi/glapitest"
)

func TestPatternOffsets(t *testing.T) {
	t.Run("3f1f2f", testOffsets(gfx.MustPattern("3f1f2f"), []int{12, 4, 8}, []int{0, 12, 16}, 24))
	t.Run("2f2f", testOffsets(gfx.MustPattern("2f2f"), []int{8, 8}, []int{0, 8}, 16))
	t.Run("3d4Bn1S", testOffsets(gfx.MustPattern("3d4Bn1S"), []int{24, 4, 2}, []int{0, 24, 28}, 30))
}

func TestParsePattern(t *testing.T) {
	l, err := gfx.ParsePattern("1b2B3s4S1i2I3f4dn")
	if err != nil {
		t.Fatal(err)
	}
	expected := []gfx.Attribute{
		{Components: 1, Type: gfx.Int8},
		{Components: 2, Type: gfx.Uint8},
		{Components: 3, Type: gfx.Int16},
		{Components: 4, Type: gfx.Uint16},
		{Components: 1, Type: gfx.Int32},
		{Components: 2, Type: gfx.Uint32},
		{Components: 3, Type: gfx.Float32},
		{Components: 4, Type: gfx.Float64, Normalized: true},
	}
	if !reflect.DeepEqual(expected, l.Attributes()) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, l.Attributes())
	}
	if l.Pattern() != "1b2B3s4S1i2I3f4dn" {
		t.Fatalf("unexpected pattern %q", l.Pattern())
	}
}

func testMalformed(pattern, offset string) func(t *testing.T) {
	return func(t *testing.T) {
		_, err := gfx.ParsePattern(pattern)
		if !errors.Is(err, gfx.ErrPattern) {
			t.Fatalf("expected ErrPattern, got %v", err)
		}
		if !strings.Contains(err.Error(), offset) {
			t.Fatalf("expected %q in %q", offset, err.Error())
		}
	}
}

func TestParsePatternMalformed(t *testing.T) {
	t.Run("empty", testMalformed("", "empty"))
	t.Run("unknown code", testMalformed("3f2x", "offset 3"))
	t.Run("missing count", testMalformed("3ff", "offset 2"))
	t.Run("zero count", testMalformed("3f0f", "offset 2"))
	t.Run("count over four", testMalformed("5f", "offset 0"))
	t.Run("multi digit count", testMalformed("3f12f", "offset 2"))
	t.Run("missing code", testMalformed("3f2", "offset 3"))
	t.Run("dangling normalized", testMalformed("n", "offset 0"))
}

func TestMustPatternPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	gfx.MustPattern("9z")
}

func TestPatternWithBase(t *testing.T) {
	base := gfx.MustPattern("3f2f")
	moved := base.WithBase(4)
	if base.Base() != 0 || moved.Base() != 4 {
		t.Fatalf("expected bases 0 and 4, got %v and %v", base.Base(), moved.Base())
	}

	fn, ctx := newContext(t)
	vbo, _ := gfx.NewBufferObject(ctx, gfx.ArrayBuffer)
	if err := vbo.SetVertices([]float32{0, 0, 0, 0, 0}, gfx.StaticDraw); err != nil {
		t.Fatal(err)
	}
	va, _ := gfx.NewVertexArrayObject(ctx, gfx.Points)
	if err := va.AddBuffer(vbo, moved); err != nil {
		t.Fatal(err)
	}
	va.Bind()
	if a, _ := fn.VertexAttrib(va.ID(), 0); a.Enabled {
		t.Fatal("slot 0 enabled for a layout based at 4")
	}
	for i, want := range []glapitest.Attrib{
		{Enabled: true, Size: 3, Type: glapi.FLOAT, Stride: 20, Offset: 0, Buffer: vbo.ID()},
		{Enabled: true, Size: 2, Type: glapi.FLOAT, Stride: 20, Offset: 12, Buffer: vbo.ID()},
	} {
		got, _ := fn.VertexAttrib(va.ID(), uint32(4+i))
		if got != want {
			t.Fatalf("slot %v: expected %+v, got %+v", 4+i, want, got)
		}
	}
	va.Unbind()
	if a, _ := fn.VertexAttrib(va.ID(), 4); a.Enabled {
		t.Fatal("slot 4 still enabled after Unbind")
	}
	ctx.Probe().AssertNoErrors("pattern layout bind")
}
