package gfx_test

import (
	"testing"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/glapi"
)

func TestTypeInfo(t *testing.T) {
	cases := []struct {
		typ      gfx.Type
		size     int
		enum     uint32
		integral bool
	}{
		{gfx.Int8, 1, glapi.BYTE, true},
		{gfx.Uint8, 1, glapi.UNSIGNED_BYTE, true},
		{gfx.Int16, 2, glapi.SHORT, true},
		{gfx.Uint16, 2, glapi.UNSIGNED_SHORT, true},
		{gfx.Int32, 4, glapi.INT, true},
		{gfx.Uint32, 4, glapi.UNSIGNED_INT, true},
		{gfx.Float32, 4, glapi.FLOAT, false},
		{gfx.Float64, 8, glapi.DOUBLE, false},
		{gfx.Type(0), 0, 0, false},
		{gfx.Type(99), 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.typ.String(), func(t *testing.T) {
			if c.typ.Size() != c.size || c.typ.Enum() != c.enum || c.typ.IsIntegral() != c.integral {
				t.Fatalf("expected (%v, %#x, %v), got (%v, %#x, %v)", c.size, c.enum, c.integral,
					c.typ.Size(), c.typ.Enum(), c.typ.IsIntegral())
			}
		})
	}
}

func TestUsageEnum(t *testing.T) {
	expected := map[gfx.Usage]uint32{
		gfx.StaticDraw:  glapi.STATIC_DRAW,
		gfx.DynamicDraw: glapi.DYNAMIC_DRAW,
		gfx.StreamDraw:  glapi.STREAM_DRAW,
		gfx.StaticRead:  glapi.STATIC_READ,
		gfx.DynamicRead: glapi.DYNAMIC_READ,
		gfx.StreamRead:  glapi.STREAM_READ,
		gfx.StaticCopy:  glapi.STATIC_COPY,
		gfx.DynamicCopy: glapi.DYNAMIC_COPY,
		gfx.StreamCopy:  glapi.STREAM_COPY,
		gfx.Usage(0):    0,
		gfx.Usage(10):   0,
	}
	for u, want := range expected {
		if got := u.Enum(); got != want {
			t.Fatalf("Usage(%d): expected %#x, got %#x", int(u), want, got)
		}
	}
}
