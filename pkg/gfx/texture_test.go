package gfx_test

import (
	"errors"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/glapi"
)

func TestNewTexture(t *testing.T) {
	fn, ctx := newContext(t)
	data := []byte{
		1, 2, 3,
		4, 5, 6,
	}
	tex, err := gfx.NewTexture(ctx, 3, 2, data, gfx.Red)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Destroy()
	if w, h := fn.TextureSize(tex.ID()); w != 3 || h != 2 || tex.Width() != 3 || tex.Height() != 2 {
		t.Fatalf("expected 3x2, got %vx%v", w, h)
	}
	if !reflect.DeepEqual(data, tex.Data()) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", data, tex.Data())
	}
	if !fn.HasMipmaps(tex.ID()) {
		t.Fatal("expected mipmaps after upload")
	}
	if fn.BoundTexture(0) != 0 {
		t.Fatal("NewTexture left the texture bound")
	}
	ctx.Probe().AssertNoErrors("new texture")
}

func TestNewTextureErrors(t *testing.T) {
	_, ctx := newContext(t)
	if _, err := gfx.NewTexture(ctx, 0, 4, nil, gfx.RGBA); !errors.Is(err, gfx.ErrTextureSize) {
		t.Fatalf("expected ErrTextureSize, got %v", err)
	}
	if _, err := gfx.NewTexture(ctx, 2, 2, make([]byte, 15), gfx.RGBA); !errors.Is(err, gfx.ErrTextureData) {
		t.Fatalf("expected ErrTextureData, got %v", err)
	}
	if _, err := gfx.NewTexture(ctx, 2, 2, nil, gfx.Format(0)); !errors.Is(err, gfx.ErrTextureData) {
		t.Fatalf("expected ErrTextureData for an unknown format, got %v", err)
	}
	ctx.Probe().AssertNoErrors("texture errors")
}

func TestTextureParameters(t *testing.T) {
	fn, ctx := newContext(t)
	tex, _ := gfx.NewTexture(ctx, 1, 1, nil, gfx.RGB)
	defer tex.Destroy()
	tex.SetMinFilter(gfx.LinearMipmapLinear)
	tex.SetMagFilter(gfx.Nearest)
	tex.SetWrapMode(gfx.CoordS, gfx.ClampToEdge)
	tex.SetWrapMode(gfx.CoordT, gfx.MirroredRepeat)
	ctx.Probe().AssertNoErrors("texture parameters")

	for pname, want := range map[uint32]int32{
		glapi.TEXTURE_MIN_FILTER: glapi.LINEAR_MIPMAP_LINEAR,
		glapi.TEXTURE_MAG_FILTER: glapi.NEAREST,
		glapi.TEXTURE_WRAP_S:     glapi.CLAMP_TO_EDGE,
		glapi.TEXTURE_WRAP_T:     glapi.MIRRORED_REPEAT,
	} {
		if got := fn.TexParameter(tex.ID(), pname); got != want {
			t.Fatalf("parameter %#x: expected %#x, got %#x", pname, want, got)
		}
	}

	tex.SetMagFilter(gfx.LinearMipmapLinear)
	if err := ctx.Probe().Check("mag filter"); err == nil {
		t.Fatal("expected INVALID_ENUM for a mipmap magnification filter")
	}
}

func TestTextureSetPixels(t *testing.T) {
	_, ctx := newContext(t)
	tex, _ := gfx.NewTexture(ctx, 2, 2, make([]byte, 16), gfx.RGBA)
	defer tex.Destroy()
	if err := tex.SetPixels(1, 0, 1, 2, []byte{1, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		0, 0, 0, 0, 1, 2, 3, 4,
		0, 0, 0, 0, 5, 6, 7, 8,
	}
	if actual := tex.Data(); !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, actual)
	}
	if err := tex.SetPixels(1, 1, 2, 1, make([]byte, 8)); !errors.Is(err, gfx.ErrCoordOutOfRange) {
		t.Fatalf("expected ErrCoordOutOfRange, got %v", err)
	}
	if err := tex.SetPixels(0, 0, 1, 1, make([]byte, 3)); !errors.Is(err, gfx.ErrTextureData) {
		t.Fatalf("expected ErrTextureData, got %v", err)
	}
	ctx.Probe().AssertNoErrors("set pixels")
}

func TestNewTextureFromImage(t *testing.T) {
	fn, ctx := newContext(t)
	img := image.NewGray(image.Rect(10, 10, 12, 11))
	img.SetGray(10, 10, color.Gray{Y: 0x40})
	img.SetGray(11, 10, color.Gray{Y: 0xff})
	tex, err := gfx.NewTextureFromImage(ctx, img)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Destroy()
	expected := []byte{0x40, 0x40, 0x40, 0xff, 0xff, 0xff, 0xff, 0xff}
	if actual := fn.TexturePixels(tex.ID()); !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, actual)
	}
	if tex.Format() != gfx.RGBA {
		t.Fatalf("expected RGBA, got %#x", uint32(tex.Format()))
	}
	if fn.TexParameter(tex.ID(), glapi.TEXTURE_MIN_FILTER) != glapi.LINEAR_MIPMAP_NEAREST {
		t.Fatal("expected mipmapped minification")
	}
	ctx.Probe().AssertNoErrors("texture from image")
}

func TestNewTextureFromSubImage(t *testing.T) {
	fn, ctx := newContext(t)
	parent := image.NewNRGBA(image.Rect(0, 0, 2, 4))
	parent.SetNRGBA(0, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	parent.SetNRGBA(0, 2, color.NRGBA{R: 9, G: 9, B: 9, A: 9})
	sub := parent.SubImage(image.Rect(0, 1, 2, 3))
	tex, err := gfx.NewTextureFromImage(ctx, sub)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Destroy()
	if tex.Width() != 2 || tex.Height() != 2 {
		t.Fatalf("expected 2x2, got %vx%v", tex.Width(), tex.Height())
	}
	expected := []byte{1, 2, 3, 4, 0, 0, 0, 0, 9, 9, 9, 9, 0, 0, 0, 0}
	if actual := fn.TexturePixels(tex.ID()); !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, actual)
	}
	ctx.Probe().AssertNoErrors("texture from sub-image")
}

func TestTextureUnits(t *testing.T) {
	fn, ctx := newContext(t)
	tex, _ := gfx.NewTexture(ctx, 1, 1, []byte{0}, gfx.Red)
	defer tex.Destroy()
	tex.BindUnit(3)
	if fn.BoundTexture(3) != tex.ID() || fn.ActiveUnit() != 0 {
		t.Fatalf("expected texture on unit 3 with unit 0 active, got %v active %v", fn.BoundTexture(3), fn.ActiveUnit())
	}
	tex.UnbindUnit(3)
	if fn.BoundTexture(3) != 0 {
		t.Fatal("UnbindUnit left the texture bound")
	}
	ctx.Probe().AssertNoErrors("texture units")
}
