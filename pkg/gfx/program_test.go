package gfx_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
)

func TestNewShaderProgram(t *testing.T) {
	fn, ctx := newContext(t)
	p, err := gfx.NewShaderProgram(ctx, gfx.MeshVertex, gfx.FragmentShaderSource)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Destroy()
	if !p.IsValid() || !fn.IsProgram(p.ID()) {
		t.Fatal("expected a valid program")
	}
	for _, name := range []string{"model", "view", "projection", "frag_tex"} {
		if p.UniformLocation(name) == -1 {
			t.Fatalf("uniform %q not found", name)
		}
	}
	ctx.Probe().AssertNoErrors("shader program")
}

func TestShaderCompileFailure(t *testing.T) {
	fn, ctx := newContext(t)
	broken := "#version 330\n#error broken\nvoid main() {}"
	p, err := gfx.NewShaderProgram(ctx, gfx.MeshVertex, broken)
	if !errors.Is(err, gfx.ErrCompileShader) {
		t.Fatalf("expected ErrCompileShader, got %v", err)
	}
	if p.IsValid() {
		t.Fatal("failed program reports valid")
	}
	msg := strings.TrimPrefix(err.Error(), gfx.ErrCompileShader.Error()+": fragment: ")
	if msg == "" || msg == err.Error() {
		t.Fatalf("expected the info log in %q", err.Error())
	}
	for id := uint32(1); id < 8; id++ {
		if fn.IsShader(id) || fn.IsProgram(id) {
			t.Fatalf("object %v leaked", id)
		}
	}
	ctx.Probe().AssertNoErrors("failed compile")
}

func TestLinkProgramFailure(t *testing.T) {
	_, ctx := newContext(t)
	if _, err := gfx.LinkProgram(ctx); !errors.Is(err, gfx.ErrProgramLink) {
		t.Fatalf("expected ErrProgramLink, got %v", err)
	}

	var destroyed gfx.Shader
	if _, err := gfx.LinkProgram(ctx, &destroyed); !errors.Is(err, gfx.ErrInvalidResource) {
		t.Fatalf("expected ErrInvalidResource, got %v", err)
	}
	ctx.Probe().AssertNoErrors("failed link")
}

func TestLinkProgramStages(t *testing.T) {
	fn, ctx := newContext(t)
	vs, err := gfx.NewShader(ctx, gfx.PositionVertex, gfx.VertexShader)
	if err != nil {
		t.Fatal(err)
	}
	fs, err := gfx.NewShader(ctx, gfx.SolidColorFragment, gfx.FragmentShader)
	if err != nil {
		t.Fatal(err)
	}
	if vs.Stage() != gfx.VertexShader || fs.Stage() != gfx.FragmentShader {
		t.Fatalf("unexpected stages %v, %v", vs.Stage(), fs.Stage())
	}
	p, err := gfx.LinkProgram(ctx, vs, fs)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Destroy()
	vs.Destroy()
	fs.Destroy()
	if fn.IsShader(vs.ID()) || vs.IsValid() {
		t.Fatal("shader still allocated after Destroy")
	}
	if !p.IsValid() {
		t.Fatal("program invalidated by freeing its shaders")
	}
	ctx.Probe().AssertNoErrors("link stages")
}

func testUniform(p *gfx.ShaderProgram, fn interface {
	Uniform(uint32, string) (interface{}, bool)
}, name string, value, expected interface{}) func(t *testing.T) {
	return func(t *testing.T) {
		if err := p.SetUniform(name, value); err != nil {
			t.Fatal(err)
		}
		actual, ok := fn.Uniform(p.ID(), name)
		if !ok || !reflect.DeepEqual(expected, actual) {
			t.Fatalf("expected != actual\nexpected: %#v\nactual: %#v", expected, actual)
		}
	}
}

const uniformSource = `
#version 330
uniform int i;
uniform uint u;
uniform float f;
uniform vec2 v2;
uniform vec3 v3;
uniform vec4 v4;
uniform mat3 m3;
uniform mat4 m4;
out vec4 frag_color;
void main() {}`

func TestSetUniform(t *testing.T) {
	fn, ctx := newContext(t)
	p, err := gfx.NewShaderProgram(ctx, gfx.PositionVertex, uniformSource)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Destroy()

	t.Run("int", testUniform(p, fn, "i", 7, int32(7)))
	t.Run("int32", testUniform(p, fn, "i", int32(-3), int32(-3)))
	t.Run("bool", testUniform(p, fn, "i", true, int32(1)))
	t.Run("uint32", testUniform(p, fn, "u", uint32(9), uint32(9)))
	t.Run("float32", testUniform(p, fn, "f", float32(0.5), float32(0.5)))
	t.Run("float64", testUniform(p, fn, "f", 0.25, float32(0.25)))
	t.Run("vec2", testUniform(p, fn, "v2", mgl32.Vec2{1, 2}, [2]float32{1, 2}))
	t.Run("array3", testUniform(p, fn, "v3", [3]float32{1, 2, 3}, [3]float32{1, 2, 3}))
	t.Run("vec4", testUniform(p, fn, "v4", mgl32.Vec4{1, 2, 3, 4}, [4]float32{1, 2, 3, 4}))
	t.Run("mat3", testUniform(p, fn, "m3", mgl32.Ident3(), [9]float32(mgl32.Ident3())))
	t.Run("mat4", testUniform(p, fn, "m4", mgl32.Translate3D(1, 2, 3), [16]float32(mgl32.Translate3D(1, 2, 3))))

	if err := p.SetUniform("i", "seven"); !errors.Is(err, gfx.ErrUniformType) {
		t.Fatalf("expected ErrUniformType, got %v", err)
	}
	if err := p.SetUniform("missing", 1); err != nil {
		t.Fatalf("unknown uniform: expected nil, got %v", err)
	}
	if fn.CurrentProgram() != 0 {
		t.Fatal("SetUniform left its program current")
	}
	ctx.Probe().AssertNoErrors("set uniform")
}

func TestSetUniformRestoresCurrentProgram(t *testing.T) {
	fn, ctx := newContext(t)
	a, _ := gfx.NewShaderProgram(ctx, gfx.PositionVertex, gfx.SolidColorFragment)
	b, _ := gfx.NewShaderProgram(ctx, gfx.PositionVertex, gfx.SolidColorFragment)
	defer a.Destroy()
	defer b.Destroy()

	a.Bind()
	if err := b.SetUniform("uni_color", mgl32.Vec4{1, 0, 0, 1}); err != nil {
		t.Fatal(err)
	}
	if fn.CurrentProgram() != a.ID() {
		t.Fatalf("expected program %v current, got %v", a.ID(), fn.CurrentProgram())
	}
	if _, ok := fn.Uniform(a.ID(), "uni_color"); ok {
		t.Fatal("uniform uploaded to the current program instead of its own")
	}
	if v, _ := fn.Uniform(b.ID(), "uni_color"); !reflect.DeepEqual(v, [4]float32{1, 0, 0, 1}) {
		t.Fatalf("unexpected value %v", v)
	}
	a.Unbind()
	ctx.Probe().AssertNoErrors("uniform restore")
}

func TestSetTextures(t *testing.T) {
	fn, ctx := newContext(t)
	p, _ := gfx.NewShaderProgram(ctx, gfx.MeshVertex, gfx.FragmentShaderSource)
	defer p.Destroy()
	t0, _ := gfx.NewTexture(ctx, 1, 1, []byte{1, 2, 3, 4}, gfx.RGBA)
	t1, _ := gfx.NewTexture(ctx, 1, 1, []byte{5, 6, 7, 8}, gfx.RGBA)
	defer t0.Destroy()
	defer t1.Destroy()

	if err := p.SetTextures([]string{"frag_tex", "unused"}, []*gfx.Texture{t0, t1}); err != nil {
		t.Fatal(err)
	}
	if fn.BoundTexture(0) != t0.ID() || fn.BoundTexture(1) != t1.ID() {
		t.Fatalf("expected textures %v, %v on units 0, 1", t0.ID(), t1.ID())
	}
	if v, _ := fn.Uniform(p.ID(), "frag_tex"); v != int32(0) {
		t.Fatalf("expected sampler unit 0, got %v", v)
	}
	if err := p.SetTextures([]string{"frag_tex"}, nil); !errors.Is(err, gfx.ErrTextureCount) {
		t.Fatalf("expected ErrTextureCount, got %v", err)
	}
	ctx.Probe().AssertNoErrors("set textures")
}
