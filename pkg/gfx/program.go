package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
	"github.com/gregjohnson2017/glsu/pkg/perf"
)

// ErrCreateProgram indicates that the driver could not allocate a program.
const ErrCreateProgram log.ConstErr = "failed to create program"

// ErrProgramLink indicates that a program failed to link
const ErrProgramLink log.ConstErr = "failed to link program"

// ErrUniformType indicates a value with no matching glUniform call.
const ErrUniformType log.ConstErr = "unsupported uniform type"

// ErrTextureCount indicates mismatched sampler names and textures.
const ErrTextureCount log.ConstErr = "sampler and texture counts differ"

// ShaderProgram is a linked program. Uniform locations are looked up once
// and cached.
type ShaderProgram struct {
	noCopy noCopy

	ctx       *Context
	id        uint32
	locations map[string]int32
}

var _ Resource = (*ShaderProgram)(nil)

// NewShaderProgram compiles a vertex and fragment shader and links them into
// a new program. The shaders are freed once linked.
func NewShaderProgram(ctx *Context, vertexSrc, fragmentSrc string) (*ShaderProgram, error) {
	vs, err := NewShader(ctx, vertexSrc, VertexShader)
	if err != nil {
		return nil, err
	}
	defer vs.Destroy()
	fs, err := NewShader(ctx, fragmentSrc, FragmentShader)
	if err != nil {
		return nil, err
	}
	defer fs.Destroy()
	return LinkProgram(ctx, vs, fs)
}

// LinkProgram attaches shaders to a new program and links it. The shaders
// are detached again afterwards and stay owned by the caller.
func LinkProgram(ctx *Context, shaders ...*Shader) (*ShaderProgram, error) {
	sw := perf.Start()
	defer sw.StopRecordAverage("gfx.linkProgram")
	prog := ctx.fn.CreateProgram()
	if prog == 0 {
		return nil, ErrCreateProgram
	}
	for i, s := range shaders {
		if !s.IsValid() {
			ctx.fn.DeleteProgram(prog)
			return nil, fmt.Errorf("link shader %v: %w", i, ErrInvalidResource)
		}
		ctx.fn.AttachShader(prog, s.id)
	}
	ctx.fn.LinkProgram(prog)
	for _, s := range shaders {
		ctx.fn.DetachShader(prog, s.id)
	}

	if ctx.fn.GetProgrami(prog, glapi.LINK_STATUS) == glapi.FALSE {
		infoLog := strings.TrimRight(ctx.fn.GetProgramInfoLog(prog), "\x00\n")
		ctx.fn.DeleteProgram(prog)
		return nil, fmt.Errorf("%w: %v", ErrProgramLink, infoLog)
	}
	return &ShaderProgram{ctx: ctx, id: prog, locations: make(map[string]int32)}, nil
}

// UniformLocation returns the location of the named uniform, or -1 if the
// program has no active uniform of that name.
func (p *ShaderProgram) UniformLocation(name string) int32 {
	if !p.IsValid() {
		misuse(p.context(), "program", "uniform lookup")
		return -1
	}
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.ctx.fn.GetUniformLocation(p.id, name)
	p.locations[name] = loc
	return loc
}

// SetUniform uploads value to the named uniform of this program, making the
// program current for the call if it is not already. Names the program does
// not use are ignored, as the GLSL compiler drops unused uniforms.
//
// Supported values are int, int32, uint32, bool, float32, float64,
// [2]/[3]/[4]float32, mgl32.Vec2/3/4, mgl32.Mat3 and mgl32.Mat4.
func (p *ShaderProgram) SetUniform(name string, value interface{}) error {
	if !p.IsValid() {
		misuse(p.context(), "program", "uniform upload")
		return ErrInvalidResource
	}
	loc := p.UniformLocation(name)
	if loc == -1 {
		log.Debugf("uniform %q is not active in program %v", name, p.id)
		return nil
	}

	fn := p.ctx.fn
	prev := p.ctx.program
	if prev != p.id {
		fn.UseProgram(p.id)
		defer fn.UseProgram(prev)
	}

	switch v := value.(type) {
	case int:
		fn.Uniform1i(loc, int32(v))
	case int32:
		fn.Uniform1i(loc, v)
	case uint32:
		fn.Uniform1ui(loc, v)
	case bool:
		var b int32
		if v {
			b = 1
		}
		fn.Uniform1i(loc, b)
	case float32:
		fn.Uniform1f(loc, v)
	case float64:
		fn.Uniform1f(loc, float32(v))
	case [2]float32:
		fn.Uniform2f(loc, v[0], v[1])
	case mgl32.Vec2:
		fn.Uniform2f(loc, v[0], v[1])
	case [3]float32:
		fn.Uniform3f(loc, v[0], v[1], v[2])
	case mgl32.Vec3:
		fn.Uniform3f(loc, v[0], v[1], v[2])
	case [4]float32:
		fn.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case mgl32.Vec4:
		fn.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case mgl32.Mat3:
		m := [9]float32(v)
		fn.UniformMatrix3fv(loc, false, &m)
	case mgl32.Mat4:
		m := [16]float32(v)
		fn.UniformMatrix4fv(loc, false, &m)
	default:
		return fmt.Errorf("%w: %q: %T", ErrUniformType, name, value)
	}
	return nil
}

// SetTextures binds textures[k] to texture unit k and points the sampler
// names[k] at that unit.
func (p *ShaderProgram) SetTextures(names []string, textures []*Texture) error {
	if len(names) != len(textures) {
		return fmt.Errorf("%w: %v names, %v textures", ErrTextureCount, len(names), len(textures))
	}
	for k, tex := range textures {
		tex.BindUnit(uint32(k))
		if err := p.SetUniform(names[k], int32(k)); err != nil {
			return err
		}
	}
	return nil
}

// Bind makes OpenGL use this program
func (p *ShaderProgram) Bind() {
	if !p.IsValid() {
		misuse(p.context(), "program", "bind")
		return
	}
	p.ctx.fn.UseProgram(p.id)
	p.ctx.program = p.id
}

// Unbind sets the current program ID to 0
func (p *ShaderProgram) Unbind() {
	if p == nil || p.ctx == nil {
		return
	}
	p.ctx.fn.UseProgram(0)
	p.ctx.program = 0
}

func (p *ShaderProgram) ID() uint32 {
	if p == nil {
		return 0
	}
	return p.id
}

func (p *ShaderProgram) IsValid() bool {
	return p != nil && p.id != 0
}

// Take moves ownership of the program into a new wrapper, leaving p
// unallocated.
func (p *ShaderProgram) Take() *ShaderProgram {
	if p == nil {
		return nil
	}
	moved := &ShaderProgram{ctx: p.ctx, id: p.id, locations: p.locations}
	p.id, p.locations = 0, nil
	return moved
}

// Destroy tells OpenGL to delete the program.
func (p *ShaderProgram) Destroy() {
	if !p.IsValid() {
		return
	}
	p.ctx.fn.DeleteProgram(p.id)
	if p.ctx.program == p.id {
		p.ctx.program = 0
	}
	p.id = 0
	p.locations = nil
}

func (p *ShaderProgram) context() *Context {
	if p == nil {
		return nil
	}
	return p.ctx
}
