package gfx

import (
	"fmt"
	"strings"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
	"github.com/gregjohnson2017/glsu/pkg/perf"
)

// ErrCompileShader indicates that a shader failed to compile
const ErrCompileShader log.ConstErr = "failed to compile shader"

// ErrCreateShader indicates that a shader couldn't be created
const ErrCreateShader log.ConstErr = "failed to create shader"

// Shader is one compiled pipeline stage. It is only needed until the
// programs using it are linked.
type Shader struct {
	noCopy noCopy

	ctx   *Context
	id    uint32
	stage ShaderType
}

// NewShader attempts to compile the given shader source code as a shader
// of type stage (ex: FragmentShader). On failure the returned error carries
// the driver's info log and no shader is left allocated.
func NewShader(ctx *Context, source string, stage ShaderType) (*Shader, error) {
	sw := perf.Start()
	defer sw.StopRecordAverage("gfx.compileShader")
	id := ctx.fn.CreateShader(uint32(stage))
	if id == 0 {
		return nil, fmt.Errorf("%w: %v", ErrCreateShader, stage)
	}

	ctx.fn.ShaderSource(id, source)
	ctx.fn.CompileShader(id)

	if ctx.fn.GetShaderi(id, glapi.COMPILE_STATUS) == glapi.FALSE {
		infoLog := strings.TrimRight(ctx.fn.GetShaderInfoLog(id), "\x00\n")
		ctx.fn.DeleteShader(id)
		return nil, fmt.Errorf("%w: %v: %v", ErrCompileShader, stage, infoLog)
	}
	return &Shader{ctx: ctx, id: id, stage: stage}, nil
}

// Stage returns the pipeline stage the shader was compiled for.
func (s *Shader) Stage() ShaderType {
	return s.stage
}

func (s *Shader) ID() uint32 {
	if s == nil {
		return 0
	}
	return s.id
}

func (s *Shader) IsValid() bool {
	return s != nil && s.id != 0
}

// Destroy frees the shader. Programs it is linked into are not affected.
func (s *Shader) Destroy() {
	if !s.IsValid() {
		return
	}
	s.ctx.fn.DeleteShader(s.id)
	s.id = 0
}
