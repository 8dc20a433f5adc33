// Package gogl implements glapi.Functions on top of the go-gl 3.3 core
// profile bindings.
package gogl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
)

// Functions forwards every call to the driver loaded by gl.Init.
type Functions struct{}

var _ glapi.Functions = Functions{}

// New loads the OpenGL function pointers for the current context. It must be
// called after a context has been created and made current.
func New() (Functions, error) {
	if err := gl.Init(); err != nil {
		return Functions{}, err
	}
	return Functions{}, nil
}

// Version reports the version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (Functions) GetError() uint32 { return gl.GetError() }

func (Functions) GetIntegerv(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (Functions) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (Functions) DeleteBuffer(buffer uint32)       { gl.DeleteBuffers(1, &buffer) }
func (Functions) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Functions) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (Functions) BufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	gl.BufferSubData(target, offset, size, data)
}

func (Functions) GetBufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	gl.GetBufferSubData(target, offset, size, data)
}

func (Functions) GetBufferParameteri(target, pname uint32) int32 {
	var v int32
	gl.GetBufferParameteriv(target, pname, &v)
	return v
}

func (Functions) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (Functions) DeleteVertexArray(array uint32)        { gl.DeleteVertexArrays(1, &array) }
func (Functions) BindVertexArray(array uint32)          { gl.BindVertexArray(array) }
func (Functions) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (Functions) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (Functions) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (Functions) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (Functions) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}

func (Functions) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (Functions) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Functions) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Functions) GetShaderi(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (f Functions) GetShaderInfoLog(shader uint32) string {
	logLength := f.GetShaderi(shader, gl.INFO_LOG_LENGTH)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Functions) DeleteShader(shader uint32)           { gl.DeleteShader(shader) }
func (Functions) CreateProgram() uint32                { return gl.CreateProgram() }
func (Functions) AttachShader(program, shader uint32)  { gl.AttachShader(program, shader) }
func (Functions) DetachShader(program, shader uint32)  { gl.DetachShader(program, shader) }
func (Functions) LinkProgram(program uint32)           { gl.LinkProgram(program) }
func (Functions) DeleteProgram(program uint32)         { gl.DeleteProgram(program) }
func (Functions) UseProgram(program uint32)            { gl.UseProgram(program) }
func (Functions) Uniform1i(location, v0 int32)         { gl.Uniform1i(location, v0) }
func (Functions) Uniform1ui(location int32, v0 uint32) { gl.Uniform1ui(location, v0) }
func (Functions) Uniform1f(location int32, v0 float32) { gl.Uniform1f(location, v0) }

func (Functions) GetProgrami(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (f Functions) GetProgramInfoLog(program uint32) string {
	logLength := f.GetProgrami(program, gl.INFO_LOG_LENGTH)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Functions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Functions) Uniform2f(location int32, v0, v1 float32) { gl.Uniform2f(location, v0, v1) }

func (Functions) Uniform3f(location int32, v0, v1, v2 float32) {
	gl.Uniform3f(location, v0, v1, v2)
}

func (Functions) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (Functions) UniformMatrix3fv(location int32, transpose bool, value *[9]float32) {
	gl.UniformMatrix3fv(location, 1, transpose, &value[0])
}

func (Functions) UniformMatrix4fv(location int32, transpose bool, value *[16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &value[0])
}

func (Functions) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (Functions) DeleteTexture(texture uint32)        { gl.DeleteTextures(1, &texture) }
func (Functions) BindTexture(target, texture uint32)  { gl.BindTexture(target, texture) }
func (Functions) ActiveTexture(texture uint32)        { gl.ActiveTexture(texture) }
func (Functions) GenerateMipmap(target uint32)        { gl.GenerateMipmap(target) }
func (Functions) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (Functions) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (Functions) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, pixels)
}

func (Functions) TexSubImage2D(target uint32, level, x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexSubImage2D(target, level, x, y, width, height, format, xtype, pixels)
}

func (Functions) GetTexImage(target uint32, level int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.GetTexImage(target, level, format, xtype, pixels)
}

func (Functions) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (Functions) DeleteFramebuffer(framebuffer uint32)       { gl.DeleteFramebuffers(1, &framebuffer) }
func (Functions) BindFramebuffer(target, framebuffer uint32) { gl.BindFramebuffer(target, framebuffer) }

func (Functions) FramebufferTexture2D(target, attachment, texTarget, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, texTarget, texture, level)
}

func (Functions) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (Functions) GenQuery() uint32 {
	var id uint32
	gl.GenQueries(1, &id)
	return id
}

func (Functions) DeleteQuery(query uint32)          { gl.DeleteQueries(1, &query) }
func (Functions) QueryCounter(query, target uint32) { gl.QueryCounter(query, target) }

func (Functions) GetQueryObjecti(query, pname uint32) int32 {
	var v int32
	gl.GetQueryObjectiv(query, pname, &v)
	return v
}

func (Functions) GetQueryObjectui64(query, pname uint32) uint64 {
	var v uint64
	gl.GetQueryObjectui64v(query, pname, &v)
	return v
}

func (Functions) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (Functions) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (Functions) Clear(mask uint32)                  { gl.Clear(mask) }
func (Functions) Enable(capability uint32)           { gl.Enable(capability) }
func (Functions) BlendFunc(sfactor, dfactor uint32)  { gl.BlendFunc(sfactor, dfactor) }
