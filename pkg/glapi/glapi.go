// Package glapi describes the OpenGL entry points glsu calls through.
//
// The function table itself is resolved by an implementation after a context
// has been made current: package gogl forwards to the real driver and package
// glapitest provides a software stand-in for tests. Every method must be
// called from the goroutine that owns the current context.
package glapi

import "unsafe"

// Functions is the OpenGL call surface. Names returned by the Gen*/Create*
// methods are 0 on failure; errors are otherwise reported out of band through
// GetError.
type Functions interface {
	GetError() uint32
	GetIntegerv(pname uint32) int32

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	BufferSubData(target uint32, offset, size int, data unsafe.Pointer)
	GetBufferSubData(target uint32, offset, size int, data unsafe.Pointer)
	GetBufferParameteri(target, pname uint32) int32

	GenVertexArray() uint32
	DeleteVertexArray(array uint32)
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location, v0 int32)
	Uniform1ui(location int32, v0 uint32)
	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix3fv(location int32, transpose bool, value *[9]float32)
	UniformMatrix4fv(location int32, transpose bool, value *[16]float32)

	GenTexture() uint32
	DeleteTexture(texture uint32)
	BindTexture(target, texture uint32)
	ActiveTexture(texture uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels unsafe.Pointer)
	TexSubImage2D(target uint32, level, x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer)
	GetTexImage(target uint32, level int32, format, xtype uint32, pixels unsafe.Pointer)
	GenerateMipmap(target uint32)
	PixelStorei(pname uint32, param int32)

	GenFramebuffer() uint32
	DeleteFramebuffer(framebuffer uint32)
	BindFramebuffer(target, framebuffer uint32)
	FramebufferTexture2D(target, attachment, texTarget, texture uint32, level int32)
	CheckFramebufferStatus(target uint32) uint32

	GenQuery() uint32
	DeleteQuery(query uint32)
	QueryCounter(query, target uint32)
	GetQueryObjecti(query, pname uint32) int32
	GetQueryObjectui64(query, pname uint32) uint64

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
	BlendFunc(sfactor, dfactor uint32)
}
