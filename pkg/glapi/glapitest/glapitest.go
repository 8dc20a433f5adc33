// Package glapitest provides a software implementation of glapi.Functions
// that keeps just enough OpenGL state to check how code drives the API:
// object names, bindings, buffer and texture contents, vertex attribute
// setup, uniforms, draw calls and the error flags. It renders nothing.
package glapitest

import (
	"regexp"
	"sort"
	"strings"
	"unsafe"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
)

// MaxVertexAttribs is the number of attribute slots every vertex array has.
const MaxVertexAttribs = 16

// MaxTextureUnits is the number of texture units available.
const MaxTextureUnits = 32

// Attrib is the recorded state of one vertex attribute slot.
type Attrib struct {
	Enabled    bool
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Buffer     uint32
}

// DrawCall records one DrawArrays or DrawElements call.
type DrawCall struct {
	Mode        uint32
	First       int32
	Count       int32
	IndexType   uint32
	Indexed     bool
	Program     uint32
	VertexArray uint32
}

type vertexArray struct {
	attribs [MaxVertexAttribs]Attrib
	element uint32
}

type shader struct {
	xtype    uint32
	source   string
	compiled bool
	log      string
}

type program struct {
	shaders  map[uint32]bool
	linked   bool
	log      string
	uniforms map[string]int32
	values   map[int32]interface{}
}

type texture struct {
	width, height int32
	format        uint32
	pixels        []byte
	params        map[uint32]int32
	mipmaps       bool
}

// Functions is the software OpenGL state machine. The zero value is not
// usable; call New.
type Functions struct {
	next    uint32
	failGen bool

	errors []uint32

	buffers      map[uint32][]byte
	arrayBuffer  uint32
	vertexArrays map[uint32]*vertexArray
	vertexArray  uint32

	shaders  map[uint32]*shader
	programs map[uint32]*program
	current  uint32

	textures   map[uint32]*texture
	activeUnit uint32
	units      [MaxTextureUnits]uint32
	pixelStore map[uint32]int32

	framebuffers map[uint32]uint32
	framebuffer  uint32

	queries map[uint32]uint64
	clock   uint64

	enabled map[uint32]bool
	draws   []DrawCall
}

var _ glapi.Functions = (*Functions)(nil)

// New returns a context with nothing allocated and nothing bound.
func New() *Functions {
	return &Functions{
		buffers: make(map[uint32][]byte),
		// vertex array 0 holds the element binding made with no VAO bound
		vertexArrays: map[uint32]*vertexArray{0: {}},
		shaders:      make(map[uint32]*shader),
		programs:     make(map[uint32]*program),
		textures:     map[uint32]*texture{0: {params: make(map[uint32]int32)}},
		pixelStore:   map[uint32]int32{glapi.UNPACK_ALIGNMENT: 4, glapi.PACK_ALIGNMENT: 4},
		framebuffers: make(map[uint32]uint32),
		queries:      make(map[uint32]uint64),
		enabled:      make(map[uint32]bool),
	}
}

func (f *Functions) raise(code uint32) {
	for _, e := range f.errors {
		if e == code {
			return
		}
	}
	f.errors = append(f.errors, code)
}

func (f *Functions) gen() uint32 {
	if f.failGen {
		f.failGen = false
		f.raise(glapi.OUT_OF_MEMORY)
		return 0
	}
	f.next++
	return f.next
}

// RaiseError sets an error flag as if the driver had detected it.
func (f *Functions) RaiseError(code uint32) { f.raise(code) }

// FailNextGen makes the next Gen*/Create* call return 0 and raise
// OUT_OF_MEMORY.
func (f *Functions) FailNextGen() { f.failGen = true }

// PendingErrors returns the error flags that GetError has yet to report.
func (f *Functions) PendingErrors() []uint32 {
	return append([]uint32(nil), f.errors...)
}

func (f *Functions) GetError() uint32 {
	if len(f.errors) == 0 {
		return glapi.NO_ERROR
	}
	e := f.errors[0]
	f.errors = f.errors[1:]
	return e
}

func (f *Functions) GetIntegerv(pname uint32) int32 {
	switch pname {
	case glapi.MAX_VERTEX_ATTRIBS:
		return MaxVertexAttribs
	}
	f.raise(glapi.INVALID_ENUM)
	return 0
}

func bytesOf(data unsafe.Pointer, size int) []byte {
	if data == nil || size == 0 {
		return nil
	}
	return (*[1 << 30]byte)(data)[:size:size]
}

func validUsage(usage uint32) bool {
	switch usage {
	case glapi.STREAM_DRAW, glapi.STREAM_READ, glapi.STREAM_COPY,
		glapi.STATIC_DRAW, glapi.STATIC_READ, glapi.STATIC_COPY,
		glapi.DYNAMIC_DRAW, glapi.DYNAMIC_READ, glapi.DYNAMIC_COPY:
		return true
	}
	return false
}

func validType(xtype uint32) bool {
	switch xtype {
	case glapi.BYTE, glapi.UNSIGNED_BYTE, glapi.SHORT, glapi.UNSIGNED_SHORT,
		glapi.INT, glapi.UNSIGNED_INT, glapi.FLOAT, glapi.DOUBLE:
		return true
	}
	return false
}

func validMode(mode uint32) bool {
	switch mode {
	case glapi.POINTS, glapi.LINES, glapi.LINE_LOOP, glapi.LINE_STRIP,
		glapi.TRIANGLES, glapi.TRIANGLE_STRIP, glapi.TRIANGLE_FAN,
		glapi.LINES_ADJACENCY, glapi.LINE_STRIP_ADJACENCY,
		glapi.TRIANGLES_ADJACENCY, glapi.TRIANGLE_STRIP_ADJACENCY:
		return true
	}
	return false
}

// bufferBinding returns a pointer to the binding slot for target, or nil
// after raising INVALID_ENUM.
func (f *Functions) bufferBinding(target uint32) *uint32 {
	switch target {
	case glapi.ARRAY_BUFFER:
		return &f.arrayBuffer
	case glapi.ELEMENT_ARRAY_BUFFER:
		return &f.vertexArrays[f.vertexArray].element
	}
	f.raise(glapi.INVALID_ENUM)
	return nil
}

func (f *Functions) GenBuffer() uint32 {
	id := f.gen()
	if id != 0 {
		f.buffers[id] = nil
	}
	return id
}

func (f *Functions) DeleteBuffer(buffer uint32) {
	if _, ok := f.buffers[buffer]; !ok {
		return
	}
	delete(f.buffers, buffer)
	if f.arrayBuffer == buffer {
		f.arrayBuffer = 0
	}
	if va := f.vertexArrays[f.vertexArray]; va.element == buffer {
		va.element = 0
	}
}

func (f *Functions) BindBuffer(target, buffer uint32) {
	slot := f.bufferBinding(target)
	if slot == nil {
		return
	}
	if _, ok := f.buffers[buffer]; buffer != 0 && !ok {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	*slot = buffer
}

func (f *Functions) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	slot := f.bufferBinding(target)
	if slot == nil {
		return
	}
	if !validUsage(usage) {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if size < 0 {
		f.raise(glapi.INVALID_VALUE)
		return
	}
	if *slot == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	buf := make([]byte, size)
	copy(buf, bytesOf(data, size))
	f.buffers[*slot] = buf
}

func (f *Functions) boundBufferRange(target uint32, offset, size int) []byte {
	slot := f.bufferBinding(target)
	if slot == nil {
		return nil
	}
	if *slot == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return nil
	}
	buf := f.buffers[*slot]
	if offset < 0 || size < 0 || offset+size > len(buf) {
		f.raise(glapi.INVALID_VALUE)
		return nil
	}
	return buf[offset : offset+size]
}

func (f *Functions) BufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	if dst := f.boundBufferRange(target, offset, size); dst != nil {
		copy(dst, bytesOf(data, size))
	}
}

func (f *Functions) GetBufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	if src := f.boundBufferRange(target, offset, size); src != nil {
		copy(bytesOf(data, size), src)
	}
}

func (f *Functions) GetBufferParameteri(target, pname uint32) int32 {
	slot := f.bufferBinding(target)
	if slot == nil {
		return 0
	}
	if pname != glapi.BUFFER_SIZE {
		f.raise(glapi.INVALID_ENUM)
		return 0
	}
	if *slot == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return 0
	}
	return int32(len(f.buffers[*slot]))
}

func (f *Functions) GenVertexArray() uint32 {
	id := f.gen()
	if id != 0 {
		f.vertexArrays[id] = &vertexArray{}
	}
	return id
}

func (f *Functions) DeleteVertexArray(array uint32) {
	if _, ok := f.vertexArrays[array]; !ok || array == 0 {
		return
	}
	delete(f.vertexArrays, array)
	if f.vertexArray == array {
		f.vertexArray = 0
	}
}

func (f *Functions) BindVertexArray(array uint32) {
	if _, ok := f.vertexArrays[array]; !ok {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	f.vertexArray = array
}

// attrib returns the slot for index in the bound vertex array, or nil after
// raising the error the core profile specifies.
func (f *Functions) attrib(index uint32) *Attrib {
	if index >= MaxVertexAttribs {
		f.raise(glapi.INVALID_VALUE)
		return nil
	}
	if f.vertexArray == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return nil
	}
	return &f.vertexArrays[f.vertexArray].attribs[index]
}

func (f *Functions) EnableVertexAttribArray(index uint32) {
	if a := f.attrib(index); a != nil {
		a.Enabled = true
	}
}

func (f *Functions) DisableVertexAttribArray(index uint32) {
	if a := f.attrib(index); a != nil {
		a.Enabled = false
	}
}

func (f *Functions) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	a := f.attrib(index)
	if a == nil {
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		f.raise(glapi.INVALID_VALUE)
		return
	}
	if !validType(xtype) {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if f.arrayBuffer == 0 && offset != 0 {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	enabled := a.Enabled
	*a = Attrib{
		Enabled:    enabled,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
		Buffer:     f.arrayBuffer,
	}
}

func (f *Functions) DrawArrays(mode uint32, first, count int32) {
	if !validMode(mode) {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if first < 0 || count < 0 {
		f.raise(glapi.INVALID_VALUE)
		return
	}
	if f.vertexArray == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	f.draws = append(f.draws, DrawCall{
		Mode:        mode,
		First:       first,
		Count:       count,
		Program:     f.current,
		VertexArray: f.vertexArray,
	})
}

func (f *Functions) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	if !validMode(mode) {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	switch xtype {
	case glapi.UNSIGNED_BYTE, glapi.UNSIGNED_SHORT, glapi.UNSIGNED_INT:
	default:
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if count < 0 {
		f.raise(glapi.INVALID_VALUE)
		return
	}
	if f.vertexArray == 0 || f.vertexArrays[f.vertexArray].element == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	f.draws = append(f.draws, DrawCall{
		Mode:        mode,
		First:       int32(offset),
		Count:       count,
		IndexType:   xtype,
		Indexed:     true,
		Program:     f.current,
		VertexArray: f.vertexArray,
	})
}

func (f *Functions) CreateShader(xtype uint32) uint32 {
	switch xtype {
	case glapi.VERTEX_SHADER, glapi.FRAGMENT_SHADER, glapi.GEOMETRY_SHADER, glapi.COMPUTE_SHADER:
	default:
		f.raise(glapi.INVALID_ENUM)
		return 0
	}
	id := f.gen()
	if id != 0 {
		f.shaders[id] = &shader{xtype: xtype}
	}
	return id
}

func (f *Functions) lookupShader(id uint32) *shader {
	s, ok := f.shaders[id]
	if !ok {
		f.raise(glapi.INVALID_VALUE)
	}
	return s
}

func (f *Functions) ShaderSource(id uint32, source string) {
	if s := f.lookupShader(id); s != nil {
		s.source = source
	}
}

// CompileShader accepts any source that declares main and contains no
// #error directive.
func (f *Functions) CompileShader(id uint32) {
	s := f.lookupShader(id)
	if s == nil {
		return
	}
	switch {
	case strings.Contains(s.source, "#error"):
		s.compiled, s.log = false, "0:1(1): error: #error directive in shader source"
	case !strings.Contains(s.source, "void main"):
		s.compiled, s.log = false, "0:1(1): error: no function main() defined"
	default:
		s.compiled, s.log = true, ""
	}
}

func infoLogLength(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log) + 1)
}

func (f *Functions) GetShaderi(id, pname uint32) int32 {
	s := f.lookupShader(id)
	if s == nil {
		return 0
	}
	switch pname {
	case glapi.COMPILE_STATUS:
		if s.compiled {
			return glapi.TRUE
		}
		return glapi.FALSE
	case glapi.INFO_LOG_LENGTH:
		return infoLogLength(s.log)
	}
	f.raise(glapi.INVALID_ENUM)
	return 0
}

func (f *Functions) GetShaderInfoLog(id uint32) string {
	if s := f.lookupShader(id); s != nil {
		return s.log
	}
	return ""
}

func (f *Functions) DeleteShader(id uint32) {
	delete(f.shaders, id)
}

func (f *Functions) CreateProgram() uint32 {
	id := f.gen()
	if id != 0 {
		f.programs[id] = &program{shaders: make(map[uint32]bool)}
	}
	return id
}

func (f *Functions) lookupProgram(id uint32) *program {
	p, ok := f.programs[id]
	if !ok {
		f.raise(glapi.INVALID_VALUE)
	}
	return p
}

func (f *Functions) AttachShader(prog, sh uint32) {
	p := f.lookupProgram(prog)
	if p == nil || f.lookupShader(sh) == nil {
		return
	}
	if p.shaders[sh] {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	p.shaders[sh] = true
}

func (f *Functions) DetachShader(prog, sh uint32) {
	p := f.lookupProgram(prog)
	if p == nil {
		return
	}
	if !p.shaders[sh] {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	delete(p.shaders, sh)
}

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*(\[\s*\d+\s*\])?\s*;`)

func (f *Functions) LinkProgram(prog uint32) {
	p := f.lookupProgram(prog)
	if p == nil {
		return
	}
	p.linked, p.log = false, ""
	p.uniforms = make(map[string]int32)
	p.values = make(map[int32]interface{})
	if len(p.shaders) == 0 {
		p.log = "error: no shaders attached to the program"
		return
	}
	for id := range p.shaders {
		s, ok := f.shaders[id]
		if !ok || !s.compiled {
			p.log = "error: linking with uncompiled/unspecialized shader"
			return
		}
	}
	// locations follow name order so they are stable across runs
	var names []string
	for id := range p.shaders {
		for _, m := range uniformDecl.FindAllStringSubmatch(f.shaders[id].source, -1) {
			names = append(names, m[1])
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := p.uniforms[name]; !ok {
			p.uniforms[name] = int32(len(p.uniforms))
		}
	}
	p.linked = true
}

func (f *Functions) GetProgrami(prog, pname uint32) int32 {
	p := f.lookupProgram(prog)
	if p == nil {
		return 0
	}
	switch pname {
	case glapi.LINK_STATUS:
		if p.linked {
			return glapi.TRUE
		}
		return glapi.FALSE
	case glapi.INFO_LOG_LENGTH:
		return infoLogLength(p.log)
	}
	f.raise(glapi.INVALID_ENUM)
	return 0
}

func (f *Functions) GetProgramInfoLog(prog uint32) string {
	if p := f.lookupProgram(prog); p != nil {
		return p.log
	}
	return ""
}

func (f *Functions) DeleteProgram(prog uint32) {
	if prog == 0 {
		return
	}
	delete(f.programs, prog)
	if f.current == prog {
		f.current = 0
	}
}

func (f *Functions) UseProgram(prog uint32) {
	if prog == 0 {
		f.current = 0
		return
	}
	p := f.lookupProgram(prog)
	if p == nil {
		return
	}
	if !p.linked {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	f.current = prog
}

func (f *Functions) GetUniformLocation(prog uint32, name string) int32 {
	p := f.lookupProgram(prog)
	if p == nil {
		return -1
	}
	if !p.linked {
		f.raise(glapi.INVALID_OPERATION)
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *Functions) setUniform(location int32, v interface{}) {
	if f.current == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	if location == -1 {
		return
	}
	p := f.programs[f.current]
	if location < 0 || int(location) >= len(p.uniforms) {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	p.values[location] = v
}

func (f *Functions) Uniform1i(location, v0 int32)                  { f.setUniform(location, v0) }
func (f *Functions) Uniform1ui(location int32, v0 uint32)          { f.setUniform(location, v0) }
func (f *Functions) Uniform1f(location int32, v0 float32)          { f.setUniform(location, v0) }
func (f *Functions) Uniform2f(location int32, v0, v1 float32)      { f.setUniform(location, [2]float32{v0, v1}) }
func (f *Functions) Uniform3f(location int32, v0, v1, v2 float32)  { f.setUniform(location, [3]float32{v0, v1, v2}) }
func (f *Functions) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.setUniform(location, [4]float32{v0, v1, v2, v3})
}

func (f *Functions) UniformMatrix3fv(location int32, transpose bool, value *[9]float32) {
	f.setUniform(location, *value)
}

func (f *Functions) UniformMatrix4fv(location int32, transpose bool, value *[16]float32) {
	f.setUniform(location, *value)
}

func (f *Functions) GenTexture() uint32 {
	id := f.gen()
	if id != 0 {
		f.textures[id] = &texture{params: make(map[uint32]int32)}
	}
	return id
}

func (f *Functions) DeleteTexture(tex uint32) {
	if _, ok := f.textures[tex]; !ok || tex == 0 {
		return
	}
	delete(f.textures, tex)
	for i, t := range f.units {
		if t == tex {
			f.units[i] = 0
		}
	}
}

func (f *Functions) BindTexture(target, tex uint32) {
	if target != glapi.TEXTURE_2D {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if _, ok := f.textures[tex]; !ok {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	f.units[f.activeUnit] = tex
}

func (f *Functions) ActiveTexture(unit uint32) {
	if unit < glapi.TEXTURE0 || unit >= glapi.TEXTURE0+MaxTextureUnits {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	f.activeUnit = unit - glapi.TEXTURE0
}

// boundTexture returns the texture bound to the active unit, or nil after
// raising the appropriate error.
func (f *Functions) boundTexture(target uint32) *texture {
	if target != glapi.TEXTURE_2D {
		f.raise(glapi.INVALID_ENUM)
		return nil
	}
	if f.units[f.activeUnit] == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return nil
	}
	return f.textures[f.units[f.activeUnit]]
}

func (f *Functions) TexParameteri(target, pname uint32, param int32) {
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	ok := false
	switch pname {
	case glapi.TEXTURE_MAG_FILTER:
		ok = param == glapi.NEAREST || param == glapi.LINEAR
	case glapi.TEXTURE_MIN_FILTER:
		switch param {
		case glapi.NEAREST, glapi.LINEAR, glapi.NEAREST_MIPMAP_NEAREST, glapi.LINEAR_MIPMAP_NEAREST,
			glapi.NEAREST_MIPMAP_LINEAR, glapi.LINEAR_MIPMAP_LINEAR:
			ok = true
		}
	case glapi.TEXTURE_WRAP_S, glapi.TEXTURE_WRAP_T:
		switch param {
		case glapi.REPEAT, glapi.MIRRORED_REPEAT, glapi.CLAMP_TO_EDGE, glapi.CLAMP_TO_BORDER:
			ok = true
		}
	}
	if !ok {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	t.params[pname] = param
}

func channels(format uint32) int32 {
	switch format {
	case glapi.RED:
		return 1
	case glapi.RGB:
		return 3
	case glapi.RGBA:
		return 4
	}
	return 0
}

func (f *Functions) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	if channels(format) == 0 || xtype != glapi.UNSIGNED_BYTE {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if width < 0 || height < 0 || level < 0 {
		f.raise(glapi.INVALID_VALUE)
		return
	}
	if level > 0 {
		return
	}
	size := int(width * height * channels(format))
	t.width, t.height, t.format = width, height, format
	t.pixels = make([]byte, size)
	copy(t.pixels, bytesOf(pixels, size))
	t.mipmaps = false
}

func (f *Functions) TexSubImage2D(target uint32, level, x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	if format != t.format || xtype != glapi.UNSIGNED_BYTE {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	if x < 0 || y < 0 || width < 0 || height < 0 || x+width > t.width || y+height > t.height {
		f.raise(glapi.INVALID_VALUE)
		return
	}
	c := channels(format)
	src := bytesOf(pixels, int(width*height*c))
	for row := int32(0); row < height; row++ {
		dst := ((y+row)*t.width + x) * c
		copy(t.pixels[dst:dst+width*c], src[row*width*c:(row+1)*width*c])
	}
}

func (f *Functions) GetTexImage(target uint32, level int32, format, xtype uint32, pixels unsafe.Pointer) {
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	if format != t.format || xtype != glapi.UNSIGNED_BYTE {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	copy(bytesOf(pixels, len(t.pixels)), t.pixels)
}

func (f *Functions) GenerateMipmap(target uint32) {
	if t := f.boundTexture(target); t != nil {
		t.mipmaps = true
	}
}

func (f *Functions) PixelStorei(pname uint32, param int32) {
	switch param {
	case 1, 2, 4, 8:
	default:
		f.raise(glapi.INVALID_VALUE)
		return
	}
	f.pixelStore[pname] = param
}

func (f *Functions) GenFramebuffer() uint32 {
	id := f.gen()
	if id != 0 {
		f.framebuffers[id] = 0
	}
	return id
}

func (f *Functions) DeleteFramebuffer(fb uint32) {
	if _, ok := f.framebuffers[fb]; !ok {
		return
	}
	delete(f.framebuffers, fb)
	if f.framebuffer == fb {
		f.framebuffer = 0
	}
}

func (f *Functions) BindFramebuffer(target, fb uint32) {
	if target != glapi.FRAMEBUFFER {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if _, ok := f.framebuffers[fb]; fb != 0 && !ok {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	f.framebuffer = fb
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget, tex uint32, level int32) {
	if target != glapi.FRAMEBUFFER || attachment != glapi.COLOR_ATTACHMENT0 || texTarget != glapi.TEXTURE_2D {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if f.framebuffer == 0 {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	if _, ok := f.textures[tex]; !ok {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	f.framebuffers[f.framebuffer] = tex
}

// framebufferIncompleteAttachment is GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT.
const framebufferIncompleteAttachment = 0x8CD6

func (f *Functions) CheckFramebufferStatus(target uint32) uint32 {
	if target != glapi.FRAMEBUFFER {
		f.raise(glapi.INVALID_ENUM)
		return 0
	}
	if f.framebuffer == 0 {
		return glapi.FRAMEBUFFER_COMPLETE
	}
	t, ok := f.textures[f.framebuffers[f.framebuffer]]
	if !ok || f.framebuffers[f.framebuffer] == 0 || t.width == 0 || t.height == 0 {
		return framebufferIncompleteAttachment
	}
	return glapi.FRAMEBUFFER_COMPLETE
}

func (f *Functions) GenQuery() uint32 {
	id := f.gen()
	if id != 0 {
		f.queries[id] = 0
	}
	return id
}

func (f *Functions) DeleteQuery(query uint32) { delete(f.queries, query) }

// QueryCounter advances a fake GPU clock by one microsecond per call.
func (f *Functions) QueryCounter(query, target uint32) {
	if target != glapi.TIMESTAMP {
		f.raise(glapi.INVALID_ENUM)
		return
	}
	if _, ok := f.queries[query]; !ok {
		f.raise(glapi.INVALID_OPERATION)
		return
	}
	f.clock += 1000
	f.queries[query] = f.clock
}

func (f *Functions) GetQueryObjecti(query, pname uint32) int32 {
	if _, ok := f.queries[query]; !ok {
		f.raise(glapi.INVALID_OPERATION)
		return 0
	}
	if pname != glapi.QUERY_RESULT_AVAILABLE {
		f.raise(glapi.INVALID_ENUM)
		return 0
	}
	return glapi.TRUE
}

func (f *Functions) GetQueryObjectui64(query, pname uint32) uint64 {
	v, ok := f.queries[query]
	if !ok {
		f.raise(glapi.INVALID_OPERATION)
		return 0
	}
	if pname != glapi.QUERY_RESULT {
		f.raise(glapi.INVALID_ENUM)
		return 0
	}
	return v
}

func (f *Functions) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		f.raise(glapi.INVALID_VALUE)
	}
}

func (f *Functions) ClearColor(r, g, b, a float32) {}
func (f *Functions) Clear(mask uint32)             {}
func (f *Functions) Enable(capability uint32)      { f.enabled[capability] = true }
func (f *Functions) BlendFunc(sfactor, dfactor uint32) {}
