package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

// ErrCreateVertexArray indicates that the driver could not allocate a vertex
// array name.
const ErrCreateVertexArray log.ConstErr = "failed to create vertex array"

type vertexSource struct {
	vbo    *BufferObject
	layout Layout
}

// VertexArrayObject pairs vertex buffers with the layouts describing them.
// Each layout binds to its own attribute slots, so one array can draw from
// several buffers at once. The buffers stay owned by the caller.
type VertexArrayObject struct {
	noCopy noCopy

	ctx     *Context
	id      uint32
	mode    RenderMode
	sources []vertexSource
}

var _ Resource = (*VertexArrayObject)(nil)

// NewVertexArrayObject allocates an empty vertex array drawing primitives of
// the given mode. Example mode: Triangles.
func NewVertexArrayObject(ctx *Context, mode RenderMode) (*VertexArrayObject, error) {
	va := &VertexArrayObject{}
	if err := va.init(ctx, mode); err != nil {
		return nil, err
	}
	return va, nil
}

func (va *VertexArrayObject) init(ctx *Context, mode RenderMode) error {
	id := ctx.fn.GenVertexArray()
	if id == 0 {
		return ErrCreateVertexArray
	}
	va.ctx, va.id, va.mode = ctx, id, mode
	return nil
}

// AddBuffer records vbo as the source of the attributes layout describes.
func (va *VertexArrayObject) AddBuffer(vbo *BufferObject, layout Layout) error {
	if !va.IsValid() {
		misuse(va.context(), "vertex array", "AddBuffer")
		return ErrInvalidResource
	}
	if !vbo.IsValid() {
		misuse(va.ctx, "buffer", "AddBuffer")
		return ErrInvalidResource
	}
	if vbo.Target() != ArrayBuffer {
		return fmt.Errorf("%w: %v buffer cannot source vertex attributes", ErrAttribute, vbo.Target())
	}
	va.sources = append(va.sources, vertexSource{vbo: vbo, layout: layout})
	return nil
}

// Mode returns the primitive type drawn.
func (va *VertexArrayObject) Mode() RenderMode {
	return va.mode
}

// VertexCount returns the number of whole vertices in the first buffer.
func (va *VertexArrayObject) VertexCount() int {
	if va == nil || len(va.sources) == 0 {
		return 0
	}
	src := va.sources[0]
	stride := src.layout.CalcStride()
	if stride == 0 {
		return 0
	}
	return src.vbo.size / stride
}

// Bind binds the vertex array and configures every attribute slot from its
// buffer. A source buffer destroyed since AddBuffer is reported instead of
// bound.
func (va *VertexArrayObject) Bind() {
	va.bind()
}

// bind reports whether the array and all of its sources were bound.
func (va *VertexArrayObject) bind() bool {
	if !va.IsValid() {
		misuse(va.context(), "vertex array", "bind")
		return false
	}
	fn := va.ctx.fn
	fn.BindVertexArray(va.id)
	ok := true
	for _, src := range va.sources {
		if !src.vbo.IsValid() {
			misuse(va.ctx, "buffer", "bind")
			ok = false
			continue
		}
		fn.BindBuffer(glapi.ARRAY_BUFFER, src.vbo.id)
		src.layout.Bind(fn)
	}
	fn.BindBuffer(glapi.ARRAY_BUFFER, 0)
	return ok
}

// Unbind disables the attribute slots Bind enabled and binds vertex array 0.
func (va *VertexArrayObject) Unbind() {
	if va == nil || va.ctx == nil {
		return
	}
	fn := va.ctx.fn
	if va.id != 0 {
		for _, src := range va.sources {
			src.layout.Unbind(fn)
		}
	}
	fn.BindVertexArray(0)
}

// Draw renders count vertices starting at first with the current program.
func (va *VertexArrayObject) Draw(first, count int) {
	if !va.IsValid() {
		misuse(va.context(), "vertex array", "draw")
		return
	}
	if va.bind() {
		va.ctx.fn.DrawArrays(uint32(va.mode), int32(first), int32(count))
	}
	va.Unbind()
}

func (va *VertexArrayObject) ID() uint32 {
	if va == nil {
		return 0
	}
	return va.id
}

func (va *VertexArrayObject) IsValid() bool {
	return va != nil && va.id != 0
}

// Take moves ownership of the vertex array into a new wrapper, leaving va
// unallocated.
func (va *VertexArrayObject) Take() *VertexArrayObject {
	if va == nil {
		return nil
	}
	moved := &VertexArrayObject{ctx: va.ctx, id: va.id, mode: va.mode, sources: va.sources}
	va.id, va.sources = 0, nil
	return moved
}

// Destroy frees the vertex array. The buffers added to it are not freed.
func (va *VertexArrayObject) Destroy() {
	if !va.IsValid() {
		return
	}
	va.ctx.fn.DeleteVertexArray(va.id)
	va.id = 0
	va.sources = nil
}

func (va *VertexArrayObject) context() *Context {
	if va == nil {
		return nil
	}
	return va.ctx
}

// IndexedVertexArrayObject is a vertex array that owns an element buffer and
// draws through it.
type IndexedVertexArrayObject struct {
	VertexArrayObject
	ibo *BufferObject
}

var _ Resource = (*IndexedVertexArrayObject)(nil)

// NewIndexedVertexArrayObject allocates a vertex array and its element
// buffer. Neither is left allocated on failure.
func NewIndexedVertexArrayObject(ctx *Context, mode RenderMode) (*IndexedVertexArrayObject, error) {
	iva := &IndexedVertexArrayObject{}
	if err := iva.init(ctx, mode); err != nil {
		return nil, err
	}
	ibo, err := NewBufferObject(ctx, ElementBuffer)
	if err != nil {
		iva.VertexArrayObject.Destroy()
		return nil, err
	}
	iva.ibo = ibo
	return iva, nil
}

// SetIndices uploads indices ([]uint8, []uint16 or []uint32) to the element
// buffer.
func (iva *IndexedVertexArrayObject) SetIndices(indices interface{}, usage Usage) error {
	if !iva.IsValid() {
		misuse(iva.context(), "indexed vertex array", "SetIndices")
		return ErrInvalidResource
	}
	return iva.ibo.SetIndices(indices, usage)
}

// Indices returns the element buffer.
func (iva *IndexedVertexArrayObject) Indices() *BufferObject {
	return iva.ibo
}

// IndexCount returns the number of indices last uploaded.
func (iva *IndexedVertexArrayObject) IndexCount() int {
	if iva == nil {
		return 0
	}
	return iva.ibo.Count()
}

// Bind binds the vertex array, its attribute sources and its element buffer.
// The element binding is vertex array state, so it is made after the array
// is bound.
func (iva *IndexedVertexArrayObject) Bind() {
	iva.bind()
}

func (iva *IndexedVertexArrayObject) bind() bool {
	if !iva.IsValid() {
		misuse(iva.context(), "indexed vertex array", "bind")
		return false
	}
	ok := iva.VertexArrayObject.bind()
	iva.ibo.Bind()
	return ok
}

func (iva *IndexedVertexArrayObject) Unbind() {
	if iva == nil {
		return
	}
	iva.ibo.Unbind()
	iva.VertexArrayObject.Unbind()
}

// DrawElements renders every uploaded index with the current program.
func (iva *IndexedVertexArrayObject) DrawElements() {
	if !iva.IsValid() {
		misuse(iva.context(), "indexed vertex array", "draw")
		return
	}
	if iva.bind() {
		iva.ctx.fn.DrawElements(uint32(iva.mode), int32(iva.ibo.Count()), iva.ibo.IndexType().Enum(), 0)
	}
	iva.Unbind()
}

func (iva *IndexedVertexArrayObject) IsValid() bool {
	return iva != nil && iva.VertexArrayObject.IsValid() && iva.ibo.IsValid()
}

// Take moves ownership of the vertex array and its element buffer into a new
// wrapper, leaving iva unallocated.
func (iva *IndexedVertexArrayObject) Take() *IndexedVertexArrayObject {
	if iva == nil {
		return nil
	}
	moved := &IndexedVertexArrayObject{ibo: iva.ibo.Take()}
	moved.ctx, moved.id, moved.mode, moved.sources = iva.ctx, iva.id, iva.mode, iva.sources
	iva.id, iva.sources = 0, nil
	return moved
}

func (iva *IndexedVertexArrayObject) context() *Context {
	if iva == nil {
		return nil
	}
	return iva.ctx
}

// Destroy frees the vertex array and its element buffer.
func (iva *IndexedVertexArrayObject) Destroy() {
	if iva == nil {
		return
	}
	iva.VertexArrayObject.Destroy()
	iva.ibo.Destroy()
}
