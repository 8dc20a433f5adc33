package gfx

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

// ErrCreateBuffer indicates that the driver could not allocate a buffer name.
const ErrCreateBuffer log.ConstErr = "failed to create buffer object"

// ErrEmptyData indicates that the given data is empty.
const ErrEmptyData log.ConstErr = "data is empty so cannot be used"

// ErrBufferData indicates that the driver did not accept a data store
// upload. The previous data store is kept.
const ErrBufferData log.ConstErr = "buffer data rejected"

// ErrIndexType indicates index data of a type other than uint8, uint16 or
// uint32.
const ErrIndexType log.ConstErr = "unsupported index type"

// ErrOutOfBounds indicates a sub-range outside a buffer's data store.
const ErrOutOfBounds log.ConstErr = "range out of bounds"

// BufferObject owns one OpenGL buffer serving either vertex attributes or
// element indices.
type BufferObject struct {
	noCopy noCopy

	ctx       *Context
	id        uint32
	target    BufferType
	size      int
	count     int
	indexType Type
}

var _ Resource = (*BufferObject)(nil)

// NewBufferObject allocates an empty buffer for target.
func NewBufferObject(ctx *Context, target BufferType) (*BufferObject, error) {
	id := ctx.fn.GenBuffer()
	if id == 0 {
		return nil, fmt.Errorf("%w: %v buffer", ErrCreateBuffer, target)
	}
	return &BufferObject{ctx: ctx, id: id, target: target}, nil
}

// SetData replaces the data store with a copy of data.
func (bo *BufferObject) SetData(data []byte, usage Usage) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	if err := bo.upload(unsafe.Pointer(&data[0]), len(data), usage); err != nil {
		return err
	}
	bo.count = len(data)
	bo.indexType = Uint8
	return nil
}

// SetVertices replaces the data store with the contents of vertices, which
// must be a slice of numbers, of arrays of numbers, or of tightly packed
// vertex structs (see LayoutOf).
func (bo *BufferObject) SetVertices(vertices interface{}, usage Usage) error {
	v := reflect.ValueOf(vertices)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("%w: %T is not a slice", ErrAttribute, vertices)
	}
	if v.Len() == 0 {
		return ErrEmptyData
	}
	size := v.Len() * int(v.Type().Elem().Size())
	if err := bo.upload(unsafe.Pointer(v.Pointer()), size, usage); err != nil {
		return err
	}
	bo.count = v.Len()
	bo.indexType = kindTypes[v.Type().Elem().Kind()]
	return nil
}

// SetIndices replaces the data store with indices, a []uint8, []uint16 or
// []uint32, and records their count and type for indexed drawing.
func (bo *BufferObject) SetIndices(indices interface{}, usage Usage) error {
	var (
		ptr   unsafe.Pointer
		n     int
		xtype Type
	)
	switch idx := indices.(type) {
	case []uint8:
		n, xtype = len(idx), Uint8
		if n > 0 {
			ptr = unsafe.Pointer(&idx[0])
		}
	case []uint16:
		n, xtype = len(idx), Uint16
		if n > 0 {
			ptr = unsafe.Pointer(&idx[0])
		}
	case []uint32:
		n, xtype = len(idx), Uint32
		if n > 0 {
			ptr = unsafe.Pointer(&idx[0])
		}
	default:
		return fmt.Errorf("%w: %T", ErrIndexType, indices)
	}
	if n == 0 {
		return ErrEmptyData
	}
	if err := bo.upload(ptr, n*xtype.Size(), usage); err != nil {
		return err
	}
	bo.count = n
	bo.indexType = xtype
	return nil
}

func (bo *BufferObject) upload(ptr unsafe.Pointer, size int, usage Usage) error {
	if !bo.IsValid() {
		misuse(bo.context(), "buffer", "upload")
		return ErrInvalidResource
	}
	target := bo.target.Enum()
	bo.ctx.fn.BindBuffer(target, bo.id)
	// gl.BufferData acts like malloc, while gl.BufferSubData acts like memcpy
	bo.ctx.fn.BufferData(target, size, ptr, usage.Enum())
	got := int(bo.ctx.fn.GetBufferParameteri(target, glapi.BUFFER_SIZE))
	bo.ctx.fn.BindBuffer(target, 0)
	// the driver error stays pending for the ErrorProbe
	if usage.Enum() == 0 || got != size {
		return fmt.Errorf("%w: %v bytes with usage %d, store holds %v", ErrBufferData, size, int(usage), got)
	}
	bo.size = size
	return nil
}

// SetSubData overwrites part of the existing data store starting at offset
// bytes. It cannot grow the buffer.
func (bo *BufferObject) SetSubData(offset int, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	if !bo.IsValid() {
		misuse(bo.context(), "buffer", "sub-data upload")
		return ErrInvalidResource
	}
	if offset < 0 || offset+len(data) > bo.size {
		return fmt.Errorf("SetSubData(%v, %v) of %v bytes: %w", offset, len(data), bo.size, ErrOutOfBounds)
	}
	target := bo.target.Enum()
	bo.ctx.fn.BindBuffer(target, bo.id)
	bo.ctx.fn.BufferSubData(target, offset, len(data), unsafe.Pointer(&data[0]))
	bo.ctx.fn.BindBuffer(target, 0)
	return nil
}

// Data reads the whole data store back from the driver.
func (bo *BufferObject) Data() []byte {
	if !bo.IsValid() {
		misuse(bo.context(), "buffer", "readback")
		return nil
	}
	if bo.size == 0 {
		return nil
	}
	data := make([]byte, bo.size)
	target := bo.target.Enum()
	bo.ctx.fn.BindBuffer(target, bo.id)
	bo.ctx.fn.GetBufferSubData(target, 0, bo.size, unsafe.Pointer(&data[0]))
	bo.ctx.fn.BindBuffer(target, 0)
	return data
}

// Size asks the driver for the size of the data store in bytes.
func (bo *BufferObject) Size() int {
	if !bo.IsValid() {
		return 0
	}
	target := bo.target.Enum()
	bo.ctx.fn.BindBuffer(target, bo.id)
	size := bo.ctx.fn.GetBufferParameteri(target, glapi.BUFFER_SIZE)
	bo.ctx.fn.BindBuffer(target, 0)
	return int(size)
}

// Count returns the number of elements last uploaded: vertices, indices, or
// bytes for SetData.
func (bo *BufferObject) Count() int {
	if bo == nil {
		return 0
	}
	return bo.count
}

// IndexType returns the element type of the last upload.
func (bo *BufferObject) IndexType() Type {
	if bo == nil {
		return 0
	}
	return bo.indexType
}

// Target returns the binding target the buffer serves.
func (bo *BufferObject) Target() BufferType {
	return bo.target
}

func (bo *BufferObject) ID() uint32 {
	if bo == nil {
		return 0
	}
	return bo.id
}

func (bo *BufferObject) IsValid() bool {
	return bo != nil && bo.id != 0
}

// Bind binds the buffer to its target.
func (bo *BufferObject) Bind() {
	if !bo.IsValid() {
		misuse(bo.context(), "buffer", "bind")
		return
	}
	bo.ctx.fn.BindBuffer(bo.target.Enum(), bo.id)
}

// Unbind binds 0 to the buffer's target.
func (bo *BufferObject) Unbind() {
	if bo == nil || bo.ctx == nil {
		return
	}
	bo.ctx.fn.BindBuffer(bo.target.Enum(), 0)
}

// Take moves ownership of the buffer name into a new wrapper, leaving bo
// unallocated.
func (bo *BufferObject) Take() *BufferObject {
	if bo == nil {
		return nil
	}
	moved := &BufferObject{
		ctx:       bo.ctx,
		id:        bo.id,
		target:    bo.target,
		size:      bo.size,
		count:     bo.count,
		indexType: bo.indexType,
	}
	bo.id, bo.size, bo.count, bo.indexType = 0, 0, 0, 0
	return moved
}

// Destroy frees the buffer. Further calls do nothing.
func (bo *BufferObject) Destroy() {
	if !bo.IsValid() {
		return
	}
	bo.ctx.fn.DeleteBuffer(bo.id)
	bo.id = 0
	bo.size = 0
	bo.count = 0
}

func (bo *BufferObject) context() *Context {
	if bo == nil {
		return nil
	}
	return bo.ctx
}
