package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

// ErrAttribute indicates an attribute description that cannot be bound.
const ErrAttribute log.ConstErr = "invalid vertex attribute"

// Attribute describes one vertex attribute: Components values of Type,
// optionally normalized to [0, 1] or [-1, 1] when fetched.
type Attribute struct {
	Components int
	Type       Type
	Normalized bool
}

// Size returns the attribute's size in bytes.
func (a Attribute) Size() int {
	return a.Components * a.Type.Size()
}

// Validate reports whether a has 1 to 4 components of a known type.
func (a Attribute) Validate() error {
	if a.Components < 1 || a.Components > 4 {
		return fmt.Errorf("%w: %v components", ErrAttribute, a.Components)
	}
	if a.Type.Size() == 0 {
		return fmt.Errorf("%w: %v", ErrAttribute, a.Type)
	}
	return nil
}

func (a Attribute) String() string {
	if a.Normalized {
		return fmt.Sprintf("%v×%v (normalized)", a.Components, a.Type)
	}
	return fmt.Sprintf("%v×%v", a.Components, a.Type)
}

// Layout describes how the bytes of one buffer map to consecutive vertex
// attribute slots starting at Base. VertexBufferLayout and PatternLayout both
// implement it and can be used interchangeably.
type Layout interface {
	Len() int
	At(i int) Attribute
	// Attributes returns a copy of the attribute sequence.
	Attributes() []Attribute
	// CalcStride returns the byte size of one vertex.
	CalcStride() int
	// CalcPointer returns the byte offset of attribute i; i may equal Len.
	CalcPointer(i int) int
	Base() uint32
	// Bind enables and configures every slot on the bound vertex array,
	// sourcing from the bound array buffer.
	Bind(fn glapi.Functions)
	// Unbind disables the slots Bind enabled.
	Unbind(fn glapi.Functions)
}

// layoutBase holds what both layout implementations share: the first
// attribute slot, and the vertex count of a batched (non-interleaved) buffer.
type layoutBase struct {
	base  uint32
	batch int
}

// SetBase sets the attribute slot the first attribute binds to.
func (b *layoutBase) SetBase(base uint32) { b.base = base }

// Base returns the attribute slot the first attribute binds to.
func (b *layoutBase) Base() uint32 { return b.base }

// SetBatchCount switches between interleaved data (n == 0, the default) and
// batched data, where the buffer holds n values of attribute 0, then n values
// of attribute 1, and so on.
func (b *layoutBase) SetBatchCount(n int) {
	if n < 0 {
		n = 0
	}
	b.batch = n
}

// BatchCount returns the batch size, 0 for interleaved data.
func (b *layoutBase) BatchCount() int { return b.batch }

func strideOf(attrs []Attribute) int {
	var stride int
	for _, a := range attrs {
		stride += a.Size()
	}
	return stride
}

func pointerOf(attrs []Attribute, i, batch int) int {
	offset := strideOf(attrs[:i])
	if batch > 0 {
		offset *= batch
	}
	return offset
}

func bindAttributes(fn glapi.Functions, l Layout, batch int) {
	stride := l.CalcStride()
	for i := 0; i < l.Len(); i++ {
		a := l.At(i)
		index := l.Base() + uint32(i)
		s := stride
		if batch > 0 {
			s = a.Size()
		}
		fn.EnableVertexAttribArray(index)
		fn.VertexAttribPointer(index, int32(a.Components), a.Type.Enum(), a.Normalized, int32(s), uintptr(l.CalcPointer(i)))
	}
}

func unbindAttributes(fn glapi.Functions, l Layout) {
	for i := 0; i < l.Len(); i++ {
		fn.DisableVertexAttribArray(l.Base() + uint32(i))
	}
}

// VertexBufferLayout is a layout built at runtime by pushing attributes.
// Offsets are derived from the sequence on demand, so Push never
// invalidates anything.
type VertexBufferLayout struct {
	layoutBase
	attrs []Attribute
}

var _ Layout = (*VertexBufferLayout)(nil)

// NewVertexBufferLayout returns a layout holding attrs in order.
func NewVertexBufferLayout(attrs ...Attribute) (*VertexBufferLayout, error) {
	l := &VertexBufferLayout{}
	for _, a := range attrs {
		if err := l.Push(a); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Push appends an attribute.
func (l *VertexBufferLayout) Push(a Attribute) error {
	if err := a.Validate(); err != nil {
		return err
	}
	l.attrs = append(l.attrs, a)
	return nil
}

func (l *VertexBufferLayout) Len() int             { return len(l.attrs) }
func (l *VertexBufferLayout) At(i int) Attribute   { return l.attrs[i] }
func (l *VertexBufferLayout) CalcStride() int      { return strideOf(l.attrs) }
func (l *VertexBufferLayout) CalcPointer(i int) int { return pointerOf(l.attrs, i, l.batch) }

func (l *VertexBufferLayout) Attributes() []Attribute {
	return append([]Attribute(nil), l.attrs...)
}

// Slice returns a new layout holding attributes [i, j). The slice keeps the
// slot numbers the attributes had, so its base is Base()+i.
func (l *VertexBufferLayout) Slice(i, j int) *VertexBufferLayout {
	return &VertexBufferLayout{
		layoutBase: layoutBase{base: l.base + uint32(i), batch: l.batch},
		attrs:      append([]Attribute(nil), l.attrs[i:j]...),
	}
}

func (l *VertexBufferLayout) Bind(fn glapi.Functions)   { bindAttributes(fn, l, l.batch) }
func (l *VertexBufferLayout) Unbind(fn glapi.Functions) { unbindAttributes(fn, l) }
