package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
)

// Usage hints how often a buffer's data store changes and who reads it.
// Full docs: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
type Usage int

const (
	// StaticDraw data is set once, used many times as a draw source.
	StaticDraw Usage = iota + 1
	// DynamicDraw data is changed a lot and used many times as a draw source.
	DynamicDraw
	// StreamDraw data is set once and drawn at most a few times.
	StreamDraw

	StaticRead
	DynamicRead
	StreamRead

	StaticCopy
	DynamicCopy
	StreamCopy
)

// Enum returns the OpenGL value of u. Unknown hints map to 0, which the
// driver rejects with INVALID_ENUM.
func (u Usage) Enum() uint32 {
	switch u {
	case StaticDraw:
		return glapi.STATIC_DRAW
	case DynamicDraw:
		return glapi.DYNAMIC_DRAW
	case StreamDraw:
		return glapi.STREAM_DRAW

	case StaticRead:
		return glapi.STATIC_READ
	case DynamicRead:
		return glapi.DYNAMIC_READ
	case StreamRead:
		return glapi.STREAM_READ

	case StaticCopy:
		return glapi.STATIC_COPY
	case DynamicCopy:
		return glapi.DYNAMIC_COPY
	case StreamCopy:
		return glapi.STREAM_COPY
	}
	return 0
}

// BufferType is the binding target a buffer object serves.
type BufferType int

const (
	// ArrayBuffer holds vertex attributes.
	ArrayBuffer BufferType = iota
	// ElementBuffer holds indices into the vertex attributes.
	ElementBuffer
)

func (b BufferType) Enum() uint32 {
	if b == ElementBuffer {
		return glapi.ELEMENT_ARRAY_BUFFER
	}
	return glapi.ARRAY_BUFFER
}

func (b BufferType) String() string {
	if b == ElementBuffer {
		return "element"
	}
	return "array"
}

// RenderMode is the primitive assembled from the vertex stream.
type RenderMode uint32

const (
	Points                 RenderMode = glapi.POINTS
	Lines                  RenderMode = glapi.LINES
	LineLoop               RenderMode = glapi.LINE_LOOP
	LineStrip              RenderMode = glapi.LINE_STRIP
	Triangles              RenderMode = glapi.TRIANGLES
	TriangleStrip          RenderMode = glapi.TRIANGLE_STRIP
	TriangleFan            RenderMode = glapi.TRIANGLE_FAN
	LinesAdjacency         RenderMode = glapi.LINES_ADJACENCY
	LineStripAdjacency     RenderMode = glapi.LINE_STRIP_ADJACENCY
	TrianglesAdjacency     RenderMode = glapi.TRIANGLES_ADJACENCY
	TriangleStripAdjacency RenderMode = glapi.TRIANGLE_STRIP_ADJACENCY
)

// ShaderType is a programmable pipeline stage.
type ShaderType uint32

const (
	VertexShader   ShaderType = glapi.VERTEX_SHADER
	FragmentShader ShaderType = glapi.FRAGMENT_SHADER
	GeometryShader ShaderType = glapi.GEOMETRY_SHADER
	ComputeShader  ShaderType = glapi.COMPUTE_SHADER
)

func (s ShaderType) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	case GeometryShader:
		return "geometry"
	case ComputeShader:
		return "compute"
	}
	return fmt.Sprintf("ShaderType(%#x)", uint32(s))
}

// Filter is a texture minification or magnification function. Only Nearest
// and Linear are valid for magnification.
type Filter int32

const (
	Nearest              Filter = glapi.NEAREST
	Linear               Filter = glapi.LINEAR
	NearestMipmapNearest Filter = glapi.NEAREST_MIPMAP_NEAREST
	LinearMipmapNearest  Filter = glapi.LINEAR_MIPMAP_NEAREST
	NearestMipmapLinear  Filter = glapi.NEAREST_MIPMAP_LINEAR
	LinearMipmapLinear   Filter = glapi.LINEAR_MIPMAP_LINEAR
)

// WrapMode controls texture lookups outside [0, 1].
type WrapMode int32

const (
	Repeat         WrapMode = glapi.REPEAT
	MirroredRepeat WrapMode = glapi.MIRRORED_REPEAT
	ClampToEdge    WrapMode = glapi.CLAMP_TO_EDGE
	ClampToBorder  WrapMode = glapi.CLAMP_TO_BORDER
)

// Coord names a texture coordinate axis.
type Coord uint32

const (
	CoordS Coord = glapi.TEXTURE_WRAP_S
	CoordT Coord = glapi.TEXTURE_WRAP_T
)

// Format is the pixel layout of texture data; components are always bytes.
type Format uint32

const (
	Red  Format = glapi.RED
	RGB  Format = glapi.RGB
	RGBA Format = glapi.RGBA
)

// Channels returns the number of bytes per pixel.
func (f Format) Channels() int {
	switch f {
	case Red:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}
