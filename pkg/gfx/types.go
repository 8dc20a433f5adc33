package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
)

// Type is a scalar element type that vertex data and indices are made of.
type Type int

// The supported element types. The zero value is invalid.
const (
	Int8 Type = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

var typeInfo = [...]struct {
	name string
	size int
	enum uint32
}{
	Int8:    {"int8", 1, glapi.BYTE},
	Uint8:   {"uint8", 1, glapi.UNSIGNED_BYTE},
	Int16:   {"int16", 2, glapi.SHORT},
	Uint16:  {"uint16", 2, glapi.UNSIGNED_SHORT},
	Int32:   {"int32", 4, glapi.INT},
	Uint32:  {"uint32", 4, glapi.UNSIGNED_INT},
	Float32: {"float32", 4, glapi.FLOAT},
	Float64: {"float64", 8, glapi.DOUBLE},
}

func (t Type) valid() bool {
	return t >= Int8 && t <= Float64
}

// Size returns the size of one element in bytes, or 0 for an invalid type.
func (t Type) Size() int {
	if !t.valid() {
		return 0
	}
	return typeInfo[t].size
}

// Enum returns the OpenGL enumeration value for t, or 0 for an invalid type.
func (t Type) Enum() uint32 {
	if !t.valid() {
		return 0
	}
	return typeInfo[t].enum
}

// IsIntegral reports whether t is one of the integer types.
func (t Type) IsIntegral() bool {
	return t.valid() && t != Float32 && t != Float64
}

func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeInfo[t].name
}
