package gfx

import (
	"fmt"
	"reflect"
	"strings"
)

var kindTypes = map[reflect.Kind]Type{
	reflect.Int8:    Int8,
	reflect.Uint8:   Uint8,
	reflect.Int16:   Int16,
	reflect.Uint16:  Uint16,
	reflect.Int32:   Int32,
	reflect.Uint32:  Uint32,
	reflect.Float32: Float32,
	reflect.Float64: Float64,
}

// LayoutOf derives a layout from the fields of the struct vertex (or a
// pointer to one). Every exported field must be a supported scalar or an
// array of 1 to 4 of them, for example
//
//	type Vertex struct {
//		Pos   mgl32.Vec3
//		UV    [2]float32
//		Color [4]uint8 `vertex:"normalized"`
//	}
//
// Zero-sized fields are ignored. Fields must be tightly packed, as the
// layout has no notion of padding.
func LayoutOf(vertex interface{}) (*VertexBufferLayout, error) {
	t := reflect.TypeOf(vertex)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrAttribute, t)
	}

	l := &VertexBufferLayout{}
	var offset uintptr
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Size() == 0 {
			continue
		}
		if f.PkgPath != "" {
			return nil, fmt.Errorf("%w: field %v.%v is unexported", ErrAttribute, t.Name(), f.Name)
		}
		if f.Offset != offset {
			return nil, fmt.Errorf("%w: field %v.%v is padded", ErrAttribute, t.Name(), f.Name)
		}
		a, err := fieldAttribute(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %v.%v: %w", t.Name(), f.Name, err)
		}
		for _, opt := range strings.Split(f.Tag.Get("vertex"), ",") {
			if opt == "normalized" {
				a.Normalized = true
			}
		}
		if err := l.Push(a); err != nil {
			return nil, fmt.Errorf("field %v.%v: %w", t.Name(), f.Name, err)
		}
		offset += f.Type.Size()
	}
	if offset != t.Size() {
		return nil, fmt.Errorf("%w: %v has trailing padding", ErrAttribute, t.Name())
	}
	return l, nil
}

func fieldAttribute(t reflect.Type) (Attribute, error) {
	if et, ok := kindTypes[t.Kind()]; ok {
		return Attribute{Components: 1, Type: et}, nil
	}
	if t.Kind() == reflect.Array {
		et, ok := kindTypes[t.Elem().Kind()]
		if ok {
			return Attribute{Components: t.Len(), Type: et}, nil
		}
	}
	return Attribute{}, fmt.Errorf("%w: unsupported field type %v", ErrAttribute, t)
}
