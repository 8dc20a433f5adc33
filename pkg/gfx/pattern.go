package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

// ErrPattern indicates a malformed layout pattern.
const ErrPattern log.ConstErr = "invalid layout pattern"

var patternCodes = map[byte]Type{
	'b': Int8,
	'B': Uint8,
	's': Int16,
	'S': Uint16,
	'i': Int32,
	'I': Uint32,
	'f': Float32,
	'd': Float64,
}

// normalizedMark after a type code marks the attribute normalized.
const normalizedMark = 'n'

// PatternLayout is a layout described by a compact pattern string, one
// <count><code>[n] token per attribute with no separators:
//
//	b int8    B uint8
//	s int16   S uint16
//	i int32   I uint32
//	f float32 d float64
//
// count is 1 to 4, and a trailing n marks the attribute normalized. For
// example "3f2f4Bn" is a position, a texture coordinate and a normalized
// byte color. Patterns are static per vertex format, so parse them once,
// usually into package-level variables with MustPattern.
type PatternLayout struct {
	layoutBase
	pattern string
	attrs   []Attribute
}

var _ Layout = (*PatternLayout)(nil)

// ParsePattern parses pattern into a layout.
func ParsePattern(pattern string) (*PatternLayout, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrPattern)
	}
	var attrs []Attribute
	for i := 0; i < len(pattern); {
		start := i
		count := 0
		for i < len(pattern) && pattern[i] >= '0' && pattern[i] <= '9' {
			count = count*10 + int(pattern[i]-'0')
			i++
			if count > 4 {
				return nil, fmt.Errorf("%w %q: count at offset %v exceeds 4", ErrPattern, pattern, start)
			}
		}
		if i == start {
			return nil, fmt.Errorf("%w %q: expected count at offset %v", ErrPattern, pattern, i)
		}
		if count == 0 {
			return nil, fmt.Errorf("%w %q: zero count at offset %v", ErrPattern, pattern, start)
		}
		if i == len(pattern) {
			return nil, fmt.Errorf("%w %q: missing type code at offset %v", ErrPattern, pattern, i)
		}
		t, ok := patternCodes[pattern[i]]
		if !ok {
			return nil, fmt.Errorf("%w %q: unknown type code %q at offset %v", ErrPattern, pattern, pattern[i], i)
		}
		i++
		a := Attribute{Components: count, Type: t}
		if i < len(pattern) && pattern[i] == normalizedMark {
			a.Normalized = true
			i++
		}
		attrs = append(attrs, a)
	}
	return &PatternLayout{pattern: pattern, attrs: attrs}, nil
}

// MustPattern is like ParsePattern but panics if the pattern is malformed.
// It simplifies safe initialization of global layouts.
func MustPattern(pattern string) *PatternLayout {
	l, err := ParsePattern(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

// Pattern returns the source pattern.
func (l *PatternLayout) Pattern() string { return l.pattern }

// WithBase returns a copy of l whose first attribute binds to slot base.
func (l *PatternLayout) WithBase(base uint32) *PatternLayout {
	c := *l
	c.base = base
	return &c
}

func (l *PatternLayout) Len() int              { return len(l.attrs) }
func (l *PatternLayout) At(i int) Attribute    { return l.attrs[i] }
func (l *PatternLayout) CalcStride() int       { return strideOf(l.attrs) }
func (l *PatternLayout) CalcPointer(i int) int { return pointerOf(l.attrs, i, l.batch) }

func (l *PatternLayout) Attributes() []Attribute {
	return append([]Attribute(nil), l.attrs...)
}

func (l *PatternLayout) Bind(fn glapi.Functions)   { bindAttributes(fn, l, l.batch) }
func (l *PatternLayout) Unbind(fn glapi.Functions) { unbindAttributes(fn, l) }

func (l *PatternLayout) String() string { return l.pattern }
