package vertexbuffer

import (
	"errors"
	"fmt"
)

// AttribType is the component type of a vertex attribute. The values are
// the matching GL enums.
type AttribType uint32

const (
	Byte          AttribType = 0x1400
	UnsignedByte  AttribType = 0x1401
	Short         AttribType = 0x1402
	UnsignedShort AttribType = 0x1403
	Int           AttribType = 0x1404
	UnsignedInt   AttribType = 0x1405
	Float         AttribType = 0x1406
	Double        AttribType = 0x140A
)

// Size is the byte size of one component, or 0 for an unknown type.
func (t AttribType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	case Double:
		return 8
	}
	return 0
}

// Integer reports whether the attribute is fed to the shader as integers.
func (t AttribType) Integer() bool {
	return t != Float && t != Double
}

func (t AttribType) String() string {
	switch t {
	case Byte:
		return "byte"
	case UnsignedByte:
		return "ubyte"
	case Short:
		return "short"
	case UnsignedShort:
		return "ushort"
	case Int:
		return "int"
	case UnsignedInt:
		return "uint"
	case Float:
		return "float"
	case Double:
		return "double"
	}
	return fmt.Sprintf("AttribType(%#x)", uint32(t))
}

// Attribute is one vertex field: Count components of Type.
type Attribute struct {
	Type       AttribType
	Count      int
	Normalized bool
}

func (a Attribute) Size() int {
	return a.Type.Size() * a.Count
}

var (
	ErrEmptyLayout      = errors.New("layout has no attributes")
	ErrInvalidAttribute = errors.New("invalid attribute")
	ErrStrideMismatch   = errors.New("stride does not match attribute sizes")
	ErrSizeMismatch     = errors.New("attribute sizes do not match vertex size")
)

// Layout describes how a vertex type is laid out in memory. A zero Stride
// means tightly packed.
type Layout struct {
	Stride     int
	Attributes []Attribute
}

// Size is the sum of the attribute sizes.
func (l Layout) Size() int {
	n := 0
	for _, a := range l.Attributes {
		n += a.Size()
	}
	return n
}

// Offsets returns the byte offset of every attribute.
func (l Layout) Offsets() []int {
	offsets := make([]int, len(l.Attributes))
	n := 0
	for i, a := range l.Attributes {
		offsets[i] = n
		n += a.Size()
	}
	return offsets
}

// Validate checks l against a vertex type of vertexSize bytes. Padding is
// not supported: the attributes must cover the vertex exactly.
func (l Layout) Validate(vertexSize uintptr) error {
	if len(l.Attributes) == 0 {
		return ErrEmptyLayout
	}
	for i, a := range l.Attributes {
		if a.Type.Size() == 0 {
			return fmt.Errorf("%w %d: unknown type %s", ErrInvalidAttribute, i, a.Type)
		}
		if a.Count < 1 || a.Count > 4 {
			return fmt.Errorf("%w %d: %d components, want 1 to 4", ErrInvalidAttribute, i, a.Count)
		}
	}

	size := l.Size()
	if l.Stride != 0 && l.Stride != size {
		return fmt.Errorf("%w: stride %d, attributes %d bytes", ErrStrideMismatch, l.Stride, size)
	}
	if uintptr(size) != vertexSize {
		return fmt.Errorf("%w: attributes %d bytes, vertex %d bytes", ErrSizeMismatch, size, vertexSize)
	}
	return nil
}
