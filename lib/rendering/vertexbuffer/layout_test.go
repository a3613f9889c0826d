package vertexbuffer

import (
	"errors"
	"slices"
	"testing"
	"unsafe"
)

type colouredVertex struct {
	Position [2]float32
	Colour   [3]float32
}

type packedVertex struct {
	Position [3]float32
	Colour   [4]uint8
}

func TestValidate(t *testing.T) {
	pos2 := Attribute{Type: Float, Count: 2}
	rgb := Attribute{Type: Float, Count: 3}
	tests := []struct {
		name    string
		layout  Layout
		size    uintptr
		wantErr error
	}{
		{"packed", Layout{Attributes: []Attribute{pos2, rgb}}, unsafe.Sizeof(colouredVertex{}), nil},
		{"explicit stride", Layout{Stride: 20, Attributes: []Attribute{pos2, rgb}}, unsafe.Sizeof(colouredVertex{}), nil},
		{"normalized bytes", Layout{Attributes: []Attribute{{Type: Float, Count: 3}, {Type: UnsignedByte, Count: 4, Normalized: true}}}, unsafe.Sizeof(packedVertex{}), nil},
		{"stride mismatch", Layout{Stride: 24, Attributes: []Attribute{pos2, rgb}}, unsafe.Sizeof(colouredVertex{}), ErrStrideMismatch},
		{"size mismatch", Layout{Attributes: []Attribute{pos2}}, unsafe.Sizeof(colouredVertex{}), ErrSizeMismatch},
		{"empty", Layout{}, 0, ErrEmptyLayout},
		{"unknown type", Layout{Attributes: []Attribute{{Type: 0x1234, Count: 1}}}, 4, ErrInvalidAttribute},
		{"too many components", Layout{Attributes: []Attribute{{Type: Float, Count: 5}}}, 20, ErrInvalidAttribute},
		{"no components", Layout{Attributes: []Attribute{{Type: Float}}}, 0, ErrInvalidAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate(tt.size)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOffsets(t *testing.T) {
	l := Layout{Attributes: []Attribute{
		{Type: Float, Count: 3},
		{Type: UnsignedByte, Count: 4},
		{Type: Short, Count: 2},
	}}
	if got, want := l.Offsets(), []int{0, 12, 16}; !slices.Equal(got, want) {
		t.Fatalf("Offsets = %v, want %v", got, want)
	}
	if l.Size() != 20 {
		t.Fatalf("Size = %d", l.Size())
	}
}

func TestAttribType(t *testing.T) {
	if Float.Integer() || Double.Integer() || !Int.Integer() || !UnsignedByte.Integer() {
		t.Fatal("integer classification wrong")
	}
	if Double.Size() != 8 || UnsignedShort.Size() != 2 || AttribType(0).Size() != 0 {
		t.Fatal("sizes wrong")
	}
	if Float.String() != "float" {
		t.Fatalf("String = %q", Float.String())
	}
}
