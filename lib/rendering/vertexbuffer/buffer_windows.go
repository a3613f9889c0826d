//go:build windows

package vertexbuffer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Buffer keeps vertices of type V on the CPU and mirrors them into a vertex
// buffer object bound to its own vertex array. All methods need the owning
// context to be current.
type Buffer[V any] struct {
	vao, vbo uint32

	vertices []V
	uploaded int32
}

func New[V any]() *Buffer[V] {
	b := &Buffer[V]{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	return b
}

// ConfigureLayout assigns attribute i to shader location i. It fails,
// leaving the previous layout in place, when the attributes do not
// describe V exactly.
func (b *Buffer[V]) ConfigureLayout(stride int, attrs ...Attribute) error {
	var zero V
	layout := Layout{Stride: stride, Attributes: attrs}
	if err := layout.Validate(unsafe.Sizeof(zero)); err != nil {
		return err
	}

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	size := int32(layout.Size())
	for i, offset := range layout.Offsets() {
		a := attrs[i]
		index := uint32(i)
		gl.EnableVertexAttribArray(index)
		if a.Type.Integer() && !a.Normalized {
			gl.VertexAttribIPointerWithOffset(index, int32(a.Count), uint32(a.Type), size, uintptr(offset))
		} else {
			gl.VertexAttribPointerWithOffset(index, int32(a.Count), uint32(a.Type), a.Normalized, size, uintptr(offset))
		}
	}
	gl.BindVertexArray(0)
	return nil
}

// Append adds v on the CPU side and returns its index. It is drawn after
// the next Upload.
func (b *Buffer[V]) Append(v V) int {
	b.vertices = append(b.vertices, v)
	return len(b.vertices) - 1
}

func (b *Buffer[V]) Len() int {
	return len(b.vertices)
}

// Upload replaces the GPU copy with the appended vertices.
func (b *Buffer[V]) Upload() {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(b.vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		var zero V
		size := len(b.vertices) * int(unsafe.Sizeof(zero))
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&b.vertices[0]), gl.STATIC_DRAW)
	}
	b.uploaded = int32(len(b.vertices))
}

func (b *Buffer[V]) Bind() {
	gl.BindVertexArray(b.vao)
}

// Draw issues one draw call over the uploaded vertices, e.g. with
// gl.TRIANGLES.
func (b *Buffer[V]) Draw(mode uint32) {
	if b.uploaded == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(mode, 0, b.uploaded)
}

func (b *Buffer[V]) Delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	b.vertices = nil
	b.uploaded = 0
}
