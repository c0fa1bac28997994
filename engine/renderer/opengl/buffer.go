package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/renderer"
)

// GeometryBuffer owns one VAO and one VBO holding an immutable interleaved
// vertex array. The attribute layout is recorded at creation and never
// changes; there is no mutation path after upload.
type GeometryBuffer struct {
	vao *handle
	vbo *handle
}

func newGeometryBuffer(vertices []float32, layout []renderer.VertexAttribute, stride int32) (*GeometryBuffer, error) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		gl.BindVertexArray(0)
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteVertexArrays(1, &vao)
		return nil, &core.ResourceAllocationError{Resource: "vertex buffer", Code: code}
	}

	for _, attr := range layout {
		gl.VertexAttribPointer(attr.Index, attr.Components, gl.FLOAT, false, stride, gl.PtrOffset(attr.Offset))
		gl.EnableVertexAttribArray(attr.Index)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	b := &GeometryBuffer{
		vao: newHandle(vao, func(id uint32) { gl.DeleteVertexArrays(1, &id) }),
		vbo: newHandle(vbo, func(id uint32) { gl.DeleteBuffers(1, &id) }),
	}
	return b, nil
}

func (b *GeometryBuffer) Bind() {
	gl.BindVertexArray(b.vao.id)
}

func (b *GeometryBuffer) Unbind() {
	gl.BindVertexArray(0)
}

func (b *GeometryBuffer) Release() {
	b.vbo.Release()
	b.vao.Release()
}
