package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prism/engine/renderer"
)

// Device is the OpenGL implementation of renderer.Device. It assumes the
// context has already been made current and the bindings initialized by the
// platform layer.
type Device struct{}

func NewDevice() *Device {
	gl.Enable(gl.DEPTH_TEST)
	return &Device{}
}

func (d *Device) CreateGeometry(vertices []float32, layout []renderer.VertexAttribute, stride int32) (renderer.Geometry, error) {
	return newGeometryBuffer(vertices, layout, stride)
}

func (d *Device) CreateProgram(vertexSource, fragmentSource string) (renderer.Program, error) {
	return newShaderPipeline(vertexSource, fragmentSource)
}

func (d *Device) CreateTexture(pixels []byte, width, height int) (renderer.Texture, error) {
	return newTexture(pixels, width, height)
}

func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) Viewport(width, height uint32) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) Draw(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
