package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/prism/engine/assets"
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/scene"
)

// StageConfig selects the optional stages of the shading pipeline. The four
// demo variants are just different combinations of these flags.
type StageConfig struct {
	Color    bool `toml:"color"`
	Texture  bool `toml:"texture"`
	Lighting bool `toml:"lighting"`
	Rotation bool `toml:"rotation"`
}

// VertexAttribute describes one attribute of the interleaved vertex layout:
// its shader location, component count and byte offset within the stride.
type VertexAttribute struct {
	Index      uint32
	Components int32
	Offset     int
}

// Geometry is an uploaded, immutable vertex buffer with its layout active
// while bound.
type Geometry interface {
	Bind()
	Unbind()
	Release()
}

// Program is a linked shader program. Setting a uniform whose name does not
// exist in the current variant is a silent no-op.
type Program interface {
	Use()
	SetUniformMat4(name string, value mgl32.Mat4)
	SetUniformVec3(name string, value mgl32.Vec3)
	SetUniformInt(name string, value int32)
	Release()
}

// Texture is an uploaded, immutable 2D image with a generated mip chain.
type Texture interface {
	Bind(unit uint32)
	Release()
}

// Device abstracts the graphics backend: resource creation and the per-frame
// primitives the render loop needs.
type Device interface {
	CreateGeometry(vertices []float32, layout []VertexAttribute, stride int32) (Geometry, error)
	CreateProgram(vertexSource, fragmentSource string) (Program, error)
	CreateTexture(pixels []byte, width, height int) (Texture, error)
	Clear(r, g, b, a float32)
	Viewport(width, height uint32)
	Draw(first, count int32)
}

// Renderer owns the GPU resources of the single-object pipeline and performs
// one draw per frame. Each resource is created exactly once during
// Initialize and released exactly once during Shutdown.
type Renderer struct {
	device Device
	stages StageConfig

	clearColor [4]float32

	geometry    Geometry
	program     Program
	texture     Texture
	vertexCount int32

	initialized bool
}

func New(device Device, stages StageConfig, clearColor [4]float32) *Renderer {
	return &Renderer{
		device:     device,
		stages:     stages,
		clearColor: clearColor,
	}
}

// Initialize compiles the pipeline for the configured stages and uploads the
// triangle (and the procedural texture when the texture stage is enabled).
// On any failure every resource created so far is released before the error
// is returned; initialization is all or nothing.
func (r *Renderer) Initialize() error {
	if r.initialized {
		return nil
	}

	vertexSource, fragmentSource := ShaderSources(r.stages)
	program, err := r.device.CreateProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.program = program

	vertices, layout, stride := TriangleGeometry(r.stages)
	r.vertexCount = triangleVertexCount
	geometry, err := r.device.CreateGeometry(vertices, layout, stride)
	if err != nil {
		r.Shutdown()
		return err
	}
	r.geometry = geometry

	if r.stages.Texture {
		checkerboard := assets.GenerateCheckerboard()
		texture, err := r.device.CreateTexture(checkerboard.Pixels, checkerboard.Width, checkerboard.Height)
		if err != nil {
			r.Shutdown()
			return err
		}
		r.texture = texture
		core.LogDebug("Uploaded procedural texture %s (%dx%d)", checkerboard.Name, checkerboard.Width, checkerboard.Height)
	}

	r.initialized = true
	return nil
}

// Resized forwards the new framebuffer size to the device viewport.
func (r *Renderer) Resized(width, height uint32) {
	r.device.Viewport(width, height)
}

// DrawFrame runs one iteration of the frame cycle: clear, activate the
// program, advance the rotation, push every uniform the variant may use,
// bind the resources and submit the draw. Uniforms are never assumed to
// survive from the previous frame.
func (r *Renderer) DrawFrame(transform *scene.Transform, lighting *scene.LightingParameters) {
	r.device.Clear(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])

	r.program.Use()

	if r.stages.Rotation {
		transform.Advance()
	}

	r.program.SetUniformMat4("model", transform.ModelMatrix())
	r.program.SetUniformMat4("view", transform.ViewMatrix())
	r.program.SetUniformMat4("projection", transform.ProjectionMatrix())
	r.program.SetUniformVec3("objectColor", lighting.ObjectColor)
	if r.stages.Lighting {
		r.program.SetUniformVec3("lightPos", lighting.LightPos)
		r.program.SetUniformVec3("lightColor", lighting.LightColor)
		r.program.SetUniformVec3("viewPos", lighting.ViewPos)
	}
	if r.stages.Texture {
		r.program.SetUniformInt("texture1", 0)
		r.texture.Bind(0)
	}

	r.geometry.Bind()
	r.device.Draw(0, r.vertexCount)
	r.geometry.Unbind()
}

// Shutdown releases every owned resource. Safe to call more than once and on
// a partially initialized renderer.
func (r *Renderer) Shutdown() {
	if r.texture != nil {
		r.texture.Release()
		r.texture = nil
	}
	if r.geometry != nil {
		r.geometry.Release()
		r.geometry = nil
	}
	if r.program != nil {
		r.program.Release()
		r.program = nil
	}
	r.initialized = false
}
