package renderer

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/scene"
)

type fakeGeometry struct {
	device *fakeDevice
}

func (g *fakeGeometry) Bind()    { g.device.ops = append(g.device.ops, "geometry.bind") }
func (g *fakeGeometry) Unbind()  { g.device.ops = append(g.device.ops, "geometry.unbind") }
func (g *fakeGeometry) Release() { g.device.geometryReleases++ }

type fakeProgram struct {
	device *fakeDevice
}

func (p *fakeProgram) Use() { p.device.ops = append(p.device.ops, "program.use") }
func (p *fakeProgram) SetUniformMat4(name string, value mgl32.Mat4) {
	p.device.ops = append(p.device.ops, "uniform."+name)
	p.device.uniforms[name]++
}
func (p *fakeProgram) SetUniformVec3(name string, value mgl32.Vec3) {
	p.device.ops = append(p.device.ops, "uniform."+name)
	p.device.uniforms[name]++
	p.device.vec3s[name] = value
}
func (p *fakeProgram) SetUniformInt(name string, value int32) {
	p.device.ops = append(p.device.ops, "uniform."+name)
	p.device.uniforms[name]++
}
func (p *fakeProgram) Release() { p.device.programReleases++ }

type fakeTexture struct {
	device *fakeDevice
}

func (t *fakeTexture) Bind(unit uint32) { t.device.ops = append(t.device.ops, "texture.bind") }
func (t *fakeTexture) Release()         { t.device.textureReleases++ }

type fakeDevice struct {
	ops      []string
	uniforms map[string]int
	vec3s    map[string]mgl32.Vec3

	geometries int
	programs   int
	textures   int

	geometryReleases int
	programReleases  int
	textureReleases  int

	programErr  error
	geometryErr error
	textureErr  error

	lastVertices []float32
	lastLayout   []VertexAttribute
	lastStride   int32
	texWidth     int
	texHeight    int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		uniforms: map[string]int{},
		vec3s:    map[string]mgl32.Vec3{},
	}
}

func (d *fakeDevice) CreateGeometry(vertices []float32, layout []VertexAttribute, stride int32) (Geometry, error) {
	if d.geometryErr != nil {
		return nil, d.geometryErr
	}
	d.geometries++
	d.lastVertices = vertices
	d.lastLayout = layout
	d.lastStride = stride
	return &fakeGeometry{device: d}, nil
}

func (d *fakeDevice) CreateProgram(vertexSource, fragmentSource string) (Program, error) {
	if d.programErr != nil {
		return nil, d.programErr
	}
	d.programs++
	return &fakeProgram{device: d}, nil
}

func (d *fakeDevice) CreateTexture(pixels []byte, width, height int) (Texture, error) {
	if d.textureErr != nil {
		return nil, d.textureErr
	}
	d.textures++
	d.texWidth = width
	d.texHeight = height
	return &fakeTexture{device: d}, nil
}

func (d *fakeDevice) Clear(r, g, b, a float32) { d.ops = append(d.ops, "clear") }
func (d *fakeDevice) Viewport(width, height uint32) {
	d.ops = append(d.ops, "viewport")
}
func (d *fakeDevice) Draw(first, count int32) { d.ops = append(d.ops, "draw") }

var testClear = [4]float32{0.1, 0.1, 0.1, 1.0}

func TestInitializeCreatesExactlyOneHandlePerResource(t *testing.T) {
	device := newFakeDevice()
	r := New(device, StageConfig{Texture: true}, testClear)

	require.NoError(t, r.Initialize())

	assert.Equal(t, 1, device.programs)
	assert.Equal(t, 1, device.geometries)
	assert.Equal(t, 1, device.textures)
	assert.Equal(t, 64, device.texWidth)
	assert.Equal(t, 64, device.texHeight)
}

func TestShutdownReleasesEachHandleExactlyOnce(t *testing.T) {
	device := newFakeDevice()
	r := New(device, StageConfig{Texture: true}, testClear)
	require.NoError(t, r.Initialize())

	r.Shutdown()
	assert.Equal(t, 1, device.programReleases)
	assert.Equal(t, 1, device.geometryReleases)
	assert.Equal(t, 1, device.textureReleases)

	// Double release is a safe no-op.
	r.Shutdown()
	assert.Equal(t, 1, device.programReleases)
	assert.Equal(t, 1, device.geometryReleases)
	assert.Equal(t, 1, device.textureReleases)
}

func TestInitializeLinkFailureLeavesNothingAllocated(t *testing.T) {
	device := newFakeDevice()
	device.programErr = &core.ShaderLinkError{Log: "mismatched varyings"}
	r := New(device, StageConfig{Lighting: true}, testClear)

	err := r.Initialize()
	var linkErr *core.ShaderLinkError
	require.True(t, errors.As(err, &linkErr))

	assert.Zero(t, device.geometries)
	assert.Zero(t, device.textures)
}

func TestInitializePartialFailureReleasesCreatedResources(t *testing.T) {
	device := newFakeDevice()
	device.textureErr = &core.ResourceAllocationError{Resource: "texture", Code: 0x0505}
	r := New(device, StageConfig{Texture: true}, testClear)

	require.Error(t, r.Initialize())

	// Program and geometry were created before the texture failed; both must
	// have been released on the way out.
	assert.Equal(t, 1, device.programReleases)
	assert.Equal(t, 1, device.geometryReleases)
	assert.Zero(t, device.textureReleases)
}

func TestDrawFrameSequencing(t *testing.T) {
	device := newFakeDevice()
	r := New(device, StageConfig{Texture: true, Lighting: true, Rotation: true}, testClear)
	require.NoError(t, r.Initialize())

	transform := scene.NewTransform(800, 600)
	lighting := scene.NewLightingParameters()
	device.ops = nil

	r.DrawFrame(transform, lighting)

	assert.Equal(t, []string{
		"clear",
		"program.use",
		"uniform.model",
		"uniform.view",
		"uniform.projection",
		"uniform.objectColor",
		"uniform.lightPos",
		"uniform.lightColor",
		"uniform.viewPos",
		"uniform.texture1",
		"texture.bind",
		"geometry.bind",
		"draw",
		"geometry.unbind",
	}, device.ops)
}

// No uniform survives implicitly: every frame pushes the full set again.
func TestDrawFramePushesUniformsEveryFrame(t *testing.T) {
	device := newFakeDevice()
	r := New(device, StageConfig{Lighting: true}, testClear)
	require.NoError(t, r.Initialize())

	transform := scene.NewTransform(800, 600)
	lighting := scene.NewLightingParameters()
	for frame := 0; frame < 3; frame++ {
		r.DrawFrame(transform, lighting)
	}

	for _, name := range []string{"model", "view", "projection", "objectColor", "lightPos", "lightColor", "viewPos"} {
		assert.Equal(t, 3, device.uniforms[name], name)
	}
}

func TestDrawFrameAdvancesRotationOnlyWhenEnabled(t *testing.T) {
	transform := scene.NewTransform(800, 600)
	lighting := scene.NewLightingParameters()

	fixed := New(newFakeDevice(), StageConfig{}, testClear)
	require.NoError(t, fixed.Initialize())
	fixed.DrawFrame(transform, lighting)
	assert.Zero(t, transform.RotationAngle())

	rotating := New(newFakeDevice(), StageConfig{Rotation: true}, testClear)
	require.NoError(t, rotating.Initialize())
	rotating.DrawFrame(transform, lighting)
	assert.Equal(t, scene.RotationStep, transform.RotationAngle())
}

func TestDrawFramePushesCurrentObjectColor(t *testing.T) {
	device := newFakeDevice()
	r := New(device, StageConfig{Lighting: true}, testClear)
	require.NoError(t, r.Initialize())

	transform := scene.NewTransform(800, 600)
	lighting := scene.NewLightingParameters()
	lighting.ObjectColor = mgl32.Vec3{0.9, 0.3, 0.3}

	r.DrawFrame(transform, lighting)
	assert.Equal(t, mgl32.Vec3{0.9, 0.3, 0.3}, device.vec3s["objectColor"])
}

func TestInitializeIsIdempotent(t *testing.T) {
	device := newFakeDevice()
	r := New(device, StageConfig{}, testClear)
	require.NoError(t, r.Initialize())
	require.NoError(t, r.Initialize())
	assert.Equal(t, 1, device.programs)
	assert.Equal(t, 1, device.geometries)
}
