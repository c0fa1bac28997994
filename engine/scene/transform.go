package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera parameters are fixed for the lifetime of the demo; there are no
// camera controls.
const (
	fovDegrees = 45.0
	nearPlane  = 0.1
	farPlane   = 100.0

	// RotationStep is the per-frame angle increment in radians. Rotation is
	// frame-locked: one step per rendered frame, independent of wall-clock
	// time, so the achieved frame rate sets the apparent rotation speed.
	RotationStep float32 = 0.01
)

var (
	cameraEye    = mgl32.Vec3{0, 0, 3}
	cameraTarget = mgl32.Vec3{0, 0, 0}
	cameraUp     = mgl32.Vec3{0, 1, 0}
)

// Transform computes the model/view/projection matrices for the single
// object. View and projection are computed once from the fixed camera; the
// projection is recomputed only when the framebuffer is resized. The model
// matrix is derived fresh every frame from the accumulated rotation angle.
type Transform struct {
	rotationAngle float32
	view          mgl32.Mat4
	projection    mgl32.Mat4
}

func NewTransform(width, height uint32) *Transform {
	t := &Transform{
		view: mgl32.LookAtV(cameraEye, cameraTarget, cameraUp),
	}
	t.SetViewport(width, height)
	return t
}

// Advance increments the rotation angle by one fixed step. The angle grows
// without bound; it is never wrapped to [0, 2π).
func (t *Transform) Advance() {
	t.rotationAngle += RotationStep
}

func (t *Transform) RotationAngle() float32 {
	return t.rotationAngle
}

// ModelMatrix returns the rotation about the vertical axis by the current
// angle, recomputed on every call.
func (t *Transform) ModelMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(t.rotationAngle)
}

func (t *Transform) ViewMatrix() mgl32.Mat4 {
	return t.view
}

func (t *Transform) ProjectionMatrix() mgl32.Mat4 {
	return t.projection
}

// ViewPosition returns the fixed camera eye position in world space.
func (t *Transform) ViewPosition() mgl32.Vec3 {
	return cameraEye
}

// SetViewport recomputes the projection matrix for a new framebuffer size.
func (t *Transform) SetViewport(width, height uint32) {
	if height == 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	t.projection = mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)
}
