package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/prism/engine/math"
)

// Phong model constants. Fixed design parameters of the demo; making them
// configurable is an extension point only.
const (
	AmbientStrength  float32 = 0.1
	SpecularStrength float32 = 0.5
	Shininess        float32 = 32
)

// LightingParameters holds the uniforms consumed by the Phong fragment
// stage. ObjectColor is the only field mutated at runtime (by the color
// selection keys).
type LightingParameters struct {
	LightPos    mgl32.Vec3
	LightColor  mgl32.Vec3
	ObjectColor mgl32.Vec3
	ViewPos     mgl32.Vec3
}

// NewLightingParameters returns the demo defaults: a white light above and in
// front of the triangle, observed from the fixed camera position.
func NewLightingParameters() *LightingParameters {
	return &LightingParameters{
		LightPos:    mgl32.Vec3{2, 2, 2},
		LightColor:  mgl32.Vec3{1, 1, 1},
		ObjectColor: mgl32.Vec3{0.3, 0.7, 0.9},
		ViewPos:     cameraEye,
	}
}

// Evaluate mirrors the fragment-stage Phong arithmetic on the host, for one
// surface point: ambient + diffuse + specular, all scaled by the object base
// color, channels clamped to [0, 1]. The normal is transformed by the
// inverse-transpose of the model matrix so the result stays correct under
// non-uniform scaling.
func (lp *LightingParameters) Evaluate(position, normal mgl32.Vec3, model mgl32.Mat4) mgl32.Vec3 {
	fragPos := mgl32.TransformCoordinate(position, model)
	normalMatrix := model.Inv().Transpose().Mat3()
	norm := normalMatrix.Mul3x1(normal).Normalize()

	// Ambient
	ambient := lp.LightColor.Mul(AmbientStrength)

	// Diffuse
	lightDir := lp.LightPos.Sub(fragPos).Normalize()
	diff := math.Max(norm.Dot(lightDir), 0)
	diffuse := lp.LightColor.Mul(diff)

	// Specular
	viewDir := lp.ViewPos.Sub(fragPos).Normalize()
	reflectDir := reflect(lightDir.Mul(-1), norm)
	spec := float32(gomath.Pow(float64(math.Max(viewDir.Dot(reflectDir), 0)), float64(Shininess)))
	specular := lp.LightColor.Mul(SpecularStrength * spec)

	result := ambient.Add(diffuse).Add(specular)
	return mgl32.Vec3{
		math.Clamp(result.X()*lp.ObjectColor.X(), 0, 1),
		math.Clamp(result.Y()*lp.ObjectColor.Y(), 0, 1),
		math.Clamp(result.Z()*lp.ObjectColor.Z(), 0, 1),
	}
}

// reflect mirrors GLSL reflect: i - 2*dot(n, i)*n, with n of unit length.
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}
