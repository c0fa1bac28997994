package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/prism/engine/core"
)

// PaletteEntry binds one key to one fixed object color.
type PaletteEntry struct {
	Key   core.KeyCode
	Color mgl32.Vec3
}

// Palette is the set of color-selection keys of a demo variant. Input is
// level-triggered: while a key is held its color is reapplied every frame,
// and releasing it does not restore the previous color.
type Palette []PaletteEntry

// LitPalette is used when the lighting stage is enabled.
func LitPalette() Palette {
	return Palette{
		{Key: core.KEY_R, Color: mgl32.Vec3{0.9, 0.3, 0.3}},
		{Key: core.KEY_G, Color: mgl32.Vec3{0.3, 0.9, 0.3}},
		{Key: core.KEY_B, Color: mgl32.Vec3{0.3, 0.3, 0.9}},
		{Key: core.KEY_Y, Color: mgl32.Vec3{0.9, 0.9, 0.3}},
	}
}

// TintPalette is used when the texture stage is enabled; W removes the tint.
func TintPalette() Palette {
	return Palette{
		{Key: core.KEY_R, Color: mgl32.Vec3{1.0, 0.3, 0.3}},
		{Key: core.KEY_G, Color: mgl32.Vec3{0.3, 1.0, 0.3}},
		{Key: core.KEY_B, Color: mgl32.Vec3{0.3, 0.3, 1.0}},
		{Key: core.KEY_W, Color: mgl32.Vec3{1.0, 1.0, 1.0}},
	}
}

// Apply overwrites the object color for every bound key that is currently
// held, using the provided key query.
func (p Palette) Apply(isKeyDown func(core.KeyCode) bool, lp *LightingParameters) {
	for _, entry := range p {
		if isKeyDown(entry.Key) {
			lp.ObjectColor = entry.Color
		}
	}
}
