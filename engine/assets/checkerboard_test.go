package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pixelAt(tex *CheckerboardTexture, x, y int) [3]byte {
	i := (y*tex.Width + x) * 3
	return [3]byte{tex.Pixels[i], tex.Pixels[i+1], tex.Pixels[i+2]}
}

func TestCheckerboardDimensions(t *testing.T) {
	tex := GenerateCheckerboard()
	assert.Equal(t, 64, tex.Width)
	assert.Equal(t, 64, tex.Height)
	assert.Len(t, tex.Pixels, 64*64*3)
	assert.NotEmpty(t, tex.Name)
}

func TestCheckerboardPattern(t *testing.T) {
	tex := GenerateCheckerboard()

	white := [3]byte{255, 255, 255}
	red := [3]byte{255, 100, 100}

	// Top-left tile is white; its horizontal and vertical neighbors are red.
	assert.Equal(t, white, pixelAt(tex, 0, 0))
	assert.Equal(t, white, pixelAt(tex, 7, 7))
	assert.Equal(t, red, pixelAt(tex, 8, 0))
	assert.Equal(t, red, pixelAt(tex, 0, 8))
	// The diagonal neighbor is white again.
	assert.Equal(t, white, pixelAt(tex, 8, 8))
}

func TestCheckerboardNamesAreUnique(t *testing.T) {
	a := GenerateCheckerboard()
	b := GenerateCheckerboard()
	assert.NotEqual(t, a.Name, b.Name)
}
