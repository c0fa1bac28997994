package assets

import (
	"github.com/google/uuid"
)

const (
	CheckerboardSize = 64
	tileSize         = 8
)

// CheckerboardTexture is a procedurally generated RGB bitmap, 3 bytes per
// pixel, row-major.
type CheckerboardTexture struct {
	Name   string
	Width  int
	Height int
	Pixels []byte
}

// GenerateCheckerboard builds the 64x64 two-tone checkerboard used by the
// texture stage: white tiles alternating with red-tinted tiles, 8x8 pixels
// each. The texture has no backing file, so it gets a generated debug name.
func GenerateCheckerboard() *CheckerboardTexture {
	pixels := make([]byte, CheckerboardSize*CheckerboardSize*3)
	for y := 0; y < CheckerboardSize; y++ {
		for x := 0; x < CheckerboardSize; x++ {
			i := (y*CheckerboardSize + x) * 3
			if ((x/tileSize)+(y/tileSize))%2 == 0 {
				pixels[i] = 255
				pixels[i+1] = 255
				pixels[i+2] = 255
			} else {
				pixels[i] = 255
				pixels[i+1] = 100
				pixels[i+2] = 100
			}
		}
	}
	return &CheckerboardTexture{
		Name:   uuid.New().String(),
		Width:  CheckerboardSize,
		Height: CheckerboardSize,
		Pixels: pixels,
	}
}
