package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prism/engine/core"
)

// Texture owns one immutable 2D RGB image with a full mip chain. Pixel
// ownership transfers to the GPU at upload; there is no re-upload path.
type Texture struct {
	texture *handle
}

func newTexture(pixels []byte, width, height int) (*Texture, error) {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		gl.DeleteTextures(1, &texture)
		return nil, &core.ResourceAllocationError{Resource: "texture", Code: code}
	}
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{
		texture: newHandle(texture, func(id uint32) { gl.DeleteTextures(1, &id) }),
	}, nil
}

// Bind activates the texture on the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.texture.id)
}

func (t *Texture) Release() {
	t.texture.Release()
}
