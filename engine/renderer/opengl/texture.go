package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// TextureCreate uploads decoded pixels to a new texture object configured
// with repeat wrapping, linear filtering and generated mipmaps. The texture
// is unbound before returning.
func (b *Backend) TextureCreate(pixels []uint8, width, height uint32, channelCount uint8) (metadata.TextureHandle, error) {
	if len(pixels) == 0 {
		return 0, fmt.Errorf("texture upload with empty pixel buffer: %w", core.ErrImageDecode)
	}

	var internalFormat int32
	var format uint32
	switch channelCount {
	case 3:
		internalFormat = gl.RGB8
		format = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("%w: %d channels", core.ErrUnsupportedChannels, channelCount)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if channelCount == 3 {
		// RGB rows are not 4-byte aligned for arbitrary widths.
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(width),
		int32(height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	if channelCount == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return metadata.TextureHandle(id), nil
}

// TextureBindUnit binds the texture to the given texture unit.
func (b *Backend) TextureBindUnit(unit uint32, handle metadata.TextureHandle) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, uint32(handle))
}

func (b *Backend) TextureDestroy(handle metadata.TextureHandle) {
	id := uint32(handle)
	if id == 0 {
		return
	}
	gl.DeleteTextures(1, &id)
}
