package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// ImageLoader decodes image files (PNG, JPEG, BMP) into packed pixel
// buffers. The channel count is derived from the source: grayscale images
// report 1 channel, opaque color images 3, color images with transparency 4.
// Channel counts other than 3 and 4 are reported as-is so the texture
// registry can reject them.
type ImageLoader struct{}

func (il *ImageLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	flipY := false
	if p, ok := params.(*metadata.ImageResourceParams); ok {
		flipY = p.FlipY
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", core.ErrImageDecode, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", core.ErrImageDecode, path, err)
	}

	channels := channelCount(img)
	pixels := packPixels(img, channels, flipY)
	bounds := img.Bounds()

	core.LogDebug("decoded %s image '%s': %dx%d, %d channels",
		format, path, bounds.Dx(), bounds.Dy(), channels)

	return &metadata.Resource{
		ID:       uuid.New(),
		Name:     "image",
		FullPath: path,
		Type:     metadata.ResourceTypeImage,
		DataSize: uint64(len(pixels)),
		Data: &metadata.ImageResourceData{
			Pixels:       pixels,
			Width:        uint32(bounds.Dx()),
			Height:       uint32(bounds.Dy()),
			ChannelCount: channels,
		},
	}, nil
}

func (il *ImageLoader) Unload(*metadata.Resource) error {
	return nil
}

type opaquer interface {
	Opaque() bool
}

func channelCount(img image.Image) uint8 {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(opaquer); ok && o.Opaque() {
		return 3
	}
	return 4
}

// packPixels flattens the image into tightly packed rows with the requested
// channel count, bottom row first when flipY is set.
func packPixels(img image.Image, channels uint8, flipY bool) []uint8 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]uint8, 0, w*h*int(channels))

	for row := 0; row < h; row++ {
		y := bounds.Min.Y + row
		if flipY {
			y = bounds.Max.Y - 1 - row
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			switch channels {
			case 1:
				r, _, _, _ := img.At(x, y).RGBA()
				out = append(out, uint8(r>>8))
			case 3:
				r, g, b, _ := img.At(x, y).RGBA()
				out = append(out, uint8(r>>8), uint8(g>>8), uint8(b>>8))
			default:
				// RGBA() premultiplies; translucent texels need straight
				// alpha or their color darkens.
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				out = append(out, c.R, c.G, c.B, c.A)
			}
		}
	}

	return out
}
