// Package texture decodes image resources into GPU-ready RGBA8 pixel buffers.
package texture

import (
	"fmt"
	"image"
	"image/draw"

	// Codecs registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/achilleasa/vista/asset"
)

// A texture image and its metadata. Data holds tightly packed, row-major
// RGBA8 pixels (4 bytes per pixel).
type Texture struct {
	Width  uint32
	Height uint32

	Data []byte
}

// Create a new texture from a Resource. The source can use any of the
// registered codecs; pixel data is always normalized to RGBA8 as this is the
// only upload format the view backends accept.
func New(res *asset.Resource) (*Texture, error) {
	img, _, err := image.Decode(res)
	if err != nil {
		return nil, fmt.Errorf("texture: could not decode %s: %s", res.Path(), err)
	}

	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return &Texture{
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Data:   rgba.Pix,
	}, nil
}
