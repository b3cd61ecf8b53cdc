package samples

import (
	"image"
	"io"

	// Formats FromReader can decode, in addition to the ones registered by
	// the importer.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FromReader decodes an image from its original raw data (r).
//
// The format is inferred from the content, not from any file name.
// PNG, JPEG, GIF, BMP, TIFF and WebP are always supported.
func FromReader(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &Image{
		Image:  img,
		Format: format,
	}, nil
}
