package samples

import (
	"fmt"
	"image"
	"reflect"

	"go.yhsif.com/immutable"
)

// Layout defines which channels a pixel is split into.
//
// The channel dimension is always present in Samples, even for Gray where it
// has a single element.
type Layout int

// Supported layouts.
const (
	RGBA Layout = iota
	RGB
	Gray
)

// Channels returns the number of channels per pixel.
func (l Layout) Channels() int {
	switch l {
	case Gray:
		return 1
	case RGB:
		return 3
	default:
		return 4
	}
}

func (l Layout) String() string {
	switch l {
	case RGBA:
		return "RGBA"
	case RGB:
		return "RGB"
	case Gray:
		return "Gray"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Depth is the bit depth of a single channel.
type Depth uint8

// Supported depths.
const (
	Depth8  Depth = 8
	Depth16 Depth = 16
)

// Max returns the largest channel value representable at depth d.
func (d Depth) Max() float64 {
	return float64(uint32(1)<<d - 1)
}

// Keyed by pixel type instead of color model, as some models (color.Palette)
// are not comparable.
var sixteenBitTypes = immutable.SetLiteral(
	reflect.TypeOf((*image.Gray16)(nil)),
	reflect.TypeOf((*image.RGBA64)(nil)),
	reflect.TypeOf((*image.NRGBA64)(nil)),
	reflect.TypeOf((*image.Alpha16)(nil)),
)

// LayoutOf returns the layout used for img.
//
// It's decided by the pixel type the decoder produced. Types that cannot
// carry alpha (gray, YCbCr, CMYK) never get an alpha channel. RGBA, RGBA64
// and Paletted images only drop the alpha channel when they are opaque,
// which is how decoders represent formats without alpha (e.g. an RGB PNG).
// Everything else, including unknown types, gets RGBA.
func LayoutOf(img image.Image) Layout {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return Gray
	case *image.YCbCr, *image.CMYK:
		return RGB
	case *image.RGBA, *image.RGBA64, *image.Paletted:
		if o, ok := m.(interface{ Opaque() bool }); ok && o.Opaque() {
			return RGB
		}
	}
	return RGBA
}

// DepthOf returns the native bit depth of img's pixel type.
//
// Unknown types are treated as 8-bit.
func DepthOf(img image.Image) Depth {
	if sixteenBitTypes.Contains(reflect.TypeOf(img)) {
		return Depth16
	}
	return Depth8
}
