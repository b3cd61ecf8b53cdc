// Package samples turns decoded images into nested arrays of channel values.
package samples // import "go.yhsif.com/img2json/samples"

import (
	"image"
	"image/color"
)

// Samples holds the channel values of an image, indexed as [y][x][channel].
type Samples [][][]float64

// Shape returns the dimensions of s.
//
// channels is 0 when s has no pixels.
func (s Samples) Shape() (height, width, channels int) {
	height = len(s)
	if height == 0 {
		return
	}
	width = len(s[0])
	if width == 0 {
		return
	}
	channels = len(s[0][0])
	return
}

// Extract reads every pixel of img into Samples.
//
// The number of channels is decided by LayoutOf(img) and the value range by
// DepthOf(img) and scale. Row 0 is img.Bounds().Min.Y, so images with a
// non-zero origin (e.g. sub images) are shifted to start at [0][0].
func Extract(img image.Image, scale Scale) Samples {
	layout := LayoutOf(img)
	depth := DepthOf(img)
	read := channelReader(layout, depth)
	div := scale.divisor(depth)
	n := layout.Channels()

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	s := make(Samples, height)
	for y := 0; y < height; y++ {
		row := make([][]float64, width)
		// One backing array per row.
		values := make([]float64, width*n)
		for x := 0; x < width; x++ {
			px := values[x*n : (x+1)*n : (x+1)*n]
			read(img.At(bounds.Min.X+x, bounds.Min.Y+y), px)
			if div != 1 {
				for i := range px {
					px[i] /= div
				}
			}
			row[x] = px
		}
		s[y] = row
	}
	return s
}

// channelReader returns a function that writes the channels of a color into
// dst, which must have layout.Channels() elements.
func channelReader(layout Layout, depth Depth) func(c color.Color, dst []float64) {
	switch {
	case layout == Gray && depth == Depth16:
		return func(c color.Color, dst []float64) {
			dst[0] = float64(color.Gray16Model.Convert(c).(color.Gray16).Y)
		}
	case layout == Gray:
		return func(c color.Color, dst []float64) {
			dst[0] = float64(color.GrayModel.Convert(c).(color.Gray).Y)
		}
	case depth == Depth16:
		return func(c color.Color, dst []float64) {
			nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
			dst[0] = float64(nc.R)
			dst[1] = float64(nc.G)
			dst[2] = float64(nc.B)
			if len(dst) > 3 {
				dst[3] = float64(nc.A)
			}
		}
	default:
		return func(c color.Color, dst []float64) {
			nc := color.NRGBAModel.Convert(c).(color.NRGBA)
			dst[0] = float64(nc.R)
			dst[1] = float64(nc.G)
			dst[2] = float64(nc.B)
			if len(dst) > 3 {
				dst[3] = float64(nc.A)
			}
		}
	}
}
