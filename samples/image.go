package samples

import (
	"image"
)

// Image represents a decoded image ready for sample extraction.
type Image struct {
	image.Image

	// Format is the format name reported by the decoder, e.g. "png".
	Format string
}

// Layout returns the channel layout Samples will use for g.
func (g *Image) Layout() Layout {
	return LayoutOf(g.Image)
}

// Depth returns the native bit depth of g's pixel model.
func (g *Image) Depth() Depth {
	return DepthOf(g.Image)
}

// Samples extracts the samples of g.
func (g *Image) Samples(scale Scale) Samples {
	return Extract(g.Image, scale)
}
