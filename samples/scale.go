package samples

import (
	"fmt"
	"strings"

	"go.yhsif.com/immutable"
)

// Scale defines how sample values are emitted.
type Scale string

// Supported scales.
const (
	// ScaleInt emits the decoder's native integer values,
	// in [0, 255] for 8-bit images and [0, 65535] for 16-bit ones.
	ScaleInt Scale = "int"

	// ScaleFloat emits values divided by the maximum of their depth,
	// in [0, 1].
	ScaleFloat Scale = "float"
)

var validScales = immutable.SetLiteral(ScaleInt, ScaleFloat)

// ParseScale parses s (case insensitive) into a Scale.
func ParseScale(s string) (Scale, error) {
	scale := Scale(strings.ToLower(s))
	if !validScales.Contains(scale) {
		return "", fmt.Errorf("samples.ParseScale: unknown scale %q, want %q or %q", s, ScaleInt, ScaleFloat)
	}
	return scale, nil
}

func (s Scale) String() string {
	return string(s)
}

// Set implements flag.Value.
func (s *Scale) Set(v string) error {
	scale, err := ParseScale(v)
	if err != nil {
		return err
	}
	*s = scale
	return nil
}

// divisor returns what values at depth d need to be divided by.
//
// The zero Scale is treated as ScaleInt.
func (s Scale) divisor(d Depth) float64 {
	if s == ScaleFloat {
		return d.Max()
	}
	return 1
}
