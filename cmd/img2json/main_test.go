package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.yhsif.com/img2json/samples"
)

func setFlags(t *testing.T, input, output string, scaleValue samples.Scale, level string, strictValue bool) {
	t.Helper()
	origIn, origOut, origScale, origLevel, origStrict := *in, *out, scale, *logLevel, *strict
	t.Cleanup(func() {
		*in, *out, scale, *logLevel, *strict = origIn, origOut, origScale, origLevel, origStrict
	})
	*in, *out, scale, *logLevel, *strict = input, output, scaleValue, level, strictValue
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(1, 1, color.Gray{Y: 42})
	f, err := os.Create(input)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	for _, c := range []struct {
		name   string
		input  string
		output string
		scale  samples.Scale
		level  string
		strict bool
		code   int
	}{
		{
			name:   "converted",
			input:  input,
			output: filepath.Join(dir, "converted.json"),
			scale:  samples.ScaleInt,
			level:  "INFO",
		},
		{
			name:   "skipped",
			input:  filepath.Join(dir, "nope.png"),
			output: filepath.Join(dir, "skipped.json"),
			scale:  samples.ScaleInt,
			level:  "INFO",
		},
		{
			name:   "skipped-strict",
			input:  filepath.Join(dir, "nope.png"),
			output: filepath.Join(dir, "skipped.json"),
			scale:  samples.ScaleInt,
			level:  "INFO",
			strict: true,
			code:   exitSkipped,
		},
		{
			name:   "bad-level",
			input:  input,
			output: filepath.Join(dir, "bad-level.json"),
			scale:  samples.ScaleInt,
			level:  "LOUD",
			code:   exitError,
		},
		{
			name:   "write-error",
			input:  input,
			output: filepath.Join(dir, "missing", "out.json"),
			scale:  samples.ScaleFloat,
			level:  "ERROR",
			code:   exitError,
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			setFlags(t, c.input, c.output, c.scale, c.level, c.strict)
			if code := run(context.Background()); code != c.code {
				t.Errorf("run() expected %d, got %d", c.code, code)
			}
			_, err := os.Stat(c.output)
			if exists := err == nil; exists != (c.name == "converted") {
				t.Errorf("Output %q exists: %v", c.output, exists)
			}
		})
	}
}

func TestScaleFlag(t *testing.T) {
	orig := scale
	t.Cleanup(func() {
		scale = orig
	})

	if err := flag.Set("scale", "FLOAT"); err != nil {
		t.Fatalf("flag.Set(scale, FLOAT) returned error: %v", err)
	}
	if scale != samples.ScaleFloat {
		t.Errorf("Expected scale %q, got %q", samples.ScaleFloat, scale)
	}
	if err := flag.Set("scale", "double"); err == nil {
		t.Error("flag.Set(scale, double) expected error")
	}
	if scale != samples.ScaleFloat {
		t.Errorf("Failed flag.Set changed scale to %q", scale)
	}
}

func TestLogSource(t *testing.T) {
	origSource := *logSource
	t.Cleanup(func() {
		*logSource = origSource
	})
	*logSource = true

	dir := t.TempDir()
	setFlags(t, filepath.Join(dir, "nope.png"), filepath.Join(dir, "out.json"), samples.ScaleInt, "INFO", false)
	if code := run(context.Background()); code != 0 {
		t.Errorf("run() expected 0, got %d", code)
	}
}
