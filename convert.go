// Package img2json converts image files into JSON documents of their pixel
// samples.
package img2json // import "go.yhsif.com/img2json"

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"go.yhsif.com/img2json/atomicfile"
	"go.yhsif.com/img2json/logger"
	"go.yhsif.com/img2json/samples"
)

// Status reports what Convert did.
type Status int

// Possible Status values.
const (
	// Convert returned an error.
	StatusFailed Status = iota

	// The input was not a regular file so nothing was written.
	StatusSkipped

	// The output was written.
	StatusConverted
)

func (s Status) String() string {
	switch s {
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	case StatusConverted:
		return "converted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Errors returned by Convert wrap one of these.
var (
	ErrRead   = errors.New("unable to read image")
	ErrDecode = errors.New("unable to decode image")
	ErrWrite  = errors.New("unable to write json")
)

// ConvertArgs defines the args used by Convert function.
type ConvertArgs struct {
	// Path to the image file.
	InputPath string

	// Path to write the JSON document to.
	//
	// Its parent directory must exist.
	// An existing file will be replaced.
	OutputPath string

	// How sample values are emitted, default to samples.ScaleInt.
	Scale samples.Scale
}

// Convert decodes the image at args.InputPath and writes its samples as
// {"samples": [...]} to args.OutputPath.
//
// If args.InputPath is not a regular file (including when it doesn't exist),
// Convert does nothing and returns StatusSkipped with nil error.
//
// The output is only replaced after the whole document is written, so on
// error args.OutputPath keeps its original content, if any.
func Convert(ctx context.Context, args ConvertArgs) (Status, error) {
	ctx = logger.Attach(
		ctx,
		"input", args.InputPath,
		"output", args.OutputPath,
	)

	info, err := os.Stat(args.InputPath)
	if err != nil || !info.Mode().IsRegular() {
		logger.For(ctx).WarnContext(
			ctx,
			"Input is not a regular file, skipping",
			"err", err,
		)
		return StatusSkipped, nil
	}

	logger.For(ctx).InfoContext(ctx, "Importing image")
	img, err := readImage(args.InputPath)
	if err != nil {
		return StatusFailed, err
	}

	bounds := img.Bounds()
	logger.For(ctx).InfoContext(
		ctx,
		"Encoding samples",
		"format", img.Format,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"layout", img.Layout(),
		"depth", img.Depth(),
		"scale", args.Scale,
	)
	doc := NewDocument(img, args.Scale)

	if err := ctx.Err(); err != nil {
		return StatusFailed, fmt.Errorf("img2json.Convert: %w", err)
	}
	if err := atomicfile.WriteFile(args.OutputPath, doc); err != nil {
		return StatusFailed, fmt.Errorf("img2json.Convert: %w %q: %w", ErrWrite, args.OutputPath, err)
	}

	logger.For(ctx).InfoContext(ctx, "Converted image")
	return StatusConverted, nil
}

func readImage(path string) (*samples.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("img2json.Convert: %w %q: %w", ErrRead, path, err)
	}
	defer f.Close()

	img, err := samples.FromReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("img2json.Convert: %w %q: %w", ErrDecode, path, err)
	}
	return img, nil
}
