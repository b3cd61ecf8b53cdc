package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"go.yhsif.com/img2json"
	"go.yhsif.com/img2json/logger"
	"go.yhsif.com/img2json/samples"
)

const (
	exitError   = 1
	exitSkipped = 2
)

var (
	in = flag.String(
		"in",
		"res/textures/sonar-test.png",
		"Path to the image file to convert.",
	)
	out = flag.String(
		"out",
		"res/data/sonar-test.json",
		"Path to write the JSON document to. Its directory must already exist.",
	)
	logLevel = flag.String(
		"log-level",
		slog.LevelInfo.String(),
		"Minimal log level, one of DEBUG, INFO, WARN, ERROR.",
	)
	logJSON = flag.Bool(
		"log-json",
		false,
		"Log in JSON instead of text.",
	)
	logSource = flag.Bool(
		"log-source",
		false,
		"Add source file and line to log entries.",
	)
	strict = flag.Bool(
		"strict",
		false,
		fmt.Sprintf("Exit with code %d instead of 0 when the input is not a regular file.", exitSkipped),
	)
)

var scale = samples.ScaleInt

func init() {
	flag.Var(
		&scale,
		"scale",
		`How to emit sample values: "int" keeps the decoder's native integers (0-255, or 0-65535 for 16-bit images), "float" maps them into [0, 1], the range matplotlib's imread returns for PNG.`,
	)
}

func main() {
	flag.Parse()
	if code := run(context.Background()); code != 0 {
		os.Exit(code)
	}
}

func run(ctx context.Context) (code int) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -log-level %q: %v\n", *logLevel, err)
		return exitError
	}
	l := logger.New(os.Stderr, logger.Options{
		Level:     level,
		JSON:      *logJSON,
		AddSource: *logSource,
	})
	slog.SetDefault(l)
	ctx = logger.SetContext(ctx, l)

	status, err := img2json.Convert(ctx, img2json.ConvertArgs{
		InputPath:  *in,
		OutputPath: *out,
		Scale:      scale,
	})
	if err != nil {
		l.ErrorContext(
			ctx,
			"Failed to convert image",
			"err", err,
		)
		return exitError
	}
	if status == img2json.StatusSkipped && *strict {
		return exitSkipped
	}
	return 0
}
