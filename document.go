package img2json

import (
	"bufio"
	"encoding/json"
	"io"

	"go.yhsif.com/img2json/samples"
)

// Document is the JSON document written by Convert.
type Document struct {
	Samples samples.Samples `json:"samples"`
}

// NewDocument extracts the samples of img into a Document.
func NewDocument(img *samples.Image, scale samples.Scale) *Document {
	return &Document{
		Samples: img.Samples(scale),
	}
}

// WriteTo implements io.WriterTo.
//
// It writes d as a single line of JSON followed by a newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	if err := json.NewEncoder(bw).Encode(d); err != nil {
		return cw.n, err
	}
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
