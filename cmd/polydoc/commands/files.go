package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/encode"
)

// loadDocument reads a JSON object file as a document.
func loadDocument(path string) (*doc.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d, err := doc.DocumentFromAny(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// render writes a value to w, colored when w is a terminal.
func render(w io.Writer, v *doc.Value) error {
	opts := []encode.Option{}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		opts = append(opts, encode.WithColors(encode.NewColors()))
	}
	return encode.Encode(v, w, opts...)
}
