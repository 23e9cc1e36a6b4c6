package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/encode"
)

// Logf writes a formatted debug line to stderr, rendering document values
// among the args in their text form.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			data, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(data)
		case *doc.Value:
			args[i] = render(x)
		case *doc.Document:
			args[i] = render(doc.FromDocument(x))
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func render(v *doc.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf); err != nil {
		return fmt.Sprintf("[raw *doc.Value] %v", v)
	}
	return buf.String()
}
