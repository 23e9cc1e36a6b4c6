package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/polydoc/polydoc/doc"
)

// Encode writes v to w in an indented YAML-like form. Values excluded from
// indexing are prefixed with a "!noindex" marker.
func Encode(v *doc.Value, w io.Writer, opts ...Option) error {
	o := newOptions(opts...)
	buf := &strings.Builder{}
	encodeValue(buf, v, o, 0, false)
	buf.WriteString("\n")
	_, err := io.WriteString(w, buf.String())
	return err
}

func encodeValue(buf *strings.Builder, v *doc.Value, o *options, depth int, inline bool) {
	if v == nil {
		buf.WriteString(o.colors.Null("null"))
		return
	}
	if v.NoIndex {
		buf.WriteString(o.colors.Marker("!noindex"))
		buf.WriteString(" ")
	}
	switch v.Type {
	case doc.NullType:
		buf.WriteString(o.colors.Null("null"))
	case doc.BoolType:
		buf.WriteString(o.colors.Bool(strconv.FormatBool(v.Bool)))
	case doc.StringType:
		buf.WriteString(o.colors.String(strconv.Quote(v.String)))
	case doc.NumberType:
		buf.WriteString(o.colors.Number(numberString(v)))
	case doc.ListType:
		if len(v.Values) == 0 {
			buf.WriteString("[]")
			return
		}
		for _, e := range v.Values {
			buf.WriteString("\n")
			writeIndent(buf, o, depth)
			buf.WriteString(o.colors.Sep("- "))
			encodeValue(buf, e, o, depth+1, true)
		}
	case doc.DocType:
		if v.Doc == nil || v.Doc.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		for name, fv := range v.Doc.All() {
			buf.WriteString("\n")
			writeIndent(buf, o, depth)
			buf.WriteString(o.colors.Field(name))
			buf.WriteString(o.colors.Sep(":"))
			buf.WriteString(" ")
			encodeValue(buf, fv, o, depth+1, true)
		}
	}
}

func numberString(v *doc.Value) string {
	if v.Int64 != nil {
		return strconv.FormatInt(*v.Int64, 10)
	}
	if v.Float64 != nil {
		return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
	}
	return "0"
}

func writeIndent(buf *strings.Builder, o *options, depth int) {
	fmt.Fprintf(buf, "%*s", depth*o.indent, "")
}
