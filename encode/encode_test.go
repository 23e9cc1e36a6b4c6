package encode

import (
	"strings"
	"testing"

	"github.com/polydoc/polydoc/doc"
)

func render(t *testing.T, v *doc.Value, opts ...Option) string {
	t.Helper()
	buf := &strings.Builder{}
	if err := Encode(v, buf, opts...); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.String()
}

func TestEncodeScalars(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    *doc.Value
		want string
	}{
		{"null", doc.Null(), "null\n"},
		{"bool", doc.FromBool(true), "true\n"},
		{"int", doc.FromInt(-3), "-3\n"},
		{"float", doc.FromFloat(1.5), "1.5\n"},
		{"string", doc.FromString("hi"), "\"hi\"\n"},
		{"nil value", nil, "null\n"},
		{"empty list", doc.FromList(nil), "[]\n"},
		{"empty doc", doc.FromDocument(doc.NewDocument()), "{}\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := render(t, tc.v); got != tc.want {
				t.Errorf("Encode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeNoIndexMarker(t *testing.T) {
	got := render(t, doc.FromString("s").WithNoIndex(true))
	if got != "!noindex \"s\"\n" {
		t.Errorf("Encode() = %q", got)
	}
}

func TestEncodeDocument(t *testing.T) {
	v := doc.FromDocument(doc.FromFields(
		doc.KeyVal{Key: "name", Val: doc.FromString("x")},
		doc.KeyVal{Key: "tags", Val: doc.FromList([]*doc.Value{
			doc.FromInt(1),
			doc.FromInt(2),
		})},
	))
	got := render(t, v)
	want := `
name: "x"
tags:
  - 1
  - 2
`
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeIndentOption(t *testing.T) {
	v := doc.FromDocument(doc.FromFields(
		doc.KeyVal{Key: "a", Val: doc.FromDocument(doc.FromFields(
			doc.KeyVal{Key: "b", Val: doc.FromInt(1)},
		))},
	))
	got := render(t, v, WithIndent(4))
	if !strings.Contains(got, "\n    b: 1") {
		t.Errorf("Encode() with indent 4 = %q", got)
	}
}
