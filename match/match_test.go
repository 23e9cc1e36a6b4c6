package match

import (
	"testing"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/translate"
)

func tigerDoc() *doc.Document {
	return doc.FromFields(
		doc.KeyVal{Key: "name", Val: doc.FromString("Shere")},
		doc.KeyVal{Key: "lives", Val: doc.FromInt(9)},
		doc.KeyVal{Key: translate.DiscriminatorField, Val: doc.FromString("Tiger").WithNoIndex(true)},
		doc.KeyVal{Key: translate.DiscriminatorIndexField, Val: doc.FromList([]*doc.Value{
			doc.FromString("Cat"),
		})},
	)
}

func TestEval(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want bool
	}{
		{`kind == "Tiger"`, true},
		{`kind == "Cat"`, false},
		{`"Cat" in kinds`, true},
		{`"Lion" in kinds`, false},
		{`doc.lives > 7`, true},
		{`doc.lives > 7 && doc.name startsWith "S"`, true},
		{`doc.missing == nil`, true},
	} {
		t.Run(tc.src, func(t *testing.T) {
			m, err := Compile(tc.src)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tc.src, err)
			}
			got, err := m.Eval(tigerDoc())
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Eval(%q) = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}

func TestEvalNonHierarchyDocument(t *testing.T) {
	m, err := Compile(`kind == ""`)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	plain := doc.FromFields(doc.KeyVal{Key: "x", Val: doc.FromInt(1)})
	got, err := m.Eval(plain)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if !got {
		t.Errorf("kind of a plain document is not empty")
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile(`kind ==`); err == nil {
		t.Errorf("malformed predicate compiled")
	}
}
