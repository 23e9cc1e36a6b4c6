package docdiff

import (
	"testing"

	"github.com/polydoc/polydoc/doc"
)

func TestDiffEqual(t *testing.T) {
	d := doc.FromFields(
		doc.KeyVal{Key: "a", Val: doc.FromInt(1)},
		doc.KeyVal{Key: "b", Val: doc.FromString("x")},
	)
	if got := Diff(doc.FromDocument(d), doc.FromDocument(d.Clone())); got != nil {
		t.Errorf("Diff() of equal documents = %v, want nil", got)
	}
	if got := DiffDocument(d, d.Clone()); got != nil {
		t.Errorf("DiffDocument() of equal documents = %v, want nil", got)
	}
}

func TestDiffChangedField(t *testing.T) {
	from := doc.FromFields(
		doc.KeyVal{Key: "name", Val: doc.FromString("old")},
		doc.KeyVal{Key: "keep", Val: doc.FromInt(1)},
	)
	to := from.Clone()
	to.Set("name", doc.FromString("new"))

	dd := DiffDocument(from, to)
	if dd == nil {
		t.Fatalf("DiffDocument() = nil for changed documents")
	}
	if dd.Get("keep") != nil {
		t.Errorf("unchanged field appears in the diff")
	}
	pair := dd.Get("name")
	if pair == nil || pair.Type != doc.DocType {
		t.Fatalf("changed field = %v, want a {from, to} document", pair)
	}
	if got := pair.Doc.Get("from").String; got != "old" {
		t.Errorf("from = %q, want old", got)
	}
	if got := pair.Doc.Get("to").String; got != "new" {
		t.Errorf("to = %q, want new", got)
	}
}

func TestDiffInsertDelete(t *testing.T) {
	from := doc.FromFields(
		doc.KeyVal{Key: "gone", Val: doc.FromInt(1)},
		doc.KeyVal{Key: "stay", Val: doc.FromInt(2)},
	)
	to := doc.FromFields(
		doc.KeyVal{Key: "stay", Val: doc.FromInt(2)},
		doc.KeyVal{Key: "added", Val: doc.FromInt(3)},
	)
	dd := DiffDocument(from, to)
	if dd == nil {
		t.Fatalf("DiffDocument() = nil")
	}
	gone := dd.Get("gone")
	if gone == nil || gone.Doc.Get("to").Type != doc.NullType {
		t.Errorf("deleted field = %v, want to=null", gone)
	}
	added := dd.Get("added")
	if added == nil || added.Doc.Get("from").Type != doc.NullType {
		t.Errorf("inserted field = %v, want from=null", added)
	}
	if dd.Get("stay") != nil {
		t.Errorf("unchanged field appears in the diff")
	}
}

func TestDiffNestedRecursion(t *testing.T) {
	from := doc.FromFields(
		doc.KeyVal{Key: "nested", Val: doc.FromDocument(doc.FromFields(
			doc.KeyVal{Key: "x", Val: doc.FromInt(1)},
			doc.KeyVal{Key: "y", Val: doc.FromInt(2)},
		))},
	)
	to := from.Clone()
	to.Get("nested").Doc.Set("y", doc.FromInt(9))

	dd := DiffDocument(from, to)
	if dd == nil {
		t.Fatalf("DiffDocument() = nil")
	}
	nested := dd.Get("nested")
	if nested == nil || nested.Type != doc.DocType {
		t.Fatalf("nested diff = %v", nested)
	}
	if nested.Doc.Get("x") != nil {
		t.Errorf("unchanged nested field appears in the diff")
	}
	pair := nested.Doc.Get("y")
	if pair == nil || *pair.Doc.Get("from").Int64 != 2 || *pair.Doc.Get("to").Int64 != 9 {
		t.Errorf("nested pair = %v, want from=2 to=9", pair)
	}
}

func TestDiffFlagOnlyChange(t *testing.T) {
	from := doc.FromDocument(doc.FromFields(
		doc.KeyVal{Key: "a", Val: doc.FromInt(1)},
	))
	to := from.Clone()
	to.Doc.Set("a", doc.FromInt(1).WithNoIndex(true))
	got := Diff(from, to)
	if got == nil {
		t.Fatalf("Diff() = nil for flag-only change")
	}
	// the nested field diff reports the flagged value
	inner := got.Doc.Get("a")
	if inner == nil || !inner.Doc.Get("to").NoIndex {
		t.Errorf("Diff() = %v, want a pair carrying the NoIndex change", got)
	}
}

func TestMakeDiffClones(t *testing.T) {
	from := doc.FromString("x")
	pair := MakeDiff(from, nil)
	pair.Doc.Get("from").String = "mutated"
	if from.String != "x" {
		t.Errorf("MakeDiff() aliased its input")
	}
	if pair.Doc.Get("to").Type != doc.NullType {
		t.Errorf("absent side = %v, want null", pair.Doc.Get("to"))
	}
}
