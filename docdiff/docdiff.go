// Package docdiff computes structural diffs between documents. A diff is
// itself a document: changed fields map to a {from, to} pair, unchanged
// fields are absent, and nested documents recurse. Diffs are for human
// inspection and test output; they are not patches.
package docdiff

import (
	"github.com/polydoc/polydoc/debug"
	"github.com/polydoc/polydoc/doc"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns nil when the values are equal, and a description of the
// change otherwise.
func Diff(from, to *doc.Value) *doc.Value {
	if doc.Equal(from, to) {
		return nil
	}
	if from != nil && to != nil && from.Type == doc.DocType && to.Type == doc.DocType {
		dd := DiffDocument(from.Doc, to.Doc)
		if dd == nil {
			// documents agree, flags differ
			return MakeDiff(from, to)
		}
		return doc.FromDocument(dd)
	}
	return MakeDiff(from, to)
}

// DiffDocument diffs two documents field by field, nil when they are
// equal. Field sequences are aligned with a rune-level diff over the
// field names so insertions and deletions are detected positionally.
func DiffDocument(from, to *doc.Document) *doc.Document {
	if debug.Diff() {
		debug.Logf("docdiff: diffing %v against %v\n", from, to)
	}
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := doc.NewDocument()
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				res.Set(runeMap[r], MakeDiff(from.Get(runeMap[r]), nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				name := runeMap[r]
				if fRes := Diff(from.Get(name), to.Get(name)); fRes != nil {
					res.Set(name, fRes)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				res.Set(runeMap[r], MakeDiff(nil, to.Get(runeMap[r])))
				ti++
			}
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

// MakeDiff wraps a change as a {from, to} document value. Absent sides are
// null.
func MakeDiff(from, to *doc.Value) *doc.Value {
	if from == nil {
		from = doc.Null()
	}
	if to == nil {
		to = doc.Null()
	}
	return doc.FromDocument(doc.FromFields(
		doc.KeyVal{Key: "from", Val: from.Clone()},
		doc.KeyVal{Key: "to", Val: to.Clone()},
	))
}

func mapFieldsTo(m map[string]rune, im map[rune]string, d *doc.Document) []rune {
	names := d.Names()
	rs := make([]rune, len(names))
	for i, f := range names {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
