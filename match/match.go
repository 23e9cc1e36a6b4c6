// Package match evaluates compiled predicates over documents. Predicates
// are expr programs (expr-lang.org) with the environment:
//
//	doc   map[string]any  the document's fields as plain data
//	kind  string          the document's discriminator, "" when absent
//	kinds []string        the indexed ancestry discriminators, root first
//
// Examples:
//
//	kind == "Tiger"
//	"Cat" in kinds
//	doc.lives > 7 && doc.name startsWith "F"
package match

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/translate"
)

type Matcher struct {
	src  string
	prog *vm.Program
}

// Compile compiles a predicate. The program is reusable and safe for
// concurrent Eval.
func Compile(src string) (*Matcher, error) {
	prog, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	return &Matcher{src: src, prog: prog}, nil
}

func (m *Matcher) String() string {
	return m.src
}

// Eval runs the predicate against a document.
func (m *Matcher) Eval(d *doc.Document) (bool, error) {
	out, err := expr.Run(m.prog, env(d))
	if err != nil {
		return false, fmt.Errorf("match: %w", err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("match: predicate %q returned %T, not bool", m.src, out)
	}
	return b, nil
}

func env(d *doc.Document) map[string]any {
	fields := map[string]any{}
	kind := ""
	kinds := []string{}
	for name, v := range d.All() {
		switch name {
		case translate.DiscriminatorField:
			if v.Type == doc.StringType {
				kind = v.String
			}
		case translate.DiscriminatorIndexField:
			if v.Type == doc.ListType {
				for _, e := range v.Values {
					if e.Type == doc.StringType {
						kinds = append(kinds, e.String)
					}
				}
			}
		default:
			fields[name] = doc.ToAny(v)
		}
	}
	return map[string]any{
		"doc":   fields,
		"kind":  kind,
		"kinds": kinds,
	}
}
