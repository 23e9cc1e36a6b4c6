// Package declare describes type hierarchies as explicit data and builds
// wired translators from them. It is the configuration front end for the
// translate package: a Hierarchy names a root type and its subtypes with
// their discriminators, index opt-ins, parents, and legacy aliases; Build
// turns that plus Go prototypes into a frozen root translator backed by
// structmap collaborators.
package declare

import (
	"fmt"
	"reflect"

	"github.com/polydoc/polydoc/structmap"
	"github.com/polydoc/polydoc/translate"
)

// Subtype declares one concrete type of a hierarchy.
type Subtype struct {
	// Type is the subtype's name, the key into the prototype map given
	// to Build.
	Type string `yaml:"type"`

	// Parent is the Type of the declaring parent; empty means a direct
	// subtype of the root.
	Parent string `yaml:"parent,omitempty"`

	// Name overrides the discriminator; empty uses the Go type's simple
	// name.
	Name string `yaml:"name,omitempty"`

	// Index opts the discriminator in to ancestry indexing.
	Index bool `yaml:"index,omitempty"`

	// AlsoLoad lists legacy discriminators that still resolve to this
	// subtype on load.
	AlsoLoad []string `yaml:"alsoLoad,omitempty"`
}

// Hierarchy declares a root and its subtypes.
type Hierarchy struct {
	Root     string    `yaml:"root"`
	Subtypes []Subtype `yaml:"subtypes"`
}

// Validate checks the declaration for structural errors: a missing root,
// duplicate type names, unknown parents, and parent cycles.
func (h *Hierarchy) Validate() error {
	if h.Root == "" {
		return fmt.Errorf("declare: hierarchy has no root")
	}
	byType := map[string]*Subtype{}
	for i := range h.Subtypes {
		s := &h.Subtypes[i]
		if s.Type == "" {
			return fmt.Errorf("declare: subtype %d has no type", i)
		}
		if s.Type == h.Root {
			return fmt.Errorf("declare: root %q cannot also be a subtype", h.Root)
		}
		if byType[s.Type] != nil {
			return fmt.Errorf("declare: duplicate subtype %q", s.Type)
		}
		byType[s.Type] = s
	}
	for i := range h.Subtypes {
		s := &h.Subtypes[i]
		seen := map[string]bool{s.Type: true}
		for p := s.Parent; p != "" && p != h.Root; {
			ps := byType[p]
			if ps == nil {
				return fmt.Errorf("declare: subtype %q has unknown parent %q", s.Type, p)
			}
			if seen[p] {
				return fmt.Errorf("declare: parent cycle through %q", p)
			}
			seen[p] = true
			p = ps.Parent
		}
	}
	return nil
}

// Build wires the hierarchy: structmap collaborators for every type,
// subtype translators with root-first lineages, registration on the root,
// freeze. prototypes maps each declared type name (the root included) to a
// pointer-to-struct prototype such as (*Cat)(nil).
func (h *Hierarchy) Build(prototypes map[string]any) (*translate.Translator, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	rootProto, ok := prototypes[h.Root]
	if !ok {
		return nil, fmt.Errorf("declare: no prototype for root %q", h.Root)
	}
	rc, rp, err := structmap.For(rootProto)
	if err != nil {
		return nil, err
	}
	root := translate.New(reflect.TypeOf(rootProto), translate.Path(h.Root), rc, rp)

	byType := map[string]*Subtype{}
	for i := range h.Subtypes {
		byType[h.Subtypes[i].Type] = &h.Subtypes[i]
	}
	for i := range h.Subtypes {
		s := &h.Subtypes[i]
		lineage, err := h.lineage(s, byType, prototypes)
		if err != nil {
			return nil, err
		}
		proto := prototypes[s.Type]
		c, p, err := structmap.For(proto)
		if err != nil {
			return nil, err
		}
		tr, err := translate.NewSubtype(lineage, translate.Path(s.Type), c, p)
		if err != nil {
			return nil, err
		}
		if err := root.RegisterSubtype(tr); err != nil {
			return nil, err
		}
	}
	root.Freeze()
	return root, nil
}

// lineage returns the chain of translate.Subtype declarations from the
// outermost ancestor below the root down to s itself.
func (h *Hierarchy) lineage(s *Subtype, byType map[string]*Subtype, prototypes map[string]any) ([]translate.Subtype, error) {
	var chain []*Subtype
	for cur := s; cur != nil; {
		chain = append([]*Subtype{cur}, chain...)
		if cur.Parent == "" || cur.Parent == h.Root {
			break
		}
		cur = byType[cur.Parent]
	}
	res := make([]translate.Subtype, len(chain))
	for i, cs := range chain {
		proto, ok := prototypes[cs.Type]
		if !ok {
			return nil, fmt.Errorf("declare: no prototype for subtype %q", cs.Type)
		}
		res[i] = translate.Subtype{
			Type:     reflect.TypeOf(proto),
			Name:     cs.Name,
			Index:    cs.Index,
			AlsoLoad: cs.AlsoLoad,
		}
	}
	return res, nil
}
