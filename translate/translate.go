package translate

import (
	"fmt"
	"reflect"

	"github.com/polydoc/polydoc/debug"
	"github.com/polydoc/polydoc/doc"
)

const (
	// DiscriminatorField is the reserved document field holding the
	// discriminator of the concrete type that produced the document.
	// Always stored with NoIndex set.
	DiscriminatorField = "^d"

	// DiscriminatorIndexField is the reserved list field holding every
	// indexed discriminator in the type's ancestry, root first.
	DiscriminatorIndexField = "^i"
)

// Translator translates instances of one concrete type. The root
// translator of a hierarchy also dispatches to registered subtype
// translators; see the package documentation.
type Translator struct {
	declared  reflect.Type
	creator   Creator
	populator Populator

	// "" for the root type, non-empty for every registered subtype.
	discriminator string
	alsoLoad      []string

	// Discriminators of every ancestor (self included) that opted in to
	// indexing, root first. Fixed at construction.
	indexedDiscriminators []string

	// Keyed by discriminator value, including alsoLoad aliases.
	byDiscriminator map[string]*Translator

	// Keyed by runtime type.
	byType map[reflect.Type]*Translator

	frozen bool
}

// New constructs the translator for a hierarchy's root type. The root has
// no discriminator; documents it produces carry neither reserved field.
func New(declared reflect.Type, path Path, creator Creator, populator Populator) *Translator {
	if debug.Register() {
		debug.Logf("translate: new root translator for %s at %s\n", declared, path)
	}
	return &Translator{
		declared:        declared,
		creator:         creator,
		populator:       populator,
		byDiscriminator: map[string]*Translator{},
		byType:          map[reflect.Type]*Translator{},
	}
}

// NewSubtype constructs the translator for a registered subtype. lineage is
// the chain of subtype declarations from the closest-to-root ancestor down
// to the type itself (last element). The translator's discriminator comes
// from the last element; indexed discriminators accumulate root first from
// every element that declared Index.
func NewSubtype(lineage []Subtype, path Path, creator Creator, populator Populator) (*Translator, error) {
	if len(lineage) == 0 {
		return nil, fmt.Errorf("translate: subtype at %s has an empty lineage", path)
	}
	own := &lineage[len(lineage)-1]
	if own.Type == nil {
		return nil, fmt.Errorf("translate: subtype at %s declares no type", path)
	}
	disc := own.Discriminator()
	if disc == "" {
		return nil, fmt.Errorf("translate: subtype %s at %s has no usable discriminator", own.Type, path)
	}
	var indexed []string
	for i := range lineage {
		if lineage[i].Index {
			indexed = append(indexed, lineage[i].Discriminator())
		}
	}
	if debug.Register() {
		debug.Logf("translate: new subtype translator for %s (%q) at %s, indexed %v\n",
			own.Type, disc, path, indexed)
	}
	return &Translator{
		declared:              own.Type,
		creator:               creator,
		populator:             populator,
		discriminator:         disc,
		alsoLoad:              own.AlsoLoad,
		indexedDiscriminators: indexed,
		byDiscriminator:       map[string]*Translator{},
		byType:                map[reflect.Type]*Translator{},
	}, nil
}

// Declared returns the concrete type this translator is responsible for.
func (t *Translator) Declared() reflect.Type { return t.declared }

// Discriminator returns the translator's discriminator, "" for the root.
func (t *Translator) Discriminator() string { return t.discriminator }

// IndexedDiscriminators returns the accumulated indexed discriminators,
// root first. The slice is a copy.
func (t *Translator) IndexedDiscriminators() []string {
	res := make([]string, len(t.indexedDiscriminators))
	copy(res, t.indexedDiscriminators)
	return res
}

// RegisterSubtype registers sub so that instances of its type and
// documents carrying its discriminator (or any alsoLoad alias) are
// forwarded to it. Registering two different translators under one key is
// a configuration error; registering the same translator twice is a no-op.
// Callers serialize registration and call Freeze before any load or save.
func (t *Translator) RegisterSubtype(sub *Translator) error {
	if t.frozen {
		return ErrFrozen
	}
	if sub.discriminator == "" {
		return fmt.Errorf("translate: cannot register %s: it has no discriminator", sub.declared)
	}
	keys := append([]string{sub.discriminator}, sub.alsoLoad...)
	for _, key := range keys {
		if prev, ok := t.byDiscriminator[key]; ok && prev != sub {
			return &DuplicateError{Key: fmt.Sprintf("discriminator %q", key)}
		}
	}
	if prev, ok := t.byType[sub.declared]; ok && prev != sub {
		return &DuplicateError{Key: fmt.Sprintf("type %s", sub.declared)}
	}
	for _, key := range keys {
		t.byDiscriminator[key] = sub
	}
	t.byType[sub.declared] = sub
	if debug.Register() {
		debug.Logf("translate: registered %s under %v\n", sub.declared, keys)
	}
	return nil
}

// Freeze ends the registration phase. The translator is read-only
// afterwards and safe for concurrent Load and Save.
func (t *Translator) Freeze() {
	t.frozen = true
}

// Frozen reports whether Freeze has been called.
func (t *Translator) Frozen() bool {
	return t.frozen
}

// Load materializes an instance from a document value. The document's
// discriminator (absent reads as "") selects the translator: a match means
// this translator loads directly via its creator and populator; otherwise
// the registered translator for the discriminator takes over. When the
// document carries an alsoLoad alias, the redirect rewrites a copy of the
// document to the canonical discriminator first, so concrete populators
// only ever see canonical values.
func (t *Translator) Load(container *doc.Value, ctx *LoadContext, path Path) (any, error) {
	if container == nil || container.Type != doc.DocType || container.Doc == nil {
		return nil, fmt.Errorf("translate: load at %s requires a document value", path)
	}
	d := container.Doc
	disc := ""
	if v := d.Get(DiscriminatorField); v != nil && v.Type == doc.StringType {
		disc = v.String
	}
	if disc != t.discriminator {
		target := t.byDiscriminator[disc]
		if target == nil {
			return nil, &UnregisteredDiscriminatorError{Discriminator: disc, Path: path}
		}
		if debug.Dispatch() {
			debug.Logf("translate: load at %s redirects %q -> %s\n", path, disc, target.declared)
		}
		if target.discriminator != disc {
			// legacy alias: canonicalize on a copy so the target's
			// populator never sees the alias
			rewritten := d.Clone()
			rewritten.Set(DiscriminatorField, doc.FromString(target.discriminator).WithNoIndex(true))
			return target.Load(doc.FromDocument(rewritten), ctx, path)
		}
		return target.Load(container, ctx, path)
	}
	into, err := t.creator.Load(d, ctx, path)
	if err != nil {
		return nil, err
	}
	if err := t.populator.Load(d, ctx, path, into); err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("translate: loaded %s at %s\n", t.declared, path)
	}
	return into, nil
}

// Save translates an instance to a document value. An instance whose
// runtime type is not the declared type is forwarded to the registered
// translator for that type. The produced document carries the
// discriminator (unindexed) and, when any ancestor opted in, the indexed
// discriminator list; the wrapping value's NoIndex flag is the negation of
// index, one decision for the whole document so list membership indexes
// uniformly.
func (t *Translator) Save(v any, index bool, ctx *SaveContext, path Path) (*doc.Value, error) {
	rt := reflect.TypeOf(v)
	if rt != t.declared {
		target := t.byType[rt]
		if target == nil {
			return nil, &UnregisteredTypeError{Type: rt, Path: path}
		}
		if debug.Dispatch() {
			debug.Logf("translate: save at %s redirects %s -> %q\n", path, rt, target.discriminator)
		}
		return target.Save(v, index, ctx, path)
	}
	shell, err := t.creator.Save(v, ctx, path)
	if err != nil {
		return nil, err
	}
	if err := t.populator.Save(v, index, ctx, path, shell); err != nil {
		return nil, err
	}
	if t.discriminator != "" {
		shell.Set(DiscriminatorField, doc.FromString(t.discriminator).WithNoIndex(true))
		if len(t.indexedDiscriminators) > 0 {
			elems := make([]*doc.Value, len(t.indexedDiscriminators))
			for i, d := range t.indexedDiscriminators {
				elems[i] = doc.FromString(d)
			}
			shell.Set(DiscriminatorIndexField, doc.FromList(elems).WithNoIndex(!index))
		}
	}
	if debug.Save() {
		debug.Logf("translate: saved %s at %s: %v\n", t.declared, path, doc.FromDocument(shell))
	}
	return doc.FromDocument(shell).WithNoIndex(!index), nil
}
