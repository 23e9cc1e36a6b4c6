// Package translate converts Go struct instances to and from doc.Document
// values, with polymorphic dispatch over an explicitly declared type
// hierarchy.
//
// # Overview
//
// A Translator is responsible for exactly one concrete type. The translator
// for the hierarchy root additionally holds a registry of subtype
// translators and is the entry point for saving or loading any instance in
// the hierarchy: it handles the operation itself when the runtime type (on
// save) or the document's discriminator (on load) matches its own type, and
// forwards to the registered translator otherwise.
//
// Documents produced for subtypes carry the subtype's discriminator under
// the reserved field "^d", stored unindexed. Subtypes that opt in to
// indexing contribute their discriminator to the reserved list field "^i",
// accumulated root-to-leaf, which lets stores answer "is an instance of X
// anywhere in its ancestry" queries.
//
// # Setup
//
// Hierarchies are declared with explicit Subtype records instead of type
// metadata. Construct the root with New, each subtype with NewSubtype, wire
// them with RegisterSubtype, and call Freeze before serving traffic:
//
//	root := translate.New(reflect.TypeOf(&Animal{}), "animal", c, p)
//	cat, _ := translate.NewSubtype([]translate.Subtype{
//		{Type: reflect.TypeOf(&Cat{}), Index: true},
//	}, "animal.cat", cc, cp)
//	root.RegisterSubtype(cat)
//	root.Freeze()
//
// After Freeze the translators are read-only and safe for concurrent use.
//
// Field-level translation is delegated to the Creator and Populator
// collaborators; the structmap package provides reflection-based
// implementations.
package translate
