package translate

import "github.com/polydoc/polydoc/doc"

// Path is a diagnostic token naming where in a larger translation a
// translator is operating. It only ever appears in errors and debug logs.
type Path string

const RootPath Path = ""

func (p Path) Field(name string) Path {
	if p == "" {
		return Path(name)
	}
	return Path(string(p) + "." + name)
}

func (p Path) String() string {
	if p == "" {
		return "<root>"
	}
	return string(p)
}

// LoadContext accompanies a load through every translator and collaborator
// it touches. Data is opaque to this package.
type LoadContext struct {
	Data any
}

// SaveContext accompanies a save the same way.
type SaveContext struct {
	Data any
}

// Creator materializes instances on load and document shells on save.
// Implementations must not perform discriminator logic.
type Creator interface {
	Load(d *doc.Document, ctx *LoadContext, path Path) (any, error)
	Save(v any, ctx *SaveContext, path Path) (*doc.Document, error)
}

// Populator copies a type's own declared fields between an instance and a
// document, in both directions. Like Creator it is oblivious to dispatch.
type Populator interface {
	Load(d *doc.Document, ctx *LoadContext, path Path, into any) error
	Save(v any, index bool, ctx *SaveContext, path Path, into *doc.Document) error
}
