package structmap

import (
	"fmt"
	"reflect"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/translate"
)

// Creator materializes zero instances and empty document shells for one
// struct type.
type Creator struct {
	typ reflect.Type // pointer to struct
}

// Populator copies a struct type's mapped fields between instances and
// documents.
type Populator struct {
	typ    reflect.Type // pointer to struct
	fields []fieldInfo
}

// For builds the collaborator pair for a struct type. prototype must be a
// (possibly nil) pointer to struct, e.g. (*Cat)(nil); its fields are
// parsed once.
func For(prototype any) (*Creator, *Populator, error) {
	typ := reflect.TypeOf(prototype)
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("structmap: prototype must be a pointer to struct, got %T", prototype)
	}
	fields, err := parseFields(typ.Elem())
	if err != nil {
		return nil, nil, err
	}
	return &Creator{typ: typ}, &Populator{typ: typ, fields: fields}, nil
}

func (c *Creator) Load(d *doc.Document, ctx *translate.LoadContext, path translate.Path) (any, error) {
	return reflect.New(c.typ.Elem()).Interface(), nil
}

func (c *Creator) Save(v any, ctx *translate.SaveContext, path translate.Path) (*doc.Document, error) {
	return doc.NewDocument(), nil
}

func (p *Populator) Save(v any, index bool, ctx *translate.SaveContext, path translate.Path, into *doc.Document) error {
	rv := reflect.ValueOf(v)
	if rv.Type() != p.typ {
		return &MarshalError{
			FieldPath: string(path),
			Message:   fmt.Sprintf("expected %s, got %T", p.typ, v),
		}
	}
	if rv.IsNil() {
		return &MarshalError{FieldPath: string(path), Message: "instance is nil"}
	}
	sv := rv.Elem()
	for i := range p.fields {
		f := &p.fields[i]
		fv := sv.FieldByIndex(f.index)
		if f.omitEmpty && isEmpty(fv) {
			continue
		}
		val, err := toValue(fv, path.Field(f.docName))
		if err != nil {
			return err
		}
		into.Set(f.docName, val.WithNoIndex(f.noIndex || !index))
	}
	return nil
}

func (p *Populator) Load(d *doc.Document, ctx *translate.LoadContext, path translate.Path, into any) error {
	rv := reflect.ValueOf(into)
	if rv.Type() != p.typ {
		return &UnmarshalError{
			FieldPath: string(path),
			Message:   fmt.Sprintf("expected %s, got %T", p.typ, into),
		}
	}
	if rv.IsNil() {
		return &UnmarshalError{FieldPath: string(path), Message: "target instance is nil"}
	}
	sv := rv.Elem()
	for i := range p.fields {
		f := &p.fields[i]
		dv := d.Get(f.docName)
		if dv == nil {
			continue
		}
		if err := fromValue(dv, sv.FieldByIndex(f.index), path.Field(f.docName)); err != nil {
			return err
		}
	}
	return nil
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.String:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}
