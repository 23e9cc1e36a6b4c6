package structmap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/translate"
)

// fromValue copies a document value into a reflected Go value.
func fromValue(v *doc.Value, rv reflect.Value, path translate.Path) error {
	if v == nil {
		return &UnmarshalError{FieldPath: string(path), Message: "document value is nil"}
	}
	kind := rv.Kind()

	if kind == reflect.Pointer {
		if v.Type == doc.NullType {
			if rv.CanSet() {
				rv.Set(reflect.Zero(rv.Type()))
			}
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		if tu, ok := rv.Interface().(encoding.TextUnmarshaler); ok && v.Type == doc.StringType {
			return textUnmarshal(tu, v.String, path)
		}
		return fromValue(v, rv.Elem(), path)
	}

	if v.Type == doc.NullType {
		if rv.CanSet() {
			rv.Set(reflect.Zero(rv.Type()))
		}
		return nil
	}

	if rv.CanAddr() && v.Type == doc.StringType {
		if tu, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return textUnmarshal(tu, v.String, path)
		}
	}

	switch kind {
	case reflect.String:
		if v.Type != doc.StringType {
			return &TypeError{FieldPath: string(path), Expected: "String", Actual: v.Type.String()}
		}
		rv.SetString(v.String)
		return nil

	case reflect.Bool:
		if v.Type != doc.BoolType {
			return &TypeError{FieldPath: string(path), Expected: "Bool", Actual: v.Type.String()}
		}
		rv.SetBool(v.Bool)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := intFrom(v, path)
		if err != nil {
			return err
		}
		if rv.OverflowInt(i) {
			return &UnmarshalError{FieldPath: string(path), Message: fmt.Sprintf("value %d overflows %s", i, rv.Type())}
		}
		rv.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := intFrom(v, path)
		if err != nil {
			return err
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return &UnmarshalError{FieldPath: string(path), Message: fmt.Sprintf("value %d overflows %s", i, rv.Type())}
		}
		rv.SetUint(uint64(i))
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := floatFrom(v, path)
		if err != nil {
			return err
		}
		rv.SetFloat(f)
		return nil

	case reflect.Slice:
		if v.Type != doc.ListType {
			return &TypeError{FieldPath: string(path), Expected: "List", Actual: v.Type.String()}
		}
		n := len(v.Values)
		out := reflect.MakeSlice(rv.Type(), n, n)
		for i, ev := range v.Values {
			if err := fromValue(ev, out.Index(i), translate.Path(fmt.Sprintf("%s[%d]", path, i))); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case reflect.Array:
		if v.Type != doc.ListType {
			return &TypeError{FieldPath: string(path), Expected: "List", Actual: v.Type.String()}
		}
		if len(v.Values) != rv.Len() {
			return &UnmarshalError{
				FieldPath: string(path),
				Message:   fmt.Sprintf("list has %d elements, array wants %d", len(v.Values), rv.Len()),
			}
		}
		for i, ev := range v.Values {
			if err := fromValue(ev, rv.Index(i), translate.Path(fmt.Sprintf("%s[%d]", path, i))); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		return fromDocumentToMap(v, rv, path)

	case reflect.Struct:
		if v.Type != doc.DocType {
			return &TypeError{FieldPath: string(path), Expected: "Doc", Actual: v.Type.String()}
		}
		return fromDocument(v.Doc, rv, path)

	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: string(path), Message: fmt.Sprintf("cannot load into non-empty interface %s", rv.Type())}
		}
		if a := doc.ToAny(v); a != nil {
			rv.Set(reflect.ValueOf(a))
		} else if rv.CanSet() {
			rv.Set(reflect.Zero(rv.Type()))
		}
		return nil

	default:
		return &UnmarshalError{FieldPath: string(path), Message: fmt.Sprintf("unsupported type %s", rv.Type())}
	}
}

func textUnmarshal(tu encoding.TextUnmarshaler, s string, path translate.Path) error {
	if err := tu.UnmarshalText([]byte(s)); err != nil {
		return &UnmarshalError{FieldPath: string(path), Message: "UnmarshalText failed", Err: err}
	}
	return nil
}

func intFrom(v *doc.Value, path translate.Path) (int64, error) {
	if v.Type != doc.NumberType {
		return 0, &TypeError{FieldPath: string(path), Expected: "Number", Actual: v.Type.String()}
	}
	if v.Int64 != nil {
		return *v.Int64, nil
	}
	if v.Float64 != nil {
		f := *v.Float64
		if f != math.Trunc(f) {
			return 0, &UnmarshalError{FieldPath: string(path), Message: fmt.Sprintf("number %v is not integral", f)}
		}
		return int64(f), nil
	}
	return 0, &UnmarshalError{FieldPath: string(path), Message: "number value carries no number"}
}

func floatFrom(v *doc.Value, path translate.Path) (float64, error) {
	if v.Type != doc.NumberType {
		return 0, &TypeError{FieldPath: string(path), Expected: "Number", Actual: v.Type.String()}
	}
	if v.Float64 != nil {
		return *v.Float64, nil
	}
	if v.Int64 != nil {
		return float64(*v.Int64), nil
	}
	return 0, &UnmarshalError{FieldPath: string(path), Message: "number value carries no number"}
}

func fromDocumentToMap(v *doc.Value, rv reflect.Value, path translate.Path) error {
	if v.Type != doc.DocType {
		return &TypeError{FieldPath: string(path), Expected: "Doc", Actual: v.Type.String()}
	}
	if rv.Type().Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: string(path),
			Message:   fmt.Sprintf("map keys must be strings, got %s", rv.Type().Key()),
		}
	}
	out := reflect.MakeMapWithSize(rv.Type(), v.Doc.Len())
	elemType := rv.Type().Elem()
	for name, ev := range v.Doc.All() {
		elem := reflect.New(elemType).Elem()
		if err := fromValue(ev, elem, path.Field(name)); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(name), elem)
	}
	rv.Set(out)
	return nil
}

// fromDocument fills a struct value from a document using the same field
// rules as the populator. Unknown fields are ignored.
func fromDocument(d *doc.Document, rv reflect.Value, path translate.Path) error {
	fields, err := parseFields(rv.Type())
	if err != nil {
		return err
	}
	for i := range fields {
		f := &fields[i]
		dv := d.Get(f.docName)
		if dv == nil {
			continue
		}
		if err := fromValue(dv, rv.FieldByIndex(f.index), path.Field(f.docName)); err != nil {
			return err
		}
	}
	return nil
}
