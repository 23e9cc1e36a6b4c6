package structmap

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/translate"
)

// toValue converts a reflected Go value to a document value. path is used
// for error reporting only.
func toValue(v reflect.Value, path translate.Path) (*doc.Value, error) {
	if !v.IsValid() {
		return doc.Null(), nil
	}
	kind := v.Kind()

	if kind == reflect.Pointer {
		if v.IsNil() {
			return doc.Null(), nil
		}
		if tm, ok := v.Interface().(encoding.TextMarshaler); ok {
			return textValue(tm, path)
		}
		return toValue(v.Elem(), path)
	}

	if tm, ok := v.Interface().(encoding.TextMarshaler); ok {
		return textValue(tm, path)
	}
	if v.CanAddr() {
		if tm, ok := v.Addr().Interface().(encoding.TextMarshaler); ok {
			return textValue(tm, path)
		}
	}

	switch kind {
	case reflect.String:
		return doc.FromString(v.String()), nil

	case reflect.Bool:
		return doc.FromBool(v.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return doc.FromInt(v.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > 1<<63-1 {
			return nil, &MarshalError{
				FieldPath: string(path),
				Message:   fmt.Sprintf("uint value %d overflows int64", u),
			}
		}
		return doc.FromInt(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return doc.FromFloat(v.Float()), nil

	case reflect.Slice, reflect.Array:
		return toList(v, path)

	case reflect.Map:
		return toDocumentFromMap(v, path)

	case reflect.Struct:
		d, err := toDocument(v, path)
		if err != nil {
			return nil, err
		}
		return doc.FromDocument(d), nil

	case reflect.Interface:
		if v.IsNil() {
			return doc.Null(), nil
		}
		return toValue(v.Elem(), path)

	default:
		return nil, &MarshalError{
			FieldPath: string(path),
			Message:   fmt.Sprintf("unsupported type %s", v.Type()),
		}
	}
}

func textValue(tm encoding.TextMarshaler, path translate.Path) (*doc.Value, error) {
	text, err := tm.MarshalText()
	if err != nil {
		return nil, &MarshalError{FieldPath: string(path), Message: "MarshalText failed", Err: err}
	}
	return doc.FromString(string(text)), nil
}

func toList(v reflect.Value, path translate.Path) (*doc.Value, error) {
	n := v.Len()
	elems := make([]*doc.Value, n)
	for i := 0; i < n; i++ {
		ev, err := toValue(v.Index(i), translate.Path(fmt.Sprintf("%s[%d]", path, i)))
		if err != nil {
			return nil, err
		}
		elems[i] = ev
	}
	return doc.FromList(elems), nil
}

func toDocumentFromMap(v reflect.Value, path translate.Path) (*doc.Value, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: string(path),
			Message:   fmt.Sprintf("map keys must be strings, got %s", v.Type().Key()),
		}
	}
	if v.IsNil() {
		return doc.Null(), nil
	}
	d := doc.NewDocument()
	keys := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	// deterministic field order
	sort.Strings(keys)
	for _, k := range keys {
		ev, err := toValue(v.MapIndex(reflect.ValueOf(k)), path.Field(k))
		if err != nil {
			return nil, err
		}
		d.Set(k, ev)
	}
	return doc.FromDocument(d), nil
}

// toDocument converts a struct value to a document using the same field
// rules as the populator.
func toDocument(v reflect.Value, path translate.Path) (*doc.Document, error) {
	fields, err := parseFields(v.Type())
	if err != nil {
		return nil, err
	}
	d := doc.NewDocument()
	for i := range fields {
		f := &fields[i]
		fv := v.FieldByIndex(f.index)
		if f.omitEmpty && isEmpty(fv) {
			continue
		}
		ev, err := toValue(fv, path.Field(f.docName))
		if err != nil {
			return nil, err
		}
		d.Set(f.docName, ev.WithNoIndex(f.noIndex))
	}
	return d, nil
}
