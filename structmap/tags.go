package structmap

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag consulted for field mapping.
const TagName = "doc"

type tagInfo struct {
	name      string
	noIndex   bool
	omitEmpty bool
	skip      bool
}

// parseTag parses a `doc:"name,flag,..."` tag. An empty name keeps the Go
// field name; the name "-" skips the field entirely.
func parseTag(tag string) (tagInfo, error) {
	res := tagInfo{}
	if tag == "" {
		return res, nil
	}
	parts := strings.Split(tag, ",")
	res.name = strings.TrimSpace(parts[0])
	if res.name == "-" && len(parts) == 1 {
		res.skip = true
		res.name = ""
		return res, nil
	}
	for _, part := range parts[1:] {
		switch strings.TrimSpace(part) {
		case "noindex":
			res.noIndex = true
		case "omitempty":
			res.omitEmpty = true
		case "":
		default:
			return res, fmt.Errorf("unknown tag flag %q", strings.TrimSpace(part))
		}
	}
	return res, nil
}

type fieldInfo struct {
	name      string // Go field name
	docName   string // document field name
	index     []int  // reflect field index path, embedded structs included
	typ       reflect.Type
	noIndex   bool
	omitEmpty bool
}

// parseFields extracts the mapped fields of a struct type, flattening
// embedded structs. Duplicate document names are a configuration error.
func parseFields(t reflect.Type) ([]fieldInfo, error) {
	var fields []fieldInfo
	seen := map[string]bool{}
	if err := appendFields(&fields, seen, t, nil); err != nil {
		return nil, err
	}
	return fields, nil
}

func appendFields(fields *[]fieldInfo, seen map[string]bool, t reflect.Type, prefix []int) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		index := append(append([]int{}, prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Struct {
				if err := appendFields(fields, seen, ft, index); err != nil {
					return err
				}
			}
			// anonymous non-struct fields carry no data of their own
			continue
		}
		ti, err := parseTag(f.Tag.Get(TagName))
		if err != nil {
			return fmt.Errorf("structmap: field %s.%s: %w", t, f.Name, err)
		}
		if ti.skip {
			continue
		}
		docName := f.Name
		if ti.name != "" {
			docName = ti.name
		}
		if seen[docName] {
			return fmt.Errorf("structmap: duplicate document field %q in %s", docName, t)
		}
		seen[docName] = true
		*fields = append(*fields, fieldInfo{
			name:      f.Name,
			docName:   docName,
			index:     index,
			typ:       f.Type,
			noIndex:   ti.noIndex,
			omitEmpty: ti.omitEmpty,
		})
	}
	return nil
}
