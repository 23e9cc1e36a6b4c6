package doc

import (
	"fmt"
	"math"
	"sort"
)

// ToAny converts a value to plain JSON-shaped data (maps, slices, scalars).
// NoIndex flags do not survive this form; use MarshalJSON for a lossless
// encoding.
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType:
		return nil
	case StringType:
		return v.String
	case BoolType:
		return v.Bool
	case NumberType:
		if v.Int64 != nil {
			return *v.Int64
		}
		if v.Float64 != nil {
			return *v.Float64
		}
		return nil
	case ListType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = ToAny(e)
		}
		return res
	case DocType:
		return DocumentToAny(v.Doc)
	}
	return nil
}

func DocumentToAny(d *Document) map[string]any {
	if d == nil {
		return nil
	}
	res := make(map[string]any, len(d.names))
	for i, n := range d.names {
		res[n] = ToAny(d.values[i])
	}
	return res
}

// FromAny converts plain JSON-shaped data to a value. Map keys are ordered
// lexically since plain data carries no field order.
func FromAny(v any) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		// JSON decoding produces float64 for every number; keep exact
		// integers integral.
		if x == math.Trunc(x) && !math.IsInf(x, 0) && math.Abs(x) < 1<<53 {
			return FromInt(int64(x)), nil
		}
		return FromFloat(x), nil
	case []any:
		vals := make([]*Value, len(x))
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = ev
		}
		return FromList(vals), nil
	case map[string]any:
		d, err := DocumentFromAny(x)
		if err != nil {
			return nil, err
		}
		return FromDocument(d), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a document value", v)
}

func DocumentFromAny(m map[string]any) (*Document, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := NewDocument()
	for _, k := range keys {
		v, err := FromAny(m[k])
		if err != nil {
			return nil, err
		}
		res.Set(k, v)
	}
	return res, nil
}
