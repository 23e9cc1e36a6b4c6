package doc

import (
	"encoding/json"
	"fmt"
)

type valueBase struct {
	Type    Type      `json:"type"`
	NoIndex bool      `json:"noIndex,omitempty"`
	Int64   *int64    `json:"int,omitempty"`
	Float64 *float64  `json:"float,omitempty"`
	Values  []*Value  `json:"values,omitempty"`
	Doc     *Document `json:"doc,omitempty"`
}

// MarshalJSON emits the lossless wire form of the value, index flags
// included. For the plain-data form see ToAny.
func (v *Value) MarshalJSON() ([]byte, error) {
	base := &valueBase{
		Type:    v.Type,
		NoIndex: v.NoIndex,
		Int64:   v.Int64,
		Float64: v.Float64,
		Values:  v.Values,
		Doc:     v.Doc,
	}
	switch v.Type {
	case StringType:
		type C struct {
			valueBase
			String string `json:"string"`
		}
		return json.Marshal(C{valueBase: *base, String: v.String})
	case BoolType:
		type C struct {
			valueBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{valueBase: *base, Bool: v.Bool})
	default:
		return json.Marshal(base)
	}
}

func (v *Value) UnmarshalJSON(d []byte) error {
	type C struct {
		valueBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	v.Type = tmp.Type
	v.NoIndex = tmp.NoIndex
	v.String = tmp.String
	v.Bool = tmp.Bool
	v.Int64 = tmp.Int64
	v.Float64 = tmp.Float64
	v.Values = tmp.Values
	v.Doc = tmp.Doc
	switch v.Type {
	case NumberType:
		if v.Int64 == nil && v.Float64 == nil {
			return fmt.Errorf("number value carries no number")
		}
	case DocType:
		if v.Doc == nil {
			return fmt.Errorf("doc value carries no document")
		}
	}
	return nil
}

type documentJSON struct {
	Names  []string `json:"names"`
	Values []*Value `json:"values"`
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{Names: d.names, Values: d.values})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	tmp := &documentJSON{}
	if err := json.Unmarshal(data, tmp); err != nil {
		return err
	}
	if len(tmp.Names) != len(tmp.Values) {
		return fmt.Errorf("document has %d names but %d values", len(tmp.Names), len(tmp.Values))
	}
	d.names = tmp.Names
	d.values = tmp.Values
	return nil
}
