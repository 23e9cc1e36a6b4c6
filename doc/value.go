package doc

// Value is a single document value. Exactly one of the payload fields is
// meaningful, selected by Type. NoIndex marks the value as excluded from
// store indexes; for ListType it applies to the list as a whole and is
// expected to agree with the flags of the elements.
type Value struct {
	Type    Type
	NoIndex bool

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64

	Values []*Value
	Doc    *Document
}

// WithNoIndex sets the NoIndex flag and returns the value for chaining.
// For lists the flag is pushed down to the elements so indexing stays
// uniform across the list.
func (v *Value) WithNoIndex(noIndex bool) *Value {
	v.NoIndex = noIndex
	if v.Type == ListType {
		for _, e := range v.Values {
			e.WithNoIndex(noIndex)
		}
	}
	return v
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:    v.Type,
		NoIndex: v.NoIndex,
		String:  v.String,
		Bool:    v.Bool,
	}
	if v.Int64 != nil {
		i := *v.Int64
		res.Int64 = &i
	}
	if v.Float64 != nil {
		f := *v.Float64
		res.Float64 = &f
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, e := range v.Values {
			res.Values[i] = e.Clone()
		}
	}
	if v.Doc != nil {
		res.Doc = v.Doc.Clone()
	}
	return res
}

func FromString(s string) *Value {
	return &Value{Type: StringType, String: s}
}

func FromInt(i int64) *Value {
	return &Value{Type: NumberType, Int64: &i}
}

func FromFloat(f float64) *Value {
	return &Value{Type: NumberType, Float64: &f}
}

func FromBool(b bool) *Value {
	return &Value{Type: BoolType, Bool: b}
}

func FromList(vs []*Value) *Value {
	return &Value{Type: ListType, Values: vs}
}

func FromDocument(d *Document) *Value {
	return &Value{Type: DocType, Doc: d}
}

func Null() *Value {
	return &Value{Type: NullType}
}
