package doc

import "iter"

// Document is an ordered set of named values. Field order is insertion
// order; Set on an existing name replaces the value in place.
type Document struct {
	names  []string
	values []*Value
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Set(name string, v *Value) {
	for i, n := range d.names {
		if n == name {
			d.values[i] = v
			return
		}
	}
	d.names = append(d.names, name)
	d.values = append(d.values, v)
}

func (d *Document) Get(name string) *Value {
	for i, n := range d.names {
		if n == name {
			return d.values[i]
		}
	}
	return nil
}

func (d *Document) Delete(name string) {
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			d.values = append(d.values[:i], d.values[i+1:]...)
			return
		}
	}
}

func (d *Document) Len() int {
	return len(d.names)
}

// Names returns the field names in order. The slice is a copy.
func (d *Document) Names() []string {
	res := make([]string, len(d.names))
	copy(res, d.names)
	return res
}

// All iterates the fields in order.
func (d *Document) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for i, n := range d.names {
			if !yield(n, d.values[i]) {
				return
			}
		}
	}
}

func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	res := &Document{
		names:  make([]string, len(d.names)),
		values: make([]*Value, len(d.values)),
	}
	copy(res.names, d.names)
	for i, v := range d.values {
		res.values[i] = v.Clone()
	}
	return res
}

// FromFields builds a document from name/value pairs in the given order.
func FromFields(kvs ...KeyVal) *Document {
	res := NewDocument()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Value
}
