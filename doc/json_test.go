package doc

import (
	"encoding/json"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    *Value
	}{
		{"null", Null()},
		{"string", FromString("hello")},
		{"empty string", FromString("")},
		{"bool false", FromBool(false)},
		{"int", FromInt(-7)},
		{"float", FromFloat(2.5)},
		{"noindex string", FromString("x").WithNoIndex(true)},
		{"list", FromList([]*Value{FromInt(1), FromString("two")})},
		{"doc", FromDocument(FromFields(
			KeyVal{"name", FromString("x")},
			KeyVal{"nested", FromDocument(FromFields(KeyVal{"n", FromInt(1)}))},
		))},
		{"noindex doc", FromDocument(FromFields(
			KeyVal{"^d", FromString("Cat").WithNoIndex(true)},
		)).WithNoIndex(true)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.v)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			out := &Value{}
			if err := json.Unmarshal(data, out); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", data, err)
			}
			if !Equal(tc.v, out) {
				t.Errorf("round trip of %s changed the value:\nin:  %v\nout: %v", data, tc.v, out)
			}
		})
	}
}

func TestJSONDocumentPreservesOrder(t *testing.T) {
	d := FromFields(
		KeyVal{"z", FromInt(1)},
		KeyVal{"a", FromInt(2)},
	)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := &Document{}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	names := out.Names()
	if len(names) != 2 || names[0] != "z" || names[1] != "a" {
		t.Errorf("Names() = %v, want [z a]", names)
	}
}

func TestJSONUnmarshalRejectsMalformed(t *testing.T) {
	out := &Value{}
	if err := json.Unmarshal([]byte(`{"type":"Number"}`), out); err == nil {
		t.Errorf("number without payload unmarshalled")
	}
	if err := json.Unmarshal([]byte(`{"type":"Doc"}`), out); err == nil {
		t.Errorf("doc without payload unmarshalled")
	}
	d := &Document{}
	if err := json.Unmarshal([]byte(`{"names":["a"],"values":[]}`), d); err == nil {
		t.Errorf("mismatched names/values unmarshalled")
	}
}
