package doc

import (
	"reflect"
	"testing"
)

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"name":  "x",
		"count": float64(3),
		"ratio": 1.5,
		"tags":  []any{"a", "b"},
		"gone":  nil,
	})
	if err != nil {
		t.Fatalf("FromAny() error = %v", err)
	}
	if v.Type != DocType {
		t.Fatalf("Type = %v, want Doc", v.Type)
	}
	d := v.Doc
	if got := d.Get("count"); got.Int64 == nil || *got.Int64 != 3 {
		t.Errorf("integral float64 did not become an int: %v", got)
	}
	if got := d.Get("ratio"); got.Float64 == nil || *got.Float64 != 1.5 {
		t.Errorf("ratio = %v, want 1.5", got)
	}
	if got := d.Get("gone"); got.Type != NullType {
		t.Errorf("nil became %v, want Null", got.Type)
	}
	// keys come out sorted
	names := d.Names()
	want := []string{"count", "gone", "name", "ratio", "tags"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestFromAnyRejectsUnknown(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("FromAny(struct{}{}) succeeded")
	}
}

func TestToAnyRoundTrip(t *testing.T) {
	in := map[string]any{
		"s": "x",
		"n": int64(4),
		"b": true,
		"l": []any{int64(1), "two"},
		"d": map[string]any{"inner": int64(9)},
	}
	v, err := FromAny(in)
	if err != nil {
		t.Fatalf("FromAny() error = %v", err)
	}
	out := ToAny(v)
	if !reflect.DeepEqual(out, in) {
		t.Errorf("ToAny(FromAny(m)) = %#v, want %#v", out, in)
	}
}
