package doc

import "testing"

func TestCompareRanks(t *testing.T) {
	// Null < Bool < Number < String < List < Doc
	ordered := []*Value{
		Null(),
		FromBool(false),
		FromInt(0),
		FromString(""),
		FromList(nil),
		FromDocument(NewDocument()),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestCompareScalars(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b *Value
		want int
	}{
		{"equal strings", FromString("a"), FromString("a"), 0},
		{"string order", FromString("a"), FromString("b"), -1},
		{"equal ints", FromInt(3), FromInt(3), 0},
		{"int order", FromInt(2), FromInt(3), -1},
		{"int before float", FromInt(3), FromFloat(1), -1},
		{"float order", FromFloat(1.5), FromFloat(2.5), -1},
		{"bool order", FromBool(false), FromBool(true), -1},
		{"nil first", nil, Null(), -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare() = %d, want %d", got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Errorf("Compare() reversed = %d, want %d", got, -tc.want)
			}
		})
	}
}

func TestCompareNoIndex(t *testing.T) {
	plain := FromString("x")
	noIdx := FromString("x").WithNoIndex(true)
	if Equal(plain, noIdx) {
		t.Errorf("Equal() ignores NoIndex")
	}
	if got := Compare(plain, noIdx); got != -1 {
		t.Errorf("Compare(indexed, noindex) = %d, want -1", got)
	}
}

func TestCompareLists(t *testing.T) {
	a := FromList([]*Value{FromInt(1), FromInt(2)})
	b := FromList([]*Value{FromInt(1), FromInt(2)})
	c := FromList([]*Value{FromInt(1), FromInt(3)})
	short := FromList([]*Value{FromInt(1)})
	if !Equal(a, b) {
		t.Errorf("equal lists compare unequal")
	}
	if got := Compare(a, c); got != -1 {
		t.Errorf("Compare() = %d, want -1", got)
	}
	if got := Compare(short, a); got != -1 {
		t.Errorf("shorter prefix list: Compare() = %d, want -1", got)
	}
}

func TestCompareDocuments(t *testing.T) {
	a := FromFields(
		KeyVal{"name", FromString("x")},
		KeyVal{"n", FromInt(1)},
	)
	b := a.Clone()
	if got := CompareDocuments(a, b); got != 0 {
		t.Errorf("CompareDocuments(d, d.Clone()) = %d, want 0", got)
	}
	b.Set("n", FromInt(2))
	if got := CompareDocuments(a, b); got != -1 {
		t.Errorf("CompareDocuments() = %d, want -1", got)
	}
	// field order matters
	c := FromFields(
		KeyVal{"n", FromInt(1)},
		KeyVal{"name", FromString("x")},
	)
	if CompareDocuments(a, c) == 0 {
		t.Errorf("documents with different field order compare equal")
	}
}
