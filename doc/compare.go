package doc

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values. The result will be 0 if
// a==b, -1 if a < b, and +1 if a > b. NoIndex participates in the order so
// that Equal distinguishes values that differ only in indexing.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	var c int
	switch a.Type {
	case NumberType:
		c = compareNumbers(a, b)
	case StringType:
		c = strings.Compare(a.String, b.String)
	case BoolType:
		c = compareBools(a.Bool, b.Bool)
	case ListType:
		c = compareLists(a, b)
	case DocType:
		c = CompareDocuments(a.Doc, b.Doc)
	case NullType:
		c = 0
	}
	if c != 0 {
		return c
	}
	return compareBools(a.NoIndex, b.NoIndex)
}

// Equal reports whether a and b are structurally identical, index flags
// included.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// CompareDocuments compares two documents field by field in order.
func CompareDocuments(a, b *Document) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	lenA := len(a.names)
	lenB := len(b.names)
	minLen := min(lenA, lenB)
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.names[i], b.names[i]); c != 0 {
			return c
		}
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < List < Doc
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ListType:
		return 4
	case DocType:
		return 5
	}
	return 100
}

func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareNumbers(a, b *Value) int {
	// Sub-rank: Int64 < Float64
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return 0
}

func numberSubRank(v *Value) int {
	if v.Int64 != nil {
		return 0
	}
	if v.Float64 != nil {
		return 1
	}
	return 2
}

func compareLists(a, b *Value) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
