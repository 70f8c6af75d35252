// Package numeric provides ordering and aggregation helpers for nullable
// numeric columns. Nullable storage fields arrive as *float64; these helpers
// mirror SQL semantics: missing values sort last and are ignored by
// aggregates.
package numeric

// DescNullsLast reports whether a sorts before b in a descending order that
// places missing values last.
func DescNullsLast(a, b *float64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}

// AscNullsLast reports whether a sorts before b in an ascending order that
// places missing values last.
func AscNullsLast(a, b *float64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a < *b
	}
}

// Sum adds the present values. Returns nil when no value is present, the way
// SQL SUM returns NULL over an all-NULL column.
func Sum(vals []*float64) *float64 {
	var total float64
	n := 0
	for _, v := range vals {
		if v != nil {
			total += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return &total
}

// Mean averages the present values, ignoring missing ones like SQL AVG.
// Returns nil when no value is present.
func Mean(vals []*float64) *float64 {
	var total float64
	n := 0
	for _, v := range vals {
		if v != nil {
			total += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := total / float64(n)
	return &mean
}
