// Package snapshot resolves "latest row" questions over append-only
// time-series fact data. The upstream ingestion job only ever inserts new
// rows, so the current state of an entity is always the row with the
// greatest timestamp, and the current state of a daily table is the row set
// sharing the greatest calculation date.
package snapshot

import "cmp"

// LatestPerEntity returns, for every entity key present in rows, the single
// row with the greatest order key. Entities without rows are simply absent
// from the result.
//
// Tie-break: a row only replaces the current candidate when its order key is
// strictly greater, so on equal keys the row appearing earliest in the input
// wins. The result is stable for a fixed input ordering.
func LatestPerEntity[R any, K comparable, O cmp.Ordered](rows []R, entityKey func(R) K, orderKey func(R) O) map[K]R {
	latest := make(map[K]R, len(rows))
	for _, row := range rows {
		k := entityKey(row)
		cur, ok := latest[k]
		if !ok || orderKey(row) > orderKey(cur) {
			latest[k] = row
		}
	}
	return latest
}

// Joined pairs a fact row with its dimension row. HasRef reports whether a
// dimension row existed; when false, Ref is the zero value.
type Joined[F, D any] struct {
	Fact   F
	Ref    D
	HasRef bool
}

// JoinReference left-joins resolved facts to dimension rows by shared key.
// Every fact appears in the output exactly once; facts without a matching
// dimension row keep a zero-value Ref rather than being dropped. Output
// ordering is unspecified, sorting is the caller's job.
func JoinReference[F, D any, K comparable](facts map[K]F, refs []D, refKey func(D) K) []Joined[F, D] {
	byKey := make(map[K]D, len(refs))
	for _, d := range refs {
		byKey[refKey(d)] = d
	}
	out := make([]Joined[F, D], 0, len(facts))
	for k, f := range facts {
		ref, ok := byKey[k]
		out = append(out, Joined[F, D]{Fact: f, Ref: ref, HasRef: ok})
	}
	return out
}

// GlobalLatestPeriod returns the greatest period value across all rows.
// The second result is false when rows is empty.
func GlobalLatestPeriod[R any, P cmp.Ordered](rows []R, periodKey func(R) P) (P, bool) {
	var max P
	if len(rows) == 0 {
		return max, false
	}
	max = periodKey(rows[0])
	for _, row := range rows[1:] {
		if p := periodKey(row); p > max {
			max = p
		}
	}
	return max, true
}

// FilterByPeriod returns the rows whose period key equals period, keeping
// input order.
func FilterByPeriod[R any, P comparable](rows []R, periodKey func(R) P, period P) []R {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		if periodKey(row) == period {
			out = append(out, row)
		}
	}
	return out
}
