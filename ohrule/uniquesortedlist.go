package ohrule

import "cmp"

// UnionSortedSlices merges two already-sorted, duplicate-free slices into
// one sorted, duplicate-free slice. It trims the common case first - one
// slice entirely before or after the other - in O(1) before falling back
// to a linear merge, since this sits on Schedule.Insert's hot path where
// comment sets rarely interleave.
func UnionSortedSlices[T cmp.Ordered](a, b []T) []T {
	if len(a) == 0 {
		return append([]T(nil), b...)
	}
	if len(b) == 0 {
		return append([]T(nil), a...)
	}
	if a[len(a)-1] < b[0] {
		out := append([]T(nil), a...)
		return append(out, b...)
	}
	if b[len(b)-1] < a[0] {
		out := append([]T(nil), b...)
		return append(out, a...)
	}

	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
