package strongint

import "iter"

// Range returns a lazy sequence of strong integer values over the half-open
// interval [begin, end), advancing one unit per step through the increment
// path (validation hooks included). The sequence is empty when begin >= end
// and can be ranged over again from the same bounds:
//
//	for id := range strongint.Range(first, last) {
//		process(id)
//	}
func Range[Tag any, N Native, V Validator[N]](begin, end Int[Tag, N, V]) iter.Seq[Int[Tag, N, V]] {
	return func(yield func(Int[Tag, N, V]) bool) {
		for v := begin; v.Less(end); {
			if !yield(v) {
				return
			}
			v.Inc()
		}
	}
}

// UpTo returns the sequence over [0, end).
func UpTo[Tag any, N Native, V Validator[N]](end Int[Tag, N, V]) iter.Seq[Int[Tag, N, V]] {
	return Range(MakeValidated[Tag, N, V](0), end)
}
