// Package result holds a small success-or-failure value and the accumulating
// traversal used to validate collections without stopping at the first error.
package result

// Result is either a success value of type T or a failure value of type E.
// The zero Result is a failure carrying the zero E.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok wraps a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, value: v}
}

// Err wraps a failure value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Get returns the success value, the failure value and whether r is a success.
// Only one of the first two is meaningful.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// Sequence turns an ordered slice of results into a single result.
//
// If every element succeeded the outcome is a success with all values in input
// order. Otherwise it is a failure with every error in input order; the
// successes are dropped. Nothing short-circuits: every element is inspected.
// An empty slice is a success with an empty, non-nil slice.
func Sequence[T, E any](rs []Result[T, E]) Result[[]T, []E] {
	acc := Ok[[]T, []E](make([]T, 0, len(rs)))
	for i := len(rs) - 1; i >= 0; i-- {
		acc = combine(rs[i], acc)
	}
	if acc.ok {
		reverse(acc.value)
	} else {
		reverse(acc.err)
	}
	return acc
}

// Traverse applies fn to every element of in, in order, and sequences the
// results. fn is called for all elements even after a failure.
func Traverse[In, T, E any](in []In, fn func(In) Result[T, E]) Result[[]T, []E] {
	return TraverseIndexed(in, func(_ int, item In) Result[T, E] {
		return fn(item)
	})
}

// TraverseIndexed is Traverse with the element index passed to fn.
func TraverseIndexed[In, T, E any](in []In, fn func(int, In) Result[T, E]) Result[[]T, []E] {
	rs := make([]Result[T, E], len(in))
	for i, item := range in {
		rs[i] = fn(i, item)
	}
	return Sequence(rs)
}

// combine is the right-fold step. Accumulators are built back to front by
// appending, and Sequence reverses them once at the end.
func combine[T, E any](head Result[T, E], acc Result[[]T, []E]) Result[[]T, []E] {
	switch {
	case head.ok && acc.ok:
		return Ok[[]T, []E](append(acc.value, head.value))
	case !head.ok && acc.ok:
		return Err[[]T]([]E{head.err})
	case head.ok && !acc.ok:
		return acc
	default:
		return Err[[]T](append(acc.err, head.err))
	}
}

func reverse[S ~[]X, X any](s S) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
