package sorted

import "cmp"

// OrderedCmp returns the natural ordering policy of T.
func OrderedCmp[T cmp.Ordered]() Cmp[T] {
	return cmp.Compare[T]
}

// Reverse returns c with its order flipped.
func Reverse[T any](c Cmp[T]) Cmp[T] {
	return func(a, b T) int { return c(b, a) }
}
