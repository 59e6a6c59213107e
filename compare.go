package seglist

import "cmp"

// cursor reads a list front to back across segment boundaries.
type cursor[T any] struct {
	s   *segment[T]
	off int
}

func (c *cursor[T]) next() T {
	for c.off >= c.s.count {
		c.s, c.off = c.s.next, 0
	}
	v := c.s.items[c.off]
	c.off++
	return v
}

// Equal reports whether a and b have the same length and pairwise equal
// elements.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	ca, cb := cursor[T]{s: a.head}, cursor[U]{s: b.head}
	for i := 0; i < a.size; i++ {
		if !eq(ca.next(), cb.next()) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first differing pair of
// elements decides, and a strict prefix sorts first. Lengths are only a
// tie-breaker. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a custom element comparison.
func CompareFunc[T, U any](a *List[T], b *List[U], compare func(T, U) int) int {
	n := min(a.size, b.size)
	ca, cb := cursor[T]{s: a.head}, cursor[U]{s: b.head}
	for i := 0; i < n; i++ {
		if c := compare(ca.next(), cb.next()); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a sorts before b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}
