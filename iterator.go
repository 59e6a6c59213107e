package seglist

import "cmp"

// Iterator is a random-access cursor over a List, held as (list, index).
//
// The element is resolved through the list on every dereference and never
// cached. Any structural mutation of the list (insert, erase, resize, clear)
// invalidates every outstanding iterator; using one afterwards is a bug in
// the caller.
//
// The zero value is the canonical end sentinel: it carries no list, and all
// end iterators compare equal to it with ==.
type Iterator[T any] struct {
	list  *List[T]
	index int
}

func (l *List[T]) iteratorAt(pos int) Iterator[T] {
	if pos >= l.size {
		return Iterator[T]{}
	}
	return Iterator[T]{list: l, index: pos}
}

// Begin returns an iterator to the first element, or End if the list is empty.
func (l *List[T]) Begin() Iterator[T] { return l.iteratorAt(0) }

// End returns the end sentinel.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// Last returns an iterator to the last element, or End if the list is empty.
// The end sentinel cannot be decremented, so this is the way to start a
// backward walk.
func (l *List[T]) Last() Iterator[T] { return l.iteratorAt(l.size - 1) }

// IteratorAt returns an iterator to pos; pos == Len() yields End.
func (l *List[T]) IteratorAt(pos int) (Iterator[T], error) {
	if pos < 0 || pos > l.size {
		return Iterator[T]{}, &OutOfRangeError{Index: pos, Size: l.size}
	}
	return l.iteratorAt(pos), nil
}

// CBegin returns a read-only iterator to the first element.
func (l *List[T]) CBegin() ConstIterator[T] { return l.Begin().Const() }

// CEnd returns the read-only end sentinel.
func (l *List[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{} }

// IsEnd reports whether it is the end sentinel.
func (it Iterator[T]) IsEnd() bool { return it.list == nil }

// Index returns the absolute position. The end sentinel reports 0.
func (it Iterator[T]) Index() int { return it.index }

// Value dereferences the iterator.
func (it Iterator[T]) Value() (T, error) {
	if it.list == nil {
		var zero T
		return zero, invalidIterator("dereference of end")
	}
	return it.list.At(it.index)
}

// Set assigns through the iterator.
func (it Iterator[T]) Set(v T) error {
	if it.list == nil {
		return invalidIterator("assignment through end")
	}
	return it.list.Set(it.index, v)
}

// At returns the element n positions away, like it[n].
func (it Iterator[T]) At(n int) (T, error) {
	if it.list == nil {
		var zero T
		return zero, invalidIterator("subscript of end")
	}
	return it.list.At(it.index + n)
}

// Next advances by one. Stepping off the last element yields the end
// sentinel; advancing the sentinel fails and leaves it unchanged.
func (it *Iterator[T]) Next() error {
	if it.list == nil {
		return invalidIterator("increment past end")
	}
	if it.index+1 >= it.list.size {
		*it = Iterator[T]{}
		return nil
	}
	it.index++
	return nil
}

// Prev moves back by one. Decrementing the first element or the end
// sentinel fails and leaves the iterator unchanged.
func (it *Iterator[T]) Prev() error {
	if it.list == nil {
		return invalidIterator("decrement of end")
	}
	if it.index == 0 {
		return invalidIterator("decrement before begin")
	}
	it.index--
	return nil
}

// Add returns the iterator n positions away (it + n). The result may be End;
// landing before the first element or beyond End fails.
func (it Iterator[T]) Add(n int) (Iterator[T], error) {
	if n == 0 {
		return it, nil
	}
	if it.list == nil {
		return it, invalidIterator("arithmetic on end")
	}
	pos := it.index + n
	if pos < 0 {
		return it, invalidIterator("position before begin")
	}
	if pos > it.list.size {
		return it, invalidIterator("position past end")
	}
	return it.list.iteratorAt(pos), nil
}

// Sub returns it - n.
func (it Iterator[T]) Sub(n int) (Iterator[T], error) { return it.Add(-n) }

// Advance moves the iterator by n in place (it += n). On failure it is unchanged.
func (it *Iterator[T]) Advance(n int) error {
	next, err := it.Add(n)
	if err != nil {
		return err
	}
	*it = next
	return nil
}

// Distance returns it - from. The end sentinel counts as Len() of the list
// the other iterator belongs to.
func (it Iterator[T]) Distance(from Iterator[T]) (int, error) {
	l := it.list
	if l == nil {
		l = from.list
	}
	if l == nil {
		return 0, nil
	}
	if it.list != nil && from.list != nil && it.list != from.list {
		return 0, invalidIterator("iterators belong to different lists")
	}
	return it.pos(l) - from.pos(l), nil
}

func (it Iterator[T]) pos(l *List[T]) int {
	if it.list == nil {
		return l.size
	}
	return it.index
}

// Compare orders iterators by position; the end sentinel follows every
// dereferenceable position.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	switch {
	case it.list == nil && other.list == nil:
		return 0
	case it.list == nil:
		return 1
	case other.list == nil:
		return -1
	}
	return cmp.Compare(it.index, other.index)
}

// Less reports it < other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.Compare(other) < 0 }

// Equal reports whether both iterators denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it == other }

// Const returns the read-only view of it.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// ToMutable converts back to an Iterator. The conversion is unchecked: the
// caller must hold exclusive access to the list by other means.
func (c ConstIterator[T]) ToMutable() Iterator[T] { return c.it }

// IsEnd reports whether c is the end sentinel.
func (c ConstIterator[T]) IsEnd() bool { return c.it.IsEnd() }

// Index returns the absolute position. The end sentinel reports 0.
func (c ConstIterator[T]) Index() int { return c.it.index }

// Value dereferences the iterator.
func (c ConstIterator[T]) Value() (T, error) { return c.it.Value() }

// At returns the element n positions away.
func (c ConstIterator[T]) At(n int) (T, error) { return c.it.At(n) }

// Next advances by one; see Iterator.Next.
func (c *ConstIterator[T]) Next() error { return c.it.Next() }

// Prev moves back by one; see Iterator.Prev.
func (c *ConstIterator[T]) Prev() error { return c.it.Prev() }

// Add returns c + n.
func (c ConstIterator[T]) Add(n int) (ConstIterator[T], error) {
	it, err := c.it.Add(n)
	return ConstIterator[T]{it: it}, err
}

// Sub returns c - n.
func (c ConstIterator[T]) Sub(n int) (ConstIterator[T], error) { return c.Add(-n) }

// Advance moves c by n in place.
func (c *ConstIterator[T]) Advance(n int) error { return c.it.Advance(n) }

// Distance returns c - from.
func (c ConstIterator[T]) Distance(from ConstIterator[T]) (int, error) {
	return c.it.Distance(from.it)
}

// Compare orders iterators by position.
func (c ConstIterator[T]) Compare(other ConstIterator[T]) int { return c.it.Compare(other.it) }

// Less reports c < other.
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool { return c.it.Less(other.it) }

// Equal reports whether both iterators denote the same position.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c == other }
