package seglist

import (
	"iter"
	"slices"
)

// position resolves an iterator to an insertion point in [0, Len()].
// The end sentinel stands for Len().
func (l *List[T]) position(it Iterator[T]) (int, error) {
	if it.list == nil {
		return l.size, nil
	}
	if it.list != l {
		return 0, invalidIterator("iterator belongs to another list")
	}
	if it.index < 0 || it.index > l.size {
		return 0, &OutOfRangeError{Index: it.index, Size: l.size}
	}
	return it.index, nil
}

// open shifts [pos, Len()) toward the tail by n slots and grows size.
// The n slots starting at pos keep stale values for the caller to fill.
func (l *List[T]) open(pos, n int) error {
	if err := l.reserve(n); err != nil {
		return err
	}
	old := l.size
	l.size += n
	l.moveRange(pos+n, pos, old-pos)
	l.recount(old)
	return nil
}

func (l *List[T]) insertValues(pos int, values []T) error {
	if len(values) == 0 {
		return nil
	}
	if err := l.open(pos, len(values)); err != nil {
		return err
	}
	rest := values
	l.spans(pos, len(values), func(run []T) {
		rest = rest[copy(run, rest):]
	})
	return nil
}

func (l *List[T]) insertFill(pos, count int, v T) error {
	if count == 0 {
		return nil
	}
	if err := l.open(pos, count); err != nil {
		return err
	}
	l.spans(pos, count, func(run []T) {
		for i := range run {
			run[i] = v
		}
	})
	return nil
}

// PushBack appends v. Amortized O(1): a segment is allocated only when the
// tail is full.
func (l *List[T]) PushBack(v T) error {
	if t := l.tail; t != nil && !t.full() {
		t.items[t.count] = v
		t.count++
		l.size++
		return nil
	}
	if err := l.reserve(1); err != nil {
		return err
	}
	t := l.tail
	t.items[t.count] = v
	t.count++
	l.size++
	return nil
}

// PushFront inserts v before the first element.
func (l *List[T]) PushFront(v T) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

// Insert inserts v before pos and returns an iterator to it.
// Every element at or after pos moves one slot toward the tail.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	p, err := l.position(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if err := l.insertFill(p, 1, v); err != nil {
		return Iterator[T]{}, err
	}
	return l.iteratorAt(p), nil
}

// InsertN inserts count copies of v before pos and returns an iterator to
// the first inserted element (pos itself when count is 0).
func (l *List[T]) InsertN(pos Iterator[T], count int, v T) (Iterator[T], error) {
	if count < 0 {
		return Iterator[T]{}, invalidArgument("count must not be negative, got %d", count)
	}
	p, err := l.position(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if err := l.insertFill(p, count, v); err != nil {
		return Iterator[T]{}, err
	}
	return l.iteratorAt(p), nil
}

// InsertSlice inserts a copy of values before pos. values must not alias
// the list's own storage (as returned by Segments).
func (l *List[T]) InsertSlice(pos Iterator[T], values []T) (Iterator[T], error) {
	p, err := l.position(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if err := l.insertValues(p, values); err != nil {
		return Iterator[T]{}, err
	}
	return l.iteratorAt(p), nil
}

// InsertSeq inserts the values yielded by seq before pos. The sequence is
// drained before the list is touched.
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	return l.InsertSlice(pos, slices.Collect(seq))
}

// Emplace inserts a zero value before pos and lets build initialise it in
// place. build must not mutate the list.
func (l *List[T]) Emplace(pos Iterator[T], build func(*T)) (Iterator[T], error) {
	p, err := l.position(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	var zero T
	if err := l.insertFill(p, 1, zero); err != nil {
		return Iterator[T]{}, err
	}
	if build != nil {
		s, off := l.locate(p)
		build(&s.items[off])
	}
	return l.iteratorAt(p), nil
}

// EmplaceBack appends a zero value and lets build initialise it in place.
func (l *List[T]) EmplaceBack(build func(*T)) error {
	_, err := l.Emplace(l.End(), build)
	return err
}

// EmplaceFront prepends a zero value and lets build initialise it in place.
func (l *List[T]) EmplaceFront(build func(*T)) error {
	_, err := l.Emplace(l.Begin(), build)
	return err
}
