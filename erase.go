package seglist

// eraseRange removes [first, last). Trailing elements move toward the head
// run by run; vacated slots are cleared and emptied segments other than the
// head are freed.
func (l *List[T]) eraseRange(first, last int) {
	n := last - first
	if n <= 0 {
		return
	}
	old := l.size
	l.moveRange(first, last, old-last)
	l.spans(old-n, n, func(run []T) { clear(run) })
	l.size = old - n
	l.recount(l.size)
	l.dropEmptyTail()
}

// PopBack removes and returns the last element. It reports false and does
// nothing on an empty list. An emptied tail segment is freed unless it is
// the head.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.size == 0 {
		return zero, false
	}
	t := l.tail
	t.count--
	v := t.items[t.count]
	t.items[t.count] = zero
	l.size--
	l.dropEmptyTail()
	return v, true
}

// PopFront removes and returns the first element, like Erase(Begin()).
func (l *List[T]) PopFront() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	v := l.head.get(0)
	l.eraseRange(0, 1)
	return v, true
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it (End if it was the last).
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	p, err := l.position(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if p == l.size {
		return Iterator[T]{}, invalidIterator("cannot erase end")
	}
	l.eraseRange(p, p+1)
	return l.iteratorAt(p), nil
}

// EraseRange removes [first, last) and returns an iterator to the element
// that followed the range.
func (l *List[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	f, err := l.position(first)
	if err != nil {
		return Iterator[T]{}, err
	}
	e, err := l.position(last)
	if err != nil {
		return Iterator[T]{}, err
	}
	if f > e {
		return Iterator[T]{}, invalidArgument("range [%d, %d) is reversed", f, e)
	}
	l.eraseRange(f, e)
	return l.iteratorAt(f), nil
}

// RemoveAt removes and returns the element at pos.
func (l *List[T]) RemoveAt(pos int) (T, error) {
	v, err := l.At(pos)
	if err != nil {
		return v, err
	}
	l.eraseRange(pos, pos+1)
	return v, nil
}

// Clear frees every segment and returns the list to its headless state.
// Calling Clear on an empty list is a no-op.
func (l *List[T]) Clear() {
	for s := l.head; s != nil; {
		next := s.next
		l.freeSegment(s)
		s = next
	}
	l.head, l.tail = nil, nil
	l.size, l.segments = 0, 0
}
