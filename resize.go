package seglist

import (
	"iter"
	"slices"
)

// Resize sets the length to count, appending zero values or dropping
// trailing elements. Only the tail and whole trailing segments change.
func (l *List[T]) Resize(count int) error {
	var zero T
	return l.ResizeWith(count, zero)
}

// ResizeWith sets the length to count, appending copies of v or dropping
// trailing elements.
func (l *List[T]) ResizeWith(count int, v T) error {
	if count < 0 {
		return invalidArgument("count must not be negative, got %d", count)
	}
	switch {
	case count < l.size:
		l.eraseRange(count, l.size)
	case count > l.size:
		return l.insertFill(l.size, count-l.size, v)
	}
	return nil
}

// ShrinkToFit releases the unused slots of the tail segment. An empty list
// releases its head as well. Later growth restores the tail to a full
// segment before anything is written.
func (l *List[T]) ShrinkToFit() error {
	if l.tail == nil {
		return nil
	}
	if l.size == 0 {
		l.Clear()
		return nil
	}
	before := l.Capacity()
	if l.tail.full() {
		return nil
	}
	if err := l.resizeTail(l.tail.count); err != nil {
		return err
	}
	l.logger.LogShrink(before, l.Capacity())
	return nil
}

// Assign replaces the contents with count copies of v.
// The new chain is built first; on failure l is unchanged.
func (l *List[T]) Assign(count int, v T) error {
	if count < 0 {
		return invalidArgument("count must not be negative, got %d", count)
	}
	return l.replace(func(tmp *List[T]) error {
		return tmp.insertFill(0, count, v)
	})
}

// AssignSlice replaces the contents with a copy of values.
func (l *List[T]) AssignSlice(values []T) error {
	return l.replace(func(tmp *List[T]) error {
		return tmp.insertValues(0, values)
	})
}

// AssignSeq replaces the contents with the values yielded by seq.
func (l *List[T]) AssignSeq(seq iter.Seq[T]) error {
	return l.AssignSlice(slices.Collect(seq))
}

func (l *List[T]) replace(fill func(tmp *List[T]) error) error {
	tmp := l.emptyLike()
	if err := fill(tmp); err != nil {
		tmp.Clear()
		return err
	}
	l.Clear()
	l.adopt(tmp)
	return nil
}
