package seglist

// segmentAt walks to segment si from the nearer end of the chain.
func (l *List[T]) segmentAt(si int) *segment[T] {
	if si < l.segments/2 {
		s := l.head
		for ; si > 0; si-- {
			s = s.next
		}
		return s
	}
	s := l.tail
	for i := l.segments - 1; i > si; i-- {
		s = s.prev
	}
	return s
}

// locate resolves an absolute position to its segment and offset.
func (l *List[T]) locate(pos int) (*segment[T], int) {
	return l.segmentAt(pos / l.capacity), pos % l.capacity
}

func (l *List[T]) newSegment() (*segment[T], error) {
	s, err := allocateSegment(l.alloc, l.capacity)
	if err != nil {
		l.observer.OnAllocationFailed(l.capacity, err)
		return nil, err
	}
	l.observer.OnSegmentAllocated(l.capacity)
	return s, nil
}

func (l *List[T]) freeSegment(s *segment[T]) {
	slots := len(s.items)
	s.release(l.alloc)
	l.observer.OnSegmentReleased(slots)
}

// allocateChain obtains n linked segments that are not yet part of the list.
// Either all n are returned or none are kept.
func (l *List[T]) allocateChain(n int) (first, last *segment[T], err error) {
	for i := 0; i < n; i++ {
		s, err := l.newSegment()
		if err != nil {
			l.freeChain(first)
			return nil, nil, err
		}
		if first == nil {
			first = s
		} else {
			last.next = s
			s.prev = last
		}
		last = s
	}
	return first, last, nil
}

// freeChain releases a detached chain starting at s.
func (l *List[T]) freeChain(s *segment[T]) {
	for s != nil {
		next := s.next
		l.freeSegment(s)
		s = next
	}
}

// linkTail appends a detached chain of n segments.
func (l *List[T]) linkTail(first, last *segment[T], n int) {
	if first == nil {
		return
	}
	if l.tail == nil {
		l.head = first
	} else {
		l.tail.next = first
		first.prev = l.tail
	}
	l.tail = last
	l.segments += n
	l.logger.LogSegmentLinked(l.segments, n*l.capacity)
}

// resizeTail changes the tail's storage to slots, reporting to the observer.
func (l *List[T]) resizeTail(slots int) error {
	before := len(l.tail.items)
	var zero T
	if err := l.tail.resize(l.alloc, slots, zero); err != nil {
		l.observer.OnAllocationFailed(slots, err)
		return err
	}
	l.observer.OnSegmentReleased(before)
	l.observer.OnSegmentAllocated(slots)
	return nil
}

// reserve makes room for extra more elements at the end of the chain.
// All storage is obtained before any link changes, so a failure leaves the
// list exactly as it was.
func (l *List[T]) reserve(extra int) error {
	if extra <= 0 {
		return nil
	}
	need := ceilDiv(l.size+extra, l.capacity) - l.segments
	restore := l.tail != nil && len(l.tail.items) < l.capacity

	var first, last *segment[T]
	if need > 0 {
		var err error
		if first, last, err = l.allocateChain(need); err != nil {
			return err
		}
	}
	if restore {
		if err := l.resizeTail(l.capacity); err != nil {
			l.freeChain(first)
			return err
		}
	}
	l.linkTail(first, last, need)
	return nil
}

// recount derives segment counts from size for every segment at or after
// the one holding from. Earlier segments are full and unaffected.
func (l *List[T]) recount(from int) {
	si := from / l.capacity
	if si >= l.segments {
		return
	}
	for s := l.segmentAt(si); s != nil; s = s.next {
		s.count = min(max(l.size-si*l.capacity, 0), len(s.items))
		si++
	}
}

// dropEmptyTail unlinks and frees trailing empty segments. The head is kept.
func (l *List[T]) dropEmptyTail() {
	for l.tail != l.head && l.tail.count == 0 {
		s := l.tail
		l.tail = s.prev
		l.tail.next = nil
		l.segments--
		l.logger.LogSegmentUnlinked(l.segments, len(s.items))
		l.freeSegment(s)
	}
}

// moveRange copies n elements from src to dst (absolute positions) one
// contiguous run at a time. Overlapping ranges are handled.
func (l *List[T]) moveRange(dst, src, n int) {
	if n <= 0 || dst == src {
		return
	}

	if dst < src {
		ds, doff := l.locate(dst)
		ss, soff := l.locate(src)
		for n > 0 {
			c := min(n, len(ds.items)-doff, len(ss.items)-soff)
			copy(ds.items[doff:doff+c], ss.items[soff:soff+c])
			n -= c
			doff += c
			soff += c
			if doff == len(ds.items) {
				ds, doff = ds.next, 0
			}
			if soff == len(ss.items) {
				ss, soff = ss.next, 0
			}
		}
		return
	}

	// Backward, so the source run is read before it is overwritten.
	ds, doff := l.locate(dst + n - 1)
	ss, soff := l.locate(src + n - 1)
	doff++
	soff++
	for n > 0 {
		c := min(n, doff, soff)
		copy(ds.items[doff-c:doff], ss.items[soff-c:soff])
		n -= c
		doff -= c
		soff -= c
		if n == 0 {
			break
		}
		if doff == 0 {
			ds = ds.prev
			doff = len(ds.items)
		}
		if soff == 0 {
			ss = ss.prev
			soff = len(ss.items)
		}
	}
}

// spans calls fn with each contiguous run of storage covering [pos, pos+n).
func (l *List[T]) spans(pos, n int, fn func(run []T)) {
	if n <= 0 {
		return
	}
	s, off := l.locate(pos)
	for n > 0 {
		c := min(n, len(s.items)-off)
		fn(s.items[off : off+c])
		n -= c
		s, off = s.next, 0
	}
}
