package seglist

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/seglist/internal/conv"
)

// compact keeps the elements for which keep returns true, in order, in a
// single forward pass, then releases the vacated tail.
func (l *List[T]) compact(keep func(pos int, v T) bool) int {
	if l.size == 0 {
		return 0
	}

	w := 0
	ws, woff := l.head, 0
	rs, roff := l.head, 0
	for r := 0; r < l.size; r++ {
		v := rs.items[roff]
		if keep(r, v) {
			if w != r {
				ws.items[woff] = v
			}
			w++
			if woff++; woff == len(ws.items) {
				ws, woff = ws.next, 0
			}
		}
		if roff++; roff == len(rs.items) {
			rs, roff = rs.next, 0
		}
	}

	removed := l.size - w
	if removed == 0 {
		return 0
	}
	l.spans(w, removed, func(run []T) { clear(run) })
	l.size = w
	l.recount(w)
	l.dropEmptyTail()
	return removed
}

// EraseIf removes every element for which pred returns true and reports how
// many were removed. pred must not mutate the list.
func (l *List[T]) EraseIf(pred func(T) bool) int {
	return l.compact(func(_ int, v T) bool { return !pred(v) })
}

// EraseValue removes every element equal to v and reports how many were
// removed.
func EraseValue[T comparable](l *List[T], v T) int {
	return l.EraseIf(func(x T) bool { return x == v })
}

// EraseIndices removes the elements at the positions in set in one pass.
// Every position must be < Len(); otherwise nothing is removed.
func (l *List[T]) EraseIndices(set *roaring.Bitmap) (int, error) {
	if set == nil || set.IsEmpty() {
		return 0, nil
	}
	if maxPos := int(set.Maximum()); maxPos >= l.size {
		return 0, &OutOfRangeError{Index: maxPos, Size: l.size}
	}
	return l.compact(func(pos int, _ T) bool {
		p, err := conv.IntToUint32(pos)
		return err != nil || !set.Contains(p)
	}), nil
}

// IndexSet returns the positions of the elements matching pred. Positions
// beyond math.MaxUint32 are not representable and are skipped.
func (l *List[T]) IndexSet(pred func(T) bool) *roaring.Bitmap {
	set := roaring.New()
	for i, v := range l.All() {
		p, err := conv.IntToUint32(i)
		if err != nil {
			break
		}
		if pred(v) {
			set.Add(p)
		}
	}
	return set
}
