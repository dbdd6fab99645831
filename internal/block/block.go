// Package block implements the block-pair data structure at the heart of the rolling quantile
// filter: a fixed-capacity sorted doubly-linked list (Block) over an immutable value slice, and
// the merged view of two such blocks (BlockUnion) that a driver advances one element at a time.
package block

// Block represents a logical sorted view (ascending by value, ties broken by original index) over
// an immutable value slice alpha[0..k], with a subset of its k positions currently "active" (i.e.
// present in the window). See spec.md §3 for the full invariant set; this type enforces P1-P4
// through delete_link/undelete_link, which never clear a position's original neighbor pointers.
type Block[T Number] struct {
	alpha []T
	ord   Ordering[T]

	pi   []int // pi[r] is the position holding the r-th smallest value
	prev []int // doubly-linked list, indices 0..k, sentinel tail == k
	next []int

	k    int
	tail int

	n            int // n_element: count of active positions
	m            int // cursor: index in 0..k+1, tail iff past-end
	currentIndex int // rank of m among active positions; == n when m == tail
}

// New constructs a Block over alpha, threading the initial list in ascending sorted order and
// placing the cursor at the middle rank. All k positions start active. buf supplies (and is
// resized to) the permutation/prev/next storage; it may be reused across successive Blocks.
func New[T Number](alpha []T, ord Ordering[T], buf *Buffers) (*Block[T], error) {
	if len(alpha) == 0 {
		return nil, &InvalidArgumentError{Reason: "block requires a non-empty value slice"}
	}
	k := len(alpha)
	buf.ensure(k)

	pi, err := ArgSort(alpha, ord, buf.Perm)
	if err != nil {
		return nil, err
	}

	b := &Block[T]{
		alpha: alpha,
		ord:   ord,
		pi:    pi,
		prev:  buf.Prev,
		next:  buf.Next,
		k:     k,
		tail:  k,
		n:     k,
	}
	b.initLinks()
	b.currentIndex = k / 2
	b.m = pi[b.currentIndex]
	return b, nil
}

func (b *Block[T]) initLinks() {
	p := b.tail
	for _, q := range b.pi {
		b.next[p] = q
		b.prev[q] = p
		p = q
	}
	b.next[p] = b.tail
	b.prev[b.tail] = p
}

func (b *Block[T]) deleteLink(i int) {
	b.next[b.prev[i]] = b.next[i]
	b.prev[b.next[i]] = b.prev[i]
}

func (b *Block[T]) undeleteLink(i int) {
	b.next[b.prev[i]] = i
	b.prev[b.next[i]] = i
}

// Capacity returns k, the block's fixed size.
func (b *Block[T]) Capacity() int { return b.k }

// Len returns the current number of active positions.
func (b *Block[T]) Len() int { return b.n }

// IsEmpty reports whether no position is currently active.
func (b *Block[T]) IsEmpty() bool { return b.n == 0 }

// AtEnd reports whether the cursor has advanced past the last active position.
func (b *Block[T]) AtEnd() bool { return b.m == b.tail }

// CurrentIndex returns the rank of the cursor among active positions.
func (b *Block[T]) CurrentIndex() int { return b.currentIndex }

// Unwind deactivates every position, in reverse index order (k-1 down to 0), leaving the block
// empty with the cursor past-end. Used to turn a freshly constructed (fully active) Block into one ready for
// time-ordered Undelete calls during warm-up or a new right block.
func (b *Block[T]) Unwind() {
	for i := b.k - 1; i >= 0; i-- {
		b.deleteLink(i)
	}
	b.m = b.tail
	b.n = 0
	b.currentIndex = 0
}

// Reset positions the cursor at the minimum active element.
func (b *Block[T]) Reset() {
	b.m = b.next[b.tail]
	b.currentIndex = 0
}

// Advance steps the cursor one position forward, clamped at past-end.
func (b *Block[T]) Advance() {
	if b.currentIndex < b.n {
		b.currentIndex++
		b.m = b.next[b.m]
	}
}

// Reverse steps the cursor one position back, clamped at the first active element.
func (b *Block[T]) Reverse() {
	if b.currentIndex > 0 {
		b.currentIndex--
		b.m = b.prev[b.m]
	}
}

// TraverseToIndex walks the cursor via prev/next until CurrentIndex() == target.
func (b *Block[T]) TraverseToIndex(target int) {
	switch diff := target - b.currentIndex; {
	case diff == 0:
	case diff == -1:
		b.currentIndex--
		b.m = b.prev[b.m]
	case diff == 1:
		b.Advance()
	case diff < 0:
		for i := 0; i > diff; i-- {
			b.m = b.prev[b.m]
		}
		b.currentIndex = target
	default:
		for i := 0; i < diff; i++ {
			b.m = b.next[b.m]
		}
		b.currentIndex = target
	}
}

// setMedian moves the cursor to rank n/2, the position undelete_set_median/delete_set_median use
// to keep a single-block median immediately readable after each mutation.
func (b *Block[T]) setMedian() {
	b.TraverseToIndex(b.n / 2)
}

// Peek returns the value at the cursor, or false if the cursor is past-end.
func (b *Block[T]) Peek() (T, bool) {
	var zero T
	if b.AtEnd() {
		return zero, false
	}
	return b.alpha[b.m], true
}

// PeekPrevious returns the value just before the cursor, or false if the cursor is at the first
// active element (its predecessor is the tail sentinel).
func (b *Block[T]) PeekPrevious() (T, bool) {
	var zero T
	p := b.prev[b.m]
	if p == b.tail {
		return zero, false
	}
	return b.alpha[p], true
}

// Delete deactivates position i, which must currently be active. The cursor is repositioned so
// that its rank among the remaining active positions stays correct; see spec.md §4.2.
func (b *Block[T]) Delete(i int) {
	if b.AtEnd() {
		b.Reverse()
	}
	cmp := b.ord.mustComparePair(b.alpha[i], i, b.alpha[b.m], b.m)

	b.deleteLink(i)
	b.n--

	switch {
	case cmp < 0:
		// 1, 2, [3], 4, 5
		//    2, [3], 4, 5
		// the deletion happened ahead of the cursor, so its rank shifts down
		b.currentIndex--
	case cmp > 0:
		// 1, 2, [3], 4, 5
		// 1, 2, [3], 4
		// rank unaffected
	default:
		// i == m: the cursor's own position was unlinked
		if b.n >= b.currentIndex {
			nextM := b.next[b.m]
			if nextM == b.tail && b.n > 0 {
				b.currentIndex--
				b.m = b.prev[b.m]
			} else {
				b.m = b.next[b.m]
			}
		} else {
			b.m = b.prev[b.m]
		}
	}
}

// DeleteSetMedian deletes i and repositions the cursor at the new median rank.
func (b *Block[T]) DeleteSetMedian(i int) {
	b.Delete(i)
	b.setMedian()
}

// Undelete reactivates position i, which must currently be inactive.
func (b *Block[T]) Undelete(i int) {
	if !b.IsEmpty() && b.AtEnd() {
		b.Reverse()
	}
	b.undeleteLink(i)

	if b.IsEmpty() {
		b.m = b.prev[b.m]
		b.n = 1
		b.currentIndex = 0
		return
	}

	cmp := b.ord.mustComparePair(b.alpha[i], i, b.alpha[b.m], b.m)
	b.n++

	switch {
	case cmp < 0:
		//    2, [3], 4, 5
		// 1, 2, [3], 4, 5
		// the addition happened ahead of the cursor, so its rank shifts up
		b.currentIndex++
	case cmp > 0:
		// rank unaffected
	default:
		// unreachable: i was inactive and m is active, so they cannot occupy the same position
	}
}

// UndeleteSetMedian undeletes i and repositions the cursor at the new median rank.
func (b *Block[T]) UndeleteSetMedian(i int) {
	b.Undelete(i)
	b.setMedian()
}

// lenGetView adapts a *Block to the LenGet view a QuantileSelector consumes when only a single
// block is in play (the warm-up phase). Its Reverse is a no-op: a lone block's cursor never
// overshoots a merge boundary, so there is nothing to correct, unlike BlockUnion.Reverse.
type lenGetView[T Number] struct {
	*Block[T]
}

func (v lenGetView[T]) Get(i int) T {
	v.TraverseToIndex(i)
	val, ok := v.Peek()
	if !ok {
		panic("block: peek at expected active cursor position failed")
	}
	return val
}

func (v lenGetView[T]) Reverse() {}

// AsLenGet exposes the block as the LenGet view QuantileSelector operates over.
func (b *Block[T]) AsLenGet() LenGet[T] {
	return lenGetView[T]{b}
}
