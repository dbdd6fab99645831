package block

// BlockUnion presents the merged sorted view of two Blocks as a single length-(left.Len() +
// right.Len()) indexable sequence, advancing each block's own cursor in place rather than
// materializing the merge. It holds no state beyond the two borrowed Blocks.
type BlockUnion[T Number] struct {
	left  *Block[T]
	right *Block[T]
	ord   Ordering[T]
}

// NewBlockUnion builds a union of left and right. k is the window width the two blocks are
// expected to jointly cover; a mismatch is a programming error (the driver is responsible for
// keeping left.Len()+right.Len() == k as elements move between the two sides).
func NewBlockUnion[T Number](left, right *Block[T], ord Ordering[T], k int) *BlockUnion[T] {
	u := &BlockUnion[T]{left: left, right: right, ord: ord}
	if u.Len() != k {
		panic("block union: left.Len() + right.Len() != k")
	}
	return u
}

// Len returns the union's total active element count.
func (u *BlockUnion[T]) Len() int {
	return u.left.Len() + u.right.Len()
}

// SetState moves the element at position i from the left block into the right block, the atomic
// transition the driver uses to slide the window one element: left.Delete(i); right.Undelete(i).
func (u *BlockUnion[T]) SetState(i int) {
	u.left.Delete(i)
	u.right.Undelete(i)
}

// Get returns the element at the given rank in the merged sorted order, advancing whichever
// side's cursor currently holds the smaller value until the merge position reaches rank.
func (u *BlockUnion[T]) Get(rank int) T {
	if u.right.IsEmpty() {
		u.left.TraverseToIndex(rank)
		v, ok := u.left.Peek()
		if !ok {
			panic("block union: left peek at expected rank failed")
		}
		return v
	}
	if u.left.IsEmpty() {
		u.right.TraverseToIndex(rank)
		v, ok := u.right.Peek()
		if !ok {
			panic("block union: right peek at expected rank failed")
		}
		return v
	}

	// One side may have overshot its correct merge position after an intervening SetState;
	// correct before walking forward.
	u.Reverse()

	// The walk below only moves forward, from a frontier where every element behind either cursor
	// precedes both cursors in merged order. If the frontier is still out of order, restart both
	// cursors from their minimum; Reverse keeps the frontier in order, so it steps back to rank.
	lp, lpok := u.left.PeekPrevious()
	rp, rpok := u.right.PeekPrevious()
	lc, lcok := u.left.Peek()
	rc, rcok := u.right.Peek()
	if (lpok && rcok && u.ord.mustCompare(lp, rc, u.left.m) > 0) ||
		(rpok && lcok && u.ord.mustCompare(lc, rp, u.left.m) <= 0) {
		u.left.Reset()
		u.right.Reset()
	}
	for rank < u.left.CurrentIndex()+u.right.CurrentIndex() {
		u.Reverse()
	}

	for {
		s := u.left.CurrentIndex() + u.right.CurrentIndex()
		lv, lok := u.left.Peek()
		rv, rok := u.right.Peek()

		switch {
		case lok && !rok:
			if s == rank {
				return lv
			}
			u.left.Advance()
		case !lok && rok:
			if s == rank {
				return rv
			}
			u.right.Advance()
		case lok && rok:
			// On equality, left wins: it is temporally older (spec's stability rule).
			if u.ord.mustCompare(lv, rv, u.left.m) <= 0 {
				if s == rank {
					return lv
				}
				u.left.Advance()
			} else {
				if s == rank {
					return rv
				}
				u.right.Advance()
			}
		default:
			panic("block union: both sides exhausted before reaching rank")
		}
	}
}

// Reverse steps back the "leading" cursor, where leading is whichever side's predecessor value is
// greater (a mirror-image of the stability rule in Get). Used to re-anchor the union after a
// SetState can have left one side's cursor one past its correct merge position.
func (u *BlockUnion[T]) Reverse() {
	lp, lok := u.left.PeekPrevious()
	rp, rok := u.right.PeekPrevious()

	switch {
	case lok && !rok:
		u.left.Reverse()
	case !lok && rok:
		u.right.Reverse()
	case lok && rok:
		if u.ord.mustCompare(lp, rp, u.left.m) <= 0 {
			u.right.Reverse()
		} else {
			u.left.Reverse()
		}
	}
}
