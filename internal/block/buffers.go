package block

// Buffers is the link-buffer triple (permutation scratch, prev, next) a driver recycles across
// successive Blocks: one triple per logical side (left/right), reused at each window boundary
// instead of reallocated (spec's "Block storage... is owned externally and recycled").
type Buffers struct {
	Perm []int
	Prev []int
	Next []int
}

func (b *Buffers) ensure(k int) {
	if cap(b.Perm) < k {
		b.Perm = make([]int, k)
	}
	if cap(b.Prev) < k+1 {
		b.Prev = make([]int, k+1)
	} else {
		b.Prev = b.Prev[:k+1]
	}
	if cap(b.Next) < k+1 {
		b.Next = make([]int, k+1)
	} else {
		b.Next = b.Next[:k+1]
	}
}
