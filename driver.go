package rollingquantile

import "github.com/xuestrange/rollingquantile/internal/block"

// runDriver implements spec.md §4.5's RollingDriver: it splits x into consecutive k-wide blocks,
// runs the warm-up phase over the first block, then slides the window one element at a time by
// moving elements from the shrinking left block into the growing right block, swapping block
// roles at each boundary.
func runDriver[T block.Number](k int, x []T, quantile float64, ord Ordering[T]) ([]T, error) {
	if len(x) == 0 {
		return nil, &InvalidArgumentError{Reason: "input sequence must be non-empty"}
	}
	if k < 1 {
		return nil, &InvalidArgumentError{Reason: "window width k must be >= 1"}
	}
	if quantile < 0 || quantile > 1 {
		return nil, &InvalidArgumentError{Reason: "quantile must be within [0, 1]"}
	}

	n := len(x)
	if k > n {
		k = n
	}

	leftBuf := &block.Buffers{}
	rightBuf := &block.Buffers{}

	blockLeft, err := block.New(x[:k], ord, leftBuf)
	if err != nil {
		return nil, err
	}
	blockLeft.Unwind()

	out := make([]T, 0, n)

	// Warm-up phase: grow block_left from empty to full, one output per element.
	for i := 0; i < blockLeft.Capacity(); i++ {
		blockLeft.Undelete(i)
		out = append(out, block.NewQuantileSelector(quantile, blockLeft.AsLenGet()).Select())
	}

	// Sliding phase: one block-wide pass per subsequent block, one output per element within it.
	for b := 1; ; b++ {
		start := b * k
		if start >= n {
			break
		}
		end := min((b+1)*k, n)
		alphaRight := x[start:end]

		// Alternate which buffer triple backs the right block: it is always the one not
		// currently owned by block_left.
		var rightBuffers *block.Buffers
		if b%2 == 0 {
			rightBuffers = leftBuf
		} else {
			rightBuffers = rightBuf
		}

		blockRight, err := block.New(alphaRight, ord, rightBuffers)
		if err != nil {
			return nil, err
		}
		blockRight.Unwind()

		// block_right.Capacity() may be shorter than k for the final, partial trailing block; the
		// loop only ever transfers that many elements out of block_left, so left.Len()+right.Len()
		// stays equal to k for every SetState in this pass, including the trailing case.
		for j := 0; j < blockRight.Capacity(); j++ {
			union := block.NewBlockUnion(blockLeft, blockRight, ord, k)
			union.SetState(j)
			out = append(out, block.NewQuantileSelector(quantile, union).Select())
		}

		blockLeft = blockRight
	}

	return out, nil
}
