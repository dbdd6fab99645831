package block

import "sort"

// ArgSort computes a permutation of 0..len(values) such that values[perm[i]] is nondecreasing,
// ties broken by ascending original index (stable). scratch is reused across calls when it has
// enough capacity, so a driver recycling Blocks across successive windows does not allocate a
// fresh permutation slice per block.
func ArgSort[T Number](values []T, ord Ordering[T], scratch []int) ([]int, error) {
	n := len(values)
	if cap(scratch) < n {
		scratch = make([]int, n)
	} else {
		scratch = scratch[:n]
	}
	for i := range scratch {
		scratch[i] = i
	}
	if n == 1 {
		// The sort never compares a lone value; compare it with itself so a NaN is still reported.
		if _, err := ord.compare(values[0], values[0], 0); err != nil {
			return nil, err
		}
	}

	var sortErr error
	sort.SliceStable(scratch, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		pi, pj := scratch[i], scratch[j]
		c, err := ord.compare(values[pi], values[pj], pi)
		if err != nil {
			sortErr = err
			return false
		}
		return c < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return scratch, nil
}
