package rollingquantile

import "golang.org/x/sync/errgroup"

// QuantileBatch runs Quantile over each of series independently and concurrently, matching
// spec.md §5's explicit allowance for running "multiple independent filter invocations on disjoint
// arrays in parallel" - each series gets its own pair of Block buffers, and no state crosses
// goroutines. Results are returned in the same order as series. The first error encountered is
// returned; the others are discarded, following errgroup's fail-fast convention.
func QuantileBatch[T Number](k int, series [][]T, q float64) ([][]T, error) {
	out := make([][]T, len(series))

	var g errgroup.Group
	for i, x := range series {
		i, x := i, x
		g.Go(func() error {
			y, err := Quantile(k, x, q)
			if err != nil {
				return err
			}
			out[i] = y
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// MedianBatch is QuantileBatch with q = 0.5.
func MedianBatch[T Number](k int, series [][]T) ([][]T, error) {
	return QuantileBatch(k, series, 0.5)
}
