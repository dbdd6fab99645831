package rollingquantile

// Quantile computes the sliding-window, linearly-interpolated q-quantile of x using width k, under
// the reference NaNError ordering. Preconditions: x is non-empty, k >= 1, 0 <= q <= 1; violations
// return an InvalidArgumentError. A NaN anywhere in x returns an UnorderedError.
//
// The returned slice has len(x) elements: the first min(k, len(x)) are the warm-up phase, where
// the window grows from empty to full; the rest are the sliding phase, one output per input
// element.
func Quantile[T Number](k int, x []T, q float64) ([]T, error) {
	return runDriver(k, x, q, NaNError[T]())
}

// Median is Quantile with q = 0.5.
func Median[T Number](k int, x []T) ([]T, error) {
	return Quantile(k, x, 0.5)
}

// Builder configures a reusable Filter, mirroring the fluent Builder shape used throughout the
// policy packages this module was adapted from.
type Builder[T Number] interface {
	// WithOrdering sets the total order used for every comparison in a run. The default, if this
	// is never called, is NaNError.
	WithOrdering(ord Ordering[T]) Builder[T]

	// Build returns a Filter using the builder's configuration.
	Build() Filter[T]
}

// Filter computes rolling quantiles under a fixed Ordering.
type Filter[T Number] interface {
	// Quantile computes the sliding-window q-quantile of x using width k.
	Quantile(k int, x []T, q float64) ([]T, error)

	// Median is Quantile with q = 0.5.
	Median(k int, x []T) ([]T, error)
}

type config[T Number] struct {
	ordering Ordering[T]
	hasOrder bool
}

// NewBuilder returns a Builder with the reference NaNError ordering as its default.
func NewBuilder[T Number]() Builder[T] {
	return &config[T]{}
}

func (c *config[T]) WithOrdering(ord Ordering[T]) Builder[T] {
	c.ordering = ord
	c.hasOrder = true
	return c
}

func (c *config[T]) Build() Filter[T] {
	ord := c.ordering
	if !c.hasOrder {
		ord = NaNError[T]()
	}
	return &filter[T]{ordering: ord}
}

type filter[T Number] struct {
	ordering Ordering[T]
}

func (f *filter[T]) Quantile(k int, x []T, q float64) ([]T, error) {
	return runDriver(k, x, q, f.ordering)
}

func (f *filter[T]) Median(k int, x []T) ([]T, error) {
	return f.Quantile(k, x, 0.5)
}
