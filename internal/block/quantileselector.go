package block

import "math"

// QuantileSelector computes the linearly-interpolated q-quantile of a LenGet view.
type QuantileSelector[T Number] struct {
	quantile float64
	view     LenGet[T]
}

// NewQuantileSelector builds a selector for the given quantile (0-1) over view.
func NewQuantileSelector[T Number](quantile float64, view LenGet[T]) QuantileSelector[T] {
	return QuantileSelector[T]{quantile: quantile, view: view}
}

// Select returns the quantile value. When the target rank falls between two elements, the result
// is linearly interpolated; for an integral T the fractional weight truncates to zero, so Select
// returns the lower element exactly (spec.md §4.4).
func (s QuantileSelector[T]) Select() T {
	length := s.view.Len()
	t := float64(length-1) * s.quantile
	lo := int(math.Floor(t))
	hi := int(math.Ceil(t))

	if lo == hi {
		return s.view.Get(lo)
	}

	vi := s.view.Get(lo)
	vj := s.view.Get(hi)
	frac := T(t - float64(lo))
	return vi + frac*(vj-vi)
}
