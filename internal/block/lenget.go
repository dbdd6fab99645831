package block

// LenGet is the capability QuantileSelector consumes: a length, rank-indexed access into a sorted
// view, and a way to correct an in-progress merge cursor. Both Block (via AsLenGet) and
// BlockUnion implement it; they share no state.
type LenGet[T Number] interface {
	Len() int
	Get(i int) T
	Reverse()
}
