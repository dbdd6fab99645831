package rollingquantile

import "github.com/xuestrange/rollingquantile/internal/block"

// Number is the set of element types Quantile and Median operate over.
type Number = block.Number

// Ordering is the single total order used throughout one filter invocation, chosen once per
// Builder: ArgSort, every Block cursor comparison, and the BlockUnion merge all route through the
// same Ordering, so a NaN policy can never be applied inconsistently within a run.
type Ordering[T Number] = block.Ordering[T]

// NaNError is the reference ordering: a NaN anywhere in the input makes the affected window
// Unordered, reported once as an error from Quantile/Median.
func NaNError[T Number]() Ordering[T] {
	return block.NaNError[T]()
}

// NaNHigh is a total order that sorts NaN after every other value, consistent with columnar array
// layers that sort nulls/NaN last. No comparison ever fails under this policy.
func NaNHigh[T Number]() Ordering[T] {
	return block.NaNHigh[T]()
}
