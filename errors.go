package rollingquantile

import "github.com/xuestrange/rollingquantile/internal/block"

// ErrInvalidArgument is the sentinel wrapped by every InvalidArgumentError. Use errors.Is to test
// for it regardless of which layer constructed the concrete error.
var ErrInvalidArgument = block.ErrInvalidArgument

// ErrUnordered is the sentinel wrapped by every UnorderedError.
var ErrUnordered = block.ErrUnordered

// InvalidArgumentError reports a precondition violation: k < 1, q outside [0, 1], or an empty
// input.
type InvalidArgumentError = block.InvalidArgumentError

// UnorderedError reports that a pairwise comparison of window values produced no definite
// ordering - the reference behavior for a NaN under the NaNError ordering.
type UnorderedError = block.UnorderedError
