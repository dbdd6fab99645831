/*
Package rollingquantile computes the sliding-window, linearly-interpolated q-quantile of a finite
numeric sequence in strict time order.

Given x[0..n], a window width k and a quantile q in [0,1], Quantile produces y[0..n] where y[i] is
the q-quantile of the k most recent values ending at x[i] (fewer during warm-up, for i < k). Median
is the q=0.5 convenience.

The filter is a variant of the Juranić-Suomela constant-work-per-update median filter, generalized
to arbitrary quantiles. Its engine - a pair of fixed-capacity sorted blocks sharing a merged
traversal - lives in internal/block; this package is the public, typed entry point plus the
orchestration that splits x into k-wide blocks and slides the window across them.

The kernel is pure and single-threaded: no I/O, no environment, no suspension points. Builder
selects how NaN participates in comparisons; QuantileBatch is the one place this package crosses a
goroutine boundary, and only across independent input series.
*/
package rollingquantile
