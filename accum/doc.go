// Package accum implements the single-pass, mergeable running-statistics
// accumulators the line-based feature evaluators update in place as pixels
// stream by: MinMax, Welford variance, full Statistics (mean/std/skewness/
// kurtosis), circular DirectionalStatistics, and the multi-dimensional
// MomentAccumulator feeding Mu/Inertia/MajorAxes.
//
// Every accumulator exposes Push (amortized O(1)). MinMax, Variance and
// MomentAccumulator also expose Merge (combine two partial accumulators),
// which the single-pass driver never calls; Statistics,
// DirectionalStatistics and PositionalExtremum have no Merge and cannot be
// combined.
package accum
