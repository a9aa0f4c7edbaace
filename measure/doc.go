// Package measure implements the dense (object x value) result container
// the measurement planner forges and fills: the two-phase unforged/forged
// lifecycle, row/feature accessors, the outer-join operator+, comparison
// operators producing a LabelMap, CSV export, table formatting, and the
// free-function statistics (Minimum, Maximum, Percentile, ...).
package measure
