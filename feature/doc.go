// Package feature implements the measurement engine's feature taxonomy: a
// polymorphic contract with five evaluation modalities sharing one composite
// feature graph, a name-keyed registry, and a catalogue of built-in features
// spanning size, shape, intensity, binary-moment, and grey-moment families,
// plus composites that reference other features by name.
//
// Every feature declares its Kind, its output value names (and therefore
// arity), whether it needs a grey image, and its dependency list (for
// composites). MeasurementTool.Measure dispatches to the right method set
// by Kind during each of its evaluator passes.
package feature
