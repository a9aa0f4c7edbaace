package accum

import "math"

// PositionalExtremum tracks the value and coordinate of the maximum (or
// minimum, depending on which Push* variant is used) sample seen so far.
// Backs the MaxPos/MinPos intensity features (§4.6), which must report not
// just the extreme grey value but where it occurred.
type PositionalExtremum struct {
	value    float64
	pos      []float64
	n        int
	wantMax  bool
	hasValue bool
}

// NewMaxPositional returns an accumulator that keeps the position of the
// running maximum.
func NewMaxPositional() *PositionalExtremum { return &PositionalExtremum{wantMax: true} }

// NewMinPositional returns an accumulator that keeps the position of the
// running minimum.
func NewMinPositional() *PositionalExtremum { return &PositionalExtremum{wantMax: false} }

// Push folds in one (position, value) sample.
func (p *PositionalExtremum) Push(pos []float64, v float64) {
	p.n++
	better := !p.hasValue || (p.wantMax && v > p.value) || (!p.wantMax && v < p.value)
	if better {
		p.value = v
		p.pos = append(p.pos[:0], pos...)
		p.hasValue = true
	}
}

// Value returns the extreme value, or NaN if nothing was pushed.
func (p *PositionalExtremum) Value() float64 {
	if !p.hasValue {
		return math.NaN()
	}
	return p.value
}

// Position returns a copy of the coordinate where the extreme occurred, or
// nil if nothing was pushed.
func (p *PositionalExtremum) Position() []float64 {
	if !p.hasValue {
		return nil
	}
	out := make([]float64, len(p.pos))
	copy(out, p.pos)
	return out
}
