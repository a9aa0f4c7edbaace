package accum

import "math"

// MomentAccumulator is a single-pass, mergeable accumulator of zeroth-,
// first-, and second-order multi-dimensional moments of a weighted point
// set: the pixel positions of one object (binary moments, weight 1) or its
// grey values (grey moments, weight = intensity). Backs Mu/Inertia/MajorAxes
// and their grey-weighted counterparts (§4.6).
type MomentAccumulator struct {
	dim     int
	mass    float64   // zeroth moment: sum of weights
	sum     []float64 // first raw moment per dimension: sum(w*x_i)
	sumProd []float64 // second raw moment, upper-triangle packed: sum(w*x_i*x_j)
}

// NewMomentAccumulator returns an empty accumulator for points of the given
// dimensionality (2 or 3, but any n is accepted).
func NewMomentAccumulator(dim int) *MomentAccumulator {
	return &MomentAccumulator{
		dim:     dim,
		sum:     make([]float64, dim),
		sumProd: make([]float64, dim*(dim+1)/2),
	}
}

// Push folds in one (position, weight) sample. weight is 1 for binary
// moments, the grey value for grey-weighted moments.
func (m *MomentAccumulator) Push(pos []float64, weight float64) {
	m.mass += weight
	k := 0
	for i := 0; i < m.dim; i++ {
		m.sum[i] += weight * pos[i]
		for j := i; j < m.dim; j++ {
			m.sumProd[k] += weight * pos[i] * pos[j]
			k++
		}
	}
}

// Merge folds another accumulator's raw moments into m (both must share dim).
func (m *MomentAccumulator) Merge(o *MomentAccumulator) {
	m.mass += o.mass
	for i := range m.sum {
		m.sum[i] += o.sum[i]
	}
	for i := range m.sumProd {
		m.sumProd[i] += o.sumProd[i]
	}
}

// Mass returns the zeroth moment (pixel count for binary moments, summed
// grey value for grey moments).
func (m *MomentAccumulator) Mass() float64 { return m.mass }

// Mean returns the centre of mass, per dimension. NaN-filled if mass==0.
func (m *MomentAccumulator) Mean() []float64 {
	out := make([]float64, m.dim)
	for i := range out {
		if m.mass == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = m.sum[i] / m.mass
	}
	return out
}

// MuPacked returns the upper-triangle packed second central-moment tensor
// (length dim*(dim+1)/2), suitable for linalg.SymmetricEigenDecompositionPacked.
// NaN-filled if mass==0.
func (m *MomentAccumulator) MuPacked() []float64 {
	out := make([]float64, len(m.sumProd))
	if m.mass == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	mean := m.Mean()
	k := 0
	for i := 0; i < m.dim; i++ {
		for j := i; j < m.dim; j++ {
			out[k] = m.sumProd[k]/m.mass - mean[i]*mean[j]
			k++
		}
	}
	return out
}

// Dim reports the accumulator's point dimensionality.
func (m *MomentAccumulator) Dim() int { return m.dim }
