package measure

import "fmt"

// CompareOp identifies a comparison operator usable against a single-scalar
// feature column.
type CompareOp int

// The comparison operators the spec exposes over a scalar feature column.
const (
	Eq CompareOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op CompareOp) apply(v, threshold float64) bool {
	switch op {
	case Eq:
		return v == threshold
	case Ne:
		return v != threshold
	case Lt:
		return v < threshold
	case Le:
		return v <= threshold
	case Gt:
		return v > threshold
	case Ge:
		return v >= threshold
	default:
		return false
	}
}

// LabelMap maps an object id to id' (0 when a predicate was false, id or a
// relabelled value when true).
type LabelMap struct {
	mapping map[int]int
	order   []int
}

// Compare evaluates op against featureName's scalar column for every object
// in m, producing a LabelMap. Returns ErrNonScalarFeature if the feature has
// more than one value.
func Compare(m *Measurement, featureName string, op CompareOp, threshold float64) (*LabelMap, error) {
	values, err := m.ScalarColumn(featureName)
	if err != nil {
		return nil, fmt.Errorf("Compare(%q): %w", featureName, err)
	}
	lm := &LabelMap{mapping: make(map[int]int, len(values))}
	for i, id := range m.objectIDs {
		out := 0
		if op.apply(values[i], threshold) {
			out = id
		}
		lm.mapping[id] = out
		lm.order = append(lm.order, id)
	}
	return lm, nil
}

// Get returns the mapped id' for id, or (0, false) if id was never mapped.
func (lm *LabelMap) Get(id int) (int, bool) {
	v, ok := lm.mapping[id]
	return v, ok
}

// Relabel replaces every nonzero mapped value with its 1-based rank among
// the surviving ids, in original insertion order.
func (lm *LabelMap) Relabel() {
	next := 1
	for _, id := range lm.order {
		if lm.mapping[id] != 0 {
			lm.mapping[id] = next
			next++
		}
	}
}

// Apply returns a new Measurement containing only the rows whose id maps to
// a nonzero value, re-indexed under that nonzero value as the new object id.
func (lm *LabelMap) Apply(m *Measurement) (*Measurement, error) {
	out := New()
	for _, rec := range m.features {
		if err := out.AddFeature(rec.Name, rec.ValueNames, rec.Units); err != nil {
			return nil, err
		}
	}
	var keptOriginal, keptNew []int
	for _, id := range m.objectIDs {
		mapped, ok := lm.mapping[id]
		if !ok || mapped == 0 {
			continue
		}
		keptOriginal = append(keptOriginal, id)
		keptNew = append(keptNew, mapped)
	}
	if err := out.SetObjectIDs(keptNew); err != nil {
		return nil, err
	}
	if err := out.Forge(); err != nil {
		return nil, err
	}
	for i, origID := range keptOriginal {
		for _, rec := range m.features {
			values, err := m.RowFeature(origID, rec.Name)
			if err != nil {
				continue
			}
			_ = out.SetRowFeature(keptNew[i], rec.Name, values)
		}
	}
	return out, nil
}
