package measure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmeasure/units"
)

// FeatureRecord describes one feature's contiguous span of value columns.
type FeatureRecord struct {
	Name       string
	ValueNames []string
	Units      []units.Unit
	StartCol   int
}

// Width returns the number of value columns this feature occupies.
func (f FeatureRecord) Width() int { return len(f.ValueNames) }

// Measurement is the dense object x value result matrix. It has two
// lifecycle phases: unforged (feature/object structure mutable, no data
// storage) and forged (structure frozen, data allocated). Forging is a
// one-shot transition.
type Measurement struct {
	objectIDs    []int
	objectIndex  map[int]int
	features     []FeatureRecord
	featureIndex map[string]int
	totalCols    int
	data         []float64
	forged       bool
}

// New returns an empty, unforged Measurement.
func New() *Measurement {
	return &Measurement{
		objectIndex:  make(map[int]int),
		featureIndex: make(map[string]int),
	}
}

// AddFeature declares a feature occupying len(valueNames) columns. units may
// be nil, in which case every value is dimensionless. Returns
// ErrAlreadyForged after Forge, ErrDuplicateFeature on a repeated name.
func (m *Measurement) AddFeature(name string, valueNames []string, unitsPerValue []units.Unit) error {
	if m.forged {
		return fmt.Errorf("AddFeature: %w", ErrAlreadyForged)
	}
	if _, exists := m.featureIndex[name]; exists {
		return fmt.Errorf("AddFeature(%q): %w", name, ErrDuplicateFeature)
	}
	if unitsPerValue == nil {
		unitsPerValue = make([]units.Unit, len(valueNames))
		for i := range unitsPerValue {
			unitsPerValue[i] = units.Dimensionless()
		}
	}
	rec := FeatureRecord{
		Name:       name,
		ValueNames: append([]string(nil), valueNames...),
		Units:      append([]units.Unit(nil), unitsPerValue...),
		StartCol:   m.totalCols,
	}
	m.featureIndex[name] = len(m.features)
	m.features = append(m.features, rec)
	m.totalCols += rec.Width()
	return nil
}

// AddObjectIDs appends ids not already present, preserving first-occurrence
// order for duplicates within ids itself.
func (m *Measurement) AddObjectIDs(ids []int) error {
	if m.forged {
		return fmt.Errorf("AddObjectIDs: %w", ErrAlreadyForged)
	}
	for _, id := range ids {
		if _, exists := m.objectIndex[id]; exists {
			continue
		}
		m.objectIndex[id] = len(m.objectIDs)
		m.objectIDs = append(m.objectIDs, id)
	}
	return nil
}

// SetObjectIDs replaces the object list wholesale.
func (m *Measurement) SetObjectIDs(ids []int) error {
	if m.forged {
		return fmt.Errorf("SetObjectIDs: %w", ErrAlreadyForged)
	}
	m.objectIDs = nil
	m.objectIndex = make(map[int]int, len(ids))
	return m.AddObjectIDs(ids)
}

// Forge allocates the dense data buffer, nan-filled, and freezes structure.
// Complexity: O(rows*cols).
func (m *Measurement) Forge() error {
	if m.forged {
		return fmt.Errorf("Forge: %w", ErrAlreadyForged)
	}
	m.data = make([]float64, len(m.objectIDs)*m.totalCols)
	for i := range m.data {
		m.data[i] = math.NaN()
	}
	m.forged = true
	return nil
}

// IsForged reports whether Forge has run.
func (m *Measurement) IsForged() bool { return m.forged }

// Objects returns the object ids in row-index order.
func (m *Measurement) Objects() []int { return append([]int(nil), m.objectIDs...) }

// NumObjects returns the number of rows.
func (m *Measurement) NumObjects() int { return len(m.objectIDs) }

// NumberOfValues returns the total number of value columns.
func (m *Measurement) NumberOfValues() int { return m.totalCols }

// FeatureNames returns declared feature names in declaration order.
func (m *Measurement) FeatureNames() []string {
	out := make([]string, len(m.features))
	for i, f := range m.features {
		out[i] = f.Name
	}
	return out
}

// FeatureExists reports whether name was ever added.
func (m *Measurement) FeatureExists(name string) bool {
	_, ok := m.featureIndex[name]
	return ok
}

// ObjectExists reports whether id was ever added.
func (m *Measurement) ObjectExists(id int) bool {
	_, ok := m.objectIndex[id]
	return ok
}

// ObjectIndex returns the row index for id.
func (m *Measurement) ObjectIndex(id int) (int, bool) {
	idx, ok := m.objectIndex[id]
	return idx, ok
}

// FeatureRecord returns the declared record for name.
func (m *Measurement) FeatureRecord(name string) (FeatureRecord, error) {
	idx, ok := m.featureIndex[name]
	if !ok {
		return FeatureRecord{}, fmt.Errorf("FeatureRecord(%q): %w", name, ErrUnknownFeature)
	}
	return m.features[idx], nil
}

// ValueIndex returns the column offset of name's first value.
func (m *Measurement) ValueIndex(name string) (int, error) {
	rec, err := m.FeatureRecord(name)
	if err != nil {
		return 0, err
	}
	return rec.StartCol, nil
}

// Data returns the writable backing buffer, row-major (object-major).
func (m *Measurement) Data() []float64 { return m.data }

// Row returns the full value span for object id, across every feature.
func (m *Measurement) Row(id int) ([]float64, error) {
	idx, ok := m.objectIndex[id]
	if !ok {
		return nil, fmt.Errorf("Row(%d): %w", id, ErrUnknownObject)
	}
	if !m.forged {
		return nil, fmt.Errorf("Row: %w", ErrNotForged)
	}
	start := idx * m.totalCols
	return m.data[start : start+m.totalCols], nil
}

// RowFeature returns one object's value span for a single feature.
func (m *Measurement) RowFeature(id int, featureName string) ([]float64, error) {
	row, err := m.Row(id)
	if err != nil {
		return nil, err
	}
	rec, err := m.FeatureRecord(featureName)
	if err != nil {
		return nil, err
	}
	return row[rec.StartCol : rec.StartCol+rec.Width()], nil
}

// SetRowFeature writes values into object id's span for featureName.
// Returns ErrArityMismatch if len(values) != the feature's declared width.
func (m *Measurement) SetRowFeature(id int, featureName string, values []float64) error {
	if !m.forged {
		return fmt.Errorf("SetRowFeature: %w", ErrNotForged)
	}
	idx, ok := m.objectIndex[id]
	if !ok {
		return fmt.Errorf("SetRowFeature(%d): %w", id, ErrUnknownObject)
	}
	rec, err := m.FeatureRecord(featureName)
	if err != nil {
		return err
	}
	if len(values) != rec.Width() {
		return fmt.Errorf("SetRowFeature(%q): %w", featureName, ErrArityMismatch)
	}
	start := idx*m.totalCols + rec.StartCol
	copy(m.data[start:start+rec.Width()], values)
	return nil
}

// Column returns, for featureName, one slice of values per object in row
// order (column-major traversal over a multi-valued feature).
func (m *Measurement) Column(featureName string) ([][]float64, error) {
	rec, err := m.FeatureRecord(featureName)
	if err != nil {
		return nil, err
	}
	if !m.forged {
		return nil, fmt.Errorf("Column: %w", ErrNotForged)
	}
	out := make([][]float64, len(m.objectIDs))
	for i := range m.objectIDs {
		start := i*m.totalCols + rec.StartCol
		out[i] = m.data[start : start+rec.Width()]
	}
	return out, nil
}

// ScalarColumn returns featureName's single value for every object, in row
// order. Returns ErrNonScalarFeature if the feature has more than one value.
func (m *Measurement) ScalarColumn(featureName string) ([]float64, error) {
	col, err := m.Column(featureName)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, v := range col {
		if len(v) != 1 {
			return nil, fmt.Errorf("ScalarColumn(%q): %w", featureName, ErrNonScalarFeature)
		}
		out[i] = v[0]
	}
	return out, nil
}

// ForEachObject visits every object id and its full row in row-index order.
func (m *Measurement) ForEachObject(fn func(id int, row []float64)) {
	for i, id := range m.objectIDs {
		start := i * m.totalCols
		fn(id, m.data[start:start+m.totalCols])
	}
}

// ForEachFeature visits every declared feature record in declaration order.
func (m *Measurement) ForEachFeature(fn func(rec FeatureRecord)) {
	for _, rec := range m.features {
		fn(rec)
	}
}
