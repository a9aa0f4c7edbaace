package measure

import "fmt"

// Merge computes the outer join of a and b (the spec's operator+): the
// result's object list is objects(a) union objects(b), a first then b's new
// ids; the feature list is features(a) union features(b), a's declaration
// first. A feature present in both with a different arity fails with
// ErrFeatureArityMismatch. Missing cells are nan; cells present in both
// operands keep a's value.
func Merge(a, b *Measurement) (*Measurement, error) {
	out := New()

	for _, rec := range a.features {
		if err := out.AddFeature(rec.Name, rec.ValueNames, rec.Units); err != nil {
			return nil, err
		}
	}
	for _, rec := range b.features {
		if existing, err := out.FeatureRecord(rec.Name); err == nil {
			if existing.Width() != rec.Width() {
				return nil, fmt.Errorf("Merge(%q): %w", rec.Name, ErrFeatureArityMismatch)
			}
			continue
		}
		if err := out.AddFeature(rec.Name, rec.ValueNames, rec.Units); err != nil {
			return nil, err
		}
	}

	if err := out.AddObjectIDs(a.objectIDs); err != nil {
		return nil, err
	}
	if err := out.AddObjectIDs(b.objectIDs); err != nil {
		return nil, err
	}
	if err := out.Forge(); err != nil {
		return nil, err
	}

	fillOnlyEmpty := func(src *Measurement) {
		for _, rec := range src.features {
			for _, id := range src.objectIDs {
				values, err := src.RowFeature(id, rec.Name)
				if err != nil {
					continue
				}
				existing, _ := out.RowFeature(id, rec.Name)
				if existing != nil && !allNaN(existing) {
					continue
				}
				_ = out.SetRowFeature(id, rec.Name, values)
			}
		}
	}
	// a fills first and always wins; b only fills cells a left empty, giving
	// a's value precedence on any overlap as the spec requires.
	fillOnlyEmpty(a)
	fillOnlyEmpty(b)

	return out, nil
}

func allNaN(values []float64) bool {
	for _, v := range values {
		if v == v { // not nan
			return false
		}
	}
	return true
}
