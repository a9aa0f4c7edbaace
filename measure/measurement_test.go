package measure

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) *Measurement {
	t.Helper()
	m := New()
	require.NoError(t, m.AddFeature("Size", []string{"value"}, nil))
	require.NoError(t, m.AddFeature("Feret", []string{"max", "min"}, nil))
	require.NoError(t, m.AddObjectIDs([]int{1, 2, 3}))
	require.NoError(t, m.Forge())
	require.NoError(t, m.SetRowFeature(1, "Size", []float64{4}))
	require.NoError(t, m.SetRowFeature(2, "Size", []float64{9}))
	require.NoError(t, m.SetRowFeature(3, "Size", []float64{1}))
	require.NoError(t, m.SetRowFeature(1, "Feret", []float64{4, 2}))
	require.NoError(t, m.SetRowFeature(2, "Feret", []float64{6, 3}))
	require.NoError(t, m.SetRowFeature(3, "Feret", []float64{1, 1}))
	return m
}

func TestMeasurement_ForgeFreezesStructure(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFeature("Size", []string{"value"}, nil))
	require.NoError(t, m.Forge())
	err := m.AddFeature("Mass", []string{"value"}, nil)
	require.ErrorIs(t, err, ErrAlreadyForged)
}

func TestMeasurement_DuplicateFeatureRejected(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFeature("Size", []string{"value"}, nil))
	err := m.AddFeature("Size", []string{"value"}, nil)
	require.ErrorIs(t, err, ErrDuplicateFeature)
}

func TestMeasurement_RowFeatureRoundTrip(t *testing.T) {
	m := buildSample(t)
	values, err := m.RowFeature(2, "Feret")
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 3}, values)
}

func TestMeasurement_ScalarColumn(t *testing.T) {
	m := buildSample(t)
	values, err := m.ScalarColumn("Size")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 9, 1}, values)

	_, err = m.ScalarColumn("Feret")
	require.ErrorIs(t, err, ErrNonScalarFeature)
}

func TestMerge_APrecedenceOnOverlap(t *testing.T) {
	a := New()
	require.NoError(t, a.AddFeature("Size", []string{"value"}, nil))
	require.NoError(t, a.AddObjectIDs([]int{1, 2}))
	require.NoError(t, a.Forge())
	require.NoError(t, a.SetRowFeature(1, "Size", []float64{10}))
	require.NoError(t, a.SetRowFeature(2, "Size", []float64{20}))

	b := New()
	require.NoError(t, b.AddFeature("Size", []string{"value"}, nil))
	require.NoError(t, b.AddObjectIDs([]int{2, 3}))
	require.NoError(t, b.Forge())
	require.NoError(t, b.SetRowFeature(2, "Size", []float64{999}))
	require.NoError(t, b.SetRowFeature(3, "Size", []float64{30}))

	merged, err := Merge(a, b)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 2, 3}, merged.Objects()); diff != "" {
		t.Fatalf("objects mismatch (-want +got):\n%s", diff)
	}
	v2, err := merged.ScalarColumn("Size")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, v2)
}

func TestMerge_ArityMismatchFails(t *testing.T) {
	a := New()
	require.NoError(t, a.AddFeature("Size", []string{"value"}, nil))
	b := New()
	require.NoError(t, b.AddFeature("Size", []string{"a", "b"}, nil))
	_, err := Merge(a, b)
	require.ErrorIs(t, err, ErrFeatureArityMismatch)
}

func TestCompareAndApply_FiltersRows(t *testing.T) {
	m := buildSample(t)
	lm, err := Compare(m, "Size", Gt, 3)
	require.NoError(t, err)
	filtered, err := lm.Apply(m)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, filtered.Objects())
}

func TestPercentile_LinearInterpolation(t *testing.T) {
	m := buildSample(t)
	p50, err := Percentile(m, "Size", 50)
	require.NoError(t, err)
	assert.InDelta(t, 4, p50, 1e-9)
}

func TestWriteCSV_SimpleDialect(t *testing.T) {
	m := buildSample(t)
	path := t.TempDir() + "/out.csv"
	require.NoError(t, WriteCSV(m, path, CSVOptions{Dialect: SimpleDialect, Charset: ASCIICharset}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ObjectID")
}

func TestWriteCSV_InvalidFlagRejected(t *testing.T) {
	m := buildSample(t)
	err := WriteCSV(m, t.TempDir()+"/out.csv", CSVOptions{Dialect: 99})
	require.ErrorIs(t, err, ErrInvalidFlag)
}
