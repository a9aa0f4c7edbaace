package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() *Polygon {
	return NewPolygon([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
}

func TestPolygon_AreaAndCentroid(t *testing.T) {
	p := unitSquare()
	assert.InDelta(t, 1.0, p.Area(), 1e-9)
	c := p.Centroid()
	assert.InDelta(t, 0.5, c.X, 1e-9)
	assert.InDelta(t, 0.5, c.Y, 1e-9)
}

func TestPolygon_AreaInvariantUnderReversal(t *testing.T) {
	p := unitSquare()
	rev := p.Reverse()
	assert.InDelta(t, math.Abs(p.Area()), math.Abs(rev.Area()), 1e-9)
}

func TestConvexHull_SmallPolygonIsItself(t *testing.T) {
	p := NewPolygon([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	hull, err := p.ConvexHull()
	require.NoError(t, err)
	assert.Equal(t, 3, hull.Len())
}

func TestConvexHull_CollinearIsDegenerate(t *testing.T) {
	p := NewPolygon([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
	_, err := p.ConvexHull()
	require.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestConvexHull_SquareWithInteriorPoint(t *testing.T) {
	p := NewPolygon([]Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 2},
	})
	hull, err := p.ConvexHull()
	require.NoError(t, err)
	assert.True(t, hull.Area() >= p.Area())
}

func TestConvexHull_Feret_Square(t *testing.T) {
	p := unitSquare()
	hull, err := p.ConvexHull()
	require.NoError(t, err)
	f := hull.Feret()
	assert.InDelta(t, math.Sqrt2, f.MaxDiameter, 1e-9)
	assert.InDelta(t, 1.0, f.MinDiameter, 1e-9)
}

func TestSimplify_CollapsesNearCollinearPoints(t *testing.T) {
	p := NewPolygon([]Point{
		{X: 0, Y: 0}, {X: 1, Y: 0.001}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	})
	simplified := p.Simplify(0.01)
	assert.True(t, simplified.Len() <= p.Len())
}

func TestAugment_NoEdgeExceedsD(t *testing.T) {
	p := NewPolygon([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	aug := p.Augment(1.0)
	verts := aug.Vertices()
	n := len(verts)
	for i := 0; i < n; i++ {
		d := dist(verts[i], verts[(i+1)%n])
		assert.True(t, d <= 1.0+1e-9)
	}
}

func TestSmooth_KeepsPolygonClosedAndNear(t *testing.T) {
	p := unitSquare()
	smoothed := p.Smooth(0.5)
	assert.Equal(t, p.Len(), smoothed.Len())
}

func TestContains_CentroidTrueOutsideBoxFalse(t *testing.T) {
	p := unitSquare()
	assert.True(t, p.Contains(p.Centroid()))
	assert.False(t, p.Contains(Point{X: 5, Y: 5}))
}

func TestFitCircle_RecoversKnownCircle(t *testing.T) {
	pts := make([]Point, 0, 16)
	for i := 0; i < 16; i++ {
		a := 2 * math.Pi * float64(i) / 16
		pts = append(pts, Point{X: 3 + 2*math.Cos(a), Y: -1 + 2*math.Sin(a)})
	}
	p := NewPolygon(pts)
	fit, err := p.FitCircle()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, fit.CenterX, 1e-6)
	assert.InDelta(t, -1.0, fit.CenterY, 1e-6)
	assert.InDelta(t, 2.0, fit.Radius, 1e-6)
}

func TestFitEllipse_RejectsNonEllipseConic(t *testing.T) {
	p := NewPolygon([]Point{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}, {X: -1, Y: 1}, {X: -2, Y: 4}, {X: 3, Y: 9},
	})
	_, err := p.FitEllipse()
	require.Error(t, err)
}
