package geom

import "gonum.org/v1/gonum/floats"

// Point is a 2-D vertex.
type Point struct {
	X, Y float64
}

// Polygon is an ordered sequence of 2-D vertices. It is implicitly closed:
// the edge from the last vertex back to the first is not stored.
type Polygon struct {
	vertices []Point
}

// NewPolygon copies verts into a new Polygon.
func NewPolygon(verts []Point) *Polygon {
	return &Polygon{vertices: append([]Point(nil), verts...)}
}

// Vertices returns a copy of the polygon's vertex sequence.
func (p *Polygon) Vertices() []Point { return append([]Point(nil), p.vertices...) }

// Len returns the number of vertices.
func (p *Polygon) Len() int { return len(p.vertices) }

// Reverse returns a new Polygon with the vertex order reversed, flipping
// orientation.
func (p *Polygon) Reverse() *Polygon {
	n := len(p.vertices)
	out := make([]Point, n)
	for i, v := range p.vertices {
		out[n-1-i] = v
	}
	return &Polygon{vertices: out}
}

// Area returns the signed half-sum of cross products of consecutive vertex
// pairs (the shoelace formula); positive for counter-clockwise orientation.
func (p *Polygon) Area() float64 {
	n := len(p.vertices)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Centroid returns the area-weighted mean vertex (the polygon's centre of
// mass), or the arithmetic mean of vertices if the polygon is degenerate
// (zero area, e.g. a single point or collinear vertices).
func (p *Polygon) Centroid() Point {
	n := len(p.vertices)
	if n == 0 {
		return Point{}
	}
	area := p.Area()
	if area == 0 {
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i, v := range p.vertices {
			xs[i], ys[i] = v.X, v.Y
		}
		return Point{X: floats.Sum(xs) / float64(n), Y: floats.Sum(ys) / float64(n)}
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}
