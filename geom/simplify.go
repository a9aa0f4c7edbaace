package geom

import "math"

func perpendicularDistance(p, a, b Point) float64 {
	if a == b {
		return dist(p, a)
	}
	num := math.Abs((b.Y-a.Y)*p.X - (b.X-a.X)*p.Y + b.X*a.Y - b.Y*a.X)
	den := dist(a, b)
	return num / den
}

func farthestFrom(verts []Point, from Point) int {
	best, bestDist := 0, -1.0
	for i, v := range verts {
		d := dist(v, from)
		if d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func rdp(verts []Point, tol float64) []Point {
	if len(verts) < 3 {
		return append([]Point(nil), verts...)
	}
	a, b := verts[0], verts[len(verts)-1]
	maxDist, idx := -1.0, -1
	for i := 1; i < len(verts)-1; i++ {
		d := perpendicularDistance(verts[i], a, b)
		if d > maxDist {
			maxDist, idx = d, i
		}
	}
	if maxDist <= tol {
		return []Point{a, b}
	}
	left := rdp(verts[:idx+1], tol)
	right := rdp(verts[idx:], tol)
	return append(left[:len(left)-1], right...)
}

// Simplify implements Ramer-Douglas-Peucker simplification seeded by two
// extremal vertices (the vertex farthest from vertex 0, and the vertex
// farthest from that one), so the result does not depend on the polygon's
// arbitrary starting orientation. The two resulting halves are each
// simplified independently against tolerance tol.
func (p *Polygon) Simplify(tol float64) *Polygon {
	verts := p.vertices
	n := len(verts)
	if n < 3 {
		return &Polygon{vertices: append([]Point(nil), verts...)}
	}

	i0 := farthestFrom(verts, verts[0])
	i1 := farthestFrom(verts, verts[i0])
	if i0 > i1 {
		i0, i1 = i1, i0
	}

	arcA := append([]Point(nil), verts[i0:i1+1]...)
	arcB := append(append([]Point(nil), verts[i1:]...), verts[:i0+1]...)

	simpA := rdp(arcA, tol)
	simpB := rdp(arcB, tol)

	out := append(simpA[:len(simpA)-1], simpB...)
	out = out[:len(out)-1]
	return &Polygon{vertices: out}
}

// Augment inserts vertices, edge by edge, so that no edge exceeds length d.
func (p *Polygon) Augment(d float64) *Polygon {
	verts := p.vertices
	n := len(verts)
	if n < 2 || d <= 0 {
		return &Polygon{vertices: append([]Point(nil), verts...)}
	}
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		out = append(out, a)
		segLen := dist(a, b)
		if segLen <= d {
			continue
		}
		parts := int(math.Ceil(segLen / d))
		for k := 1; k < parts; k++ {
			t := float64(k) / float64(parts)
			out = append(out, Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
		}
	}
	return &Polygon{vertices: out}
}

// Smooth applies a 1-D Gaussian of standard deviation sigma to the vertex
// coordinates treated as a periodic signal, keeping the polygon closed.
func (p *Polygon) Smooth(sigma float64) *Polygon {
	n := len(p.vertices)
	if n < 3 || sigma <= 0 {
		return &Polygon{vertices: append([]Point(nil), p.vertices...)}
	}
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	out := make([]Point, n)
	for i := 0; i < n; i++ {
		var sx, sy float64
		for k := -radius; k <= radius; k++ {
			idx := ((i+k)%n + n) % n
			w := kernel[k+radius]
			sx += w * p.vertices[idx].X
			sy += w * p.vertices[idx].Y
		}
		out[i] = Point{X: sx, Y: sy}
	}
	return &Polygon{vertices: out}
}

// Contains reports whether point lies inside (or exactly on) the polygon,
// via a horizontal half-ray cast from p towards +infinity. Each edge crosses the
// ray at most once: the bottom endpoint of an edge never counts as a
// crossing, the top always does. A point exactly on a vertex or edge
// returns true.
func (p *Polygon) Contains(pt Point) bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		if onSegment(pt, a, b) {
			return true
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xIntersect := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(p, a, b Point) bool {
	cr := cross(a, b, p)
	if math.Abs(cr) > 1e-9 {
		return false
	}
	if p.X < math.Min(a.X, b.X)-1e-9 || p.X > math.Max(a.X, b.X)+1e-9 {
		return false
	}
	if p.Y < math.Min(a.Y, b.Y)-1e-9 || p.Y > math.Max(a.Y, b.Y)+1e-9 {
		return false
	}
	return true
}
