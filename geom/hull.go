package geom

import "math"

// ConvexHull is the convex hull of a polygon's vertex set, stored as its own
// closed counter-clockwise vertex sequence.
type ConvexHull struct {
	Polygon
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ConvexHull computes the polygon's convex hull using Melkman's on-line
// algorithm. Polygons with at most 3 vertices are already convex. If all
// vertices are collinear, returns ErrDegenerateGeometry. A deque collapse
// below two vertices during processing indicates a self-intersecting input
// and returns ErrSelfIntersects.
func (p *Polygon) ConvexHull() (*ConvexHull, error) {
	verts := p.vertices
	if len(verts) <= 3 {
		return &ConvexHull{Polygon{vertices: append([]Point(nil), verts...)}}, nil
	}

	minAdjDist := math.Inf(1)
	for i := range verts {
		d := dist(verts[i], verts[(i+1)%len(verts)])
		if d > 0 && d < minAdjDist {
			minAdjDist = d
		}
	}
	if math.IsInf(minAdjDist, 1) {
		minAdjDist = 1
	}
	eps := 1e-9 * minAdjDist

	start := 0
	for start < len(verts)-2 && math.Abs(cross(verts[start], verts[start+1], verts[start+2])) < eps {
		start++
	}
	if start >= len(verts)-2 {
		return nil, ErrDegenerateGeometry
	}

	deque := make([]Point, 0, len(verts)+2)
	p0, p1, p2 := verts[start], verts[start+1], verts[start+2]
	if cross(p0, p1, p2) > 0 {
		deque = append(deque, p2, p0, p1, p2)
	} else {
		deque = append(deque, p2, p1, p0, p2)
	}

	for i := start + 3; i < len(verts); i++ {
		v := verts[i]
		front := deque[len(deque)-1]
		frontPrev := deque[len(deque)-2]
		back := deque[0]
		backNext := deque[1]
		if cross(frontPrev, front, v) > eps && cross(v, back, backNext) > eps {
			continue
		}
		for len(deque) >= 3 && cross(deque[len(deque)-2], deque[len(deque)-1], v) <= eps {
			deque = deque[:len(deque)-1]
			if len(deque) < 2 {
				return nil, ErrSelfIntersects
			}
		}
		deque = append(deque, v)
		for len(deque) >= 3 && cross(v, deque[0], deque[1]) <= eps {
			deque = deque[1:]
			if len(deque) < 2 {
				return nil, ErrSelfIntersects
			}
		}
		deque = append([]Point{v}, deque...)
	}

	hull := deque[1:]
	return &ConvexHull{Polygon{vertices: hull}}, nil
}

// CalliperResult holds the rotating-callipers Feret measurements of a convex
// polygon.
type CalliperResult struct {
	MaxDiameter     float64
	MinDiameter     float64
	MaxPerpendicular float64
	MaxAngle        float64
	MinAngle        float64
}

// Feret computes (maxDiameter, minDiameter, maxPerpendicular, maxAngle,
// minAngle) by exhaustive search rather than a rotating-callipers sweep:
// maxDiameter is the largest distance over all vertex pairs, minDiameter the
// smallest over all edges of the edge's largest vertex height, in O(|V|^2)
// time. For |V| <= 2, diameters degenerate to the 1-pixel small-object
// convention.
func (h *ConvexHull) Feret() CalliperResult {
	verts := h.vertices
	n := len(verts)
	if n <= 2 {
		return CalliperResult{MaxDiameter: 1, MinDiameter: 1, MaxPerpendicular: 1}
	}

	maxD, maxAngle := 0.0, 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist(verts[i], verts[j])
			if d > maxD {
				maxD = d
				maxAngle = math.Atan2(verts[j].Y-verts[i].Y, verts[j].X-verts[i].X)
			}
		}
	}

	minD, minAngle := math.Inf(1), 0.0
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		edgeLen := dist(a, b)
		if edgeLen == 0 {
			continue
		}
		ang := math.Atan2(b.Y-a.Y, b.X-a.X)
		width := 0.0
		for k := 0; k < n; k++ {
			if h := math.Abs(cross(a, b, verts[k])) / edgeLen; h > width {
				width = h
			}
		}
		if width > 0 && width < minD {
			minD = width
			minAngle = ang + math.Pi/2
		}
	}
	if math.IsInf(minD, 1) {
		minD = maxD
	}

	cosA, sinA := math.Cos(minAngle), math.Sin(minAngle)
	minProj, maxProj := math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		proj := v.X*cosA + v.Y*sinA
		minProj, maxProj = math.Min(minProj, proj), math.Max(maxProj, proj)
	}

	return CalliperResult{
		MaxDiameter:      maxD,
		MinDiameter:      minD,
		MaxPerpendicular: maxProj - minProj,
		MaxAngle:         maxAngle,
		MinAngle:         minAngle,
	}
}
