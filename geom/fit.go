package geom

import (
	"math"

	"github.com/katalvlaran/rmeasure/linalg"
)

// CircleFit holds a fitted circle's centre and radius.
type CircleFit struct {
	CenterX, CenterY, Radius float64
}

// FitCircle solves, via least-squares QR, the linear system
// x^2+y^2 = 2*cx*x + 2*cy*y + (r^2-cx^2-cy^2) for the centre (cx,cy) and
// radius r that best fit the polygon's vertices.
func (p *Polygon) FitCircle() (CircleFit, error) {
	n := len(p.vertices)
	if n < 3 {
		return CircleFit{}, ErrTooFewVertices
	}
	a, err := linalg.NewDense(n, 3)
	if err != nil {
		return CircleFit{}, err
	}
	b := make([]float64, n)
	for i, v := range p.vertices {
		_ = a.Set(i, 0, 2*v.X)
		_ = a.Set(i, 1, 2*v.Y)
		_ = a.Set(i, 2, 1)
		b[i] = v.X*v.X + v.Y*v.Y
	}
	x, err := linalg.SolveLeastSquares(a, b)
	if err != nil {
		return CircleFit{}, err
	}
	cx, cy, c := x[0], x[1], x[2]
	r2 := c + cx*cx + cy*cy
	if r2 < 0 {
		return CircleFit{}, nil
	}
	return CircleFit{CenterX: cx, CenterY: cy, Radius: math.Sqrt(r2)}, nil
}

// EllipseFit holds a fitted ellipse's centre, semi-axes, and rotation angle
// (radians). The zero value represents "no ellipse" per the conic-mismatch
// fallback.
type EllipseFit struct {
	CenterX, CenterY float64
	MajorAxis        float64
	MinorAxis        float64
	Angle            float64
}

// FitEllipse solves a general conic A*x^2+B*xy+C*y^2+D*x+E*y+F=0 via
// least-squares QR (fixing F=-1 to remove the scale ambiguity), then
// recovers centre, axes, and orientation from the conic coefficients. If the
// discriminant B^2-4AC indicates a non-ellipse conic, returns the
// zero-initialised EllipseFit and ErrNotEllipse.
func (p *Polygon) FitEllipse() (EllipseFit, error) {
	n := len(p.vertices)
	if n < 5 {
		return EllipseFit{}, ErrTooFewVertices
	}
	a, err := linalg.NewDense(n, 5)
	if err != nil {
		return EllipseFit{}, err
	}
	b := make([]float64, n)
	for i, v := range p.vertices {
		_ = a.Set(i, 0, v.X*v.X)
		_ = a.Set(i, 1, v.X*v.Y)
		_ = a.Set(i, 2, v.Y*v.Y)
		_ = a.Set(i, 3, v.X)
		_ = a.Set(i, 4, v.Y)
		b[i] = 1
	}
	x, err := linalg.SolveLeastSquares(a, b)
	if err != nil {
		return EllipseFit{}, err
	}
	coefA, coefB, coefC, coefD, coefE := x[0], x[1], x[2], x[3], x[4]
	coefF := -1.0

	disc := coefB*coefB - 4*coefA*coefC
	if disc >= 0 {
		return EllipseFit{}, ErrNotEllipse
	}

	denom := disc
	cx := (2*coefC*coefD - coefB*coefE) / denom
	cy := (2*coefA*coefE - coefB*coefD) / denom

	num := 2 * (coefA*coefE*coefE + coefC*coefD*coefD + coefF*coefB*coefB - coefB*coefD*coefE - 4*coefA*coefC*coefF)
	term := math.Sqrt((coefA-coefC)*(coefA-coefC) + coefB*coefB)
	axis1 := math.Sqrt(math.Abs(num/(denom*(coefA+coefC+term))))
	axis2 := math.Sqrt(math.Abs(num/(denom*(coefA+coefC-term))))
	major, minor := math.Max(axis1, axis2), math.Min(axis1, axis2)

	var angle float64
	if coefB == 0 {
		if coefA < coefC {
			angle = 0
		} else {
			angle = math.Pi / 2
		}
	} else {
		angle = math.Atan2(coefC-coefA-term, coefB)
	}

	return EllipseFit{CenterX: cx, CenterY: cy, MajorAxis: major, MinorAxis: minor, Angle: angle}, nil
}
