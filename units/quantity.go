package units

import "fmt"

// Quantity pairs a real magnitude with its Unit expression.
type Quantity struct {
	Magnitude float64
	Units     Unit
}

// NewQuantity constructs a Quantity.
func NewQuantity(magnitude float64, u Unit) Quantity {
	return Quantity{Magnitude: magnitude, Units: u}
}

// DimensionlessQuantity wraps a plain scalar with no unit, for ratio features
// (Convexity, Roundness, AspectRatioFeret, …).
func DimensionlessQuantity(magnitude float64) Quantity {
	return Quantity{Magnitude: magnitude, Units: Dimensionless()}
}

// Mul multiplies two quantities, composing both magnitude and units.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{Magnitude: q.Magnitude * o.Magnitude, Units: q.Units.Mul(o.Units)}
}

// Scale multiplies the magnitude only, leaving units unchanged.
func (q Quantity) Scale(factor float64) Quantity {
	return Quantity{Magnitude: q.Magnitude * factor, Units: q.Units}
}

// Pow raises a quantity to an integer power (magnitude and units both).
func (q Quantity) Pow(n int) Quantity {
	m := 1.0
	for i := 0; i < n; i++ {
		m *= q.Magnitude
	}
	for i := 0; i > n; i-- {
		m /= q.Magnitude
	}
	return Quantity{Magnitude: m, Units: q.Units.Pow(n)}
}

// Add adds two quantities of identical units. Returns ErrIncompatibleUnits
// otherwise.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.Units.Equal(o.Units) {
		return Quantity{}, fmt.Errorf("Quantity.Add(%s, %s): %w", q.Units, o.Units, ErrIncompatibleUnits)
	}
	return Quantity{Magnitude: q.Magnitude + o.Magnitude, Units: q.Units}, nil
}

// String renders "<magnitude> <units>", omitting the unit suffix when
// dimensionless.
func (q Quantity) String() string {
	if q.Units.IsDimensionless() {
		return fmt.Sprintf("%g", q.Magnitude)
	}
	return fmt.Sprintf("%g %s", q.Magnitude, q.Units)
}
