package feature

import (
	"math"

	"github.com/katalvlaran/rmeasure/chaincode"
	"github.com/katalvlaran/rmeasure/units"
)

// perimeterFeature reports the chain code's approximated boundary length,
// plus the constant pi offset the spec's perimeter features add on top of
// Length().
type perimeterFeature struct{}

// NewPerimeter returns the built-in Perimeter feature.
func NewPerimeter() Feature { return perimeterFeature{} }

func (perimeterFeature) Name() string           { return "Perimeter" }
func (perimeterFeature) Kind() Kind             { return ChainCodeBased }
func (perimeterFeature) ValueNames() []string   { return []string{"value"} }
func (perimeterFeature) NeedsGrey() bool        { return false }
func (perimeterFeature) Dependencies() []string { return nil }
func (perimeterFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (perimeterFeature) Measure(obj *ObjectContext, cc *chaincode.ChainCode) []float64 {
	return []float64{cc.Length() + math.Pi}
}

// feretFeature reports the chain-code-rotation Feret diameters.
type feretFeature struct {
	angleStep float64
}

// NewFeret returns the built-in Feret feature, sweeping angles at the given
// step (radians).
func NewFeret(angleStep float64) Feature { return feretFeature{angleStep: angleStep} }

func (feretFeature) Name() string         { return "Feret" }
func (feretFeature) Kind() Kind           { return ChainCodeBased }
func (feretFeature) ValueNames() []string { return []string{"maxDiameter", "minDiameter", "maxAngle", "minAngle"} }
func (feretFeature) NeedsGrey() bool        { return false }
func (feretFeature) Dependencies() []string { return nil }
func (feretFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(4) }

func (f feretFeature) Measure(obj *ObjectContext, cc *chaincode.ChainCode) []float64 {
	r := cc.Feret(f.angleStep)
	return []float64{r.MaxDiameter, r.MinDiameter, r.MaxAngle, r.MinAngle}
}

// bendingEnergyFeature reports the boundary's bending energy.
type bendingEnergyFeature struct{}

// NewBendingEnergy returns the built-in BendingEnergy feature.
func NewBendingEnergy() Feature { return bendingEnergyFeature{} }

func (bendingEnergyFeature) Name() string           { return "BendingEnergy" }
func (bendingEnergyFeature) Kind() Kind             { return ChainCodeBased }
func (bendingEnergyFeature) ValueNames() []string   { return []string{"value"} }
func (bendingEnergyFeature) NeedsGrey() bool        { return false }
func (bendingEnergyFeature) Dependencies() []string { return nil }
func (bendingEnergyFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (bendingEnergyFeature) Measure(obj *ObjectContext, cc *chaincode.ChainCode) []float64 {
	return []float64{cc.BendingEnergy()}
}

// radiusFeature reports boundary radius statistics relative to the
// pixel-centre polygon's centroid.
type radiusFeature struct{}

// NewRadius returns the built-in Radius feature.
func NewRadius() Feature { return radiusFeature{} }

func (radiusFeature) Name() string         { return "Radius" }
func (radiusFeature) Kind() Kind           { return ChainCodeBased }
func (radiusFeature) ValueNames() []string { return []string{"min", "max", "mean", "variance"} }
func (radiusFeature) NeedsGrey() bool        { return false }
func (radiusFeature) Dependencies() []string { return nil }
func (radiusFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(4) }

func (radiusFeature) Measure(obj *ObjectContext, cc *chaincode.ChainCode) []float64 {
	r := cc.Radius()
	return []float64{r.Min, r.Max, r.Mean, r.Variance}
}

var (
	_ ChainCodeFeature = perimeterFeature{}
	_ ChainCodeFeature = feretFeature{}
	_ ChainCodeFeature = bendingEnergyFeature{}
	_ ChainCodeFeature = radiusFeature{}
)
