package surface

import "math/bits"

// areaPerType gives the surface-area contribution per configuration type,
// already halved to account for the foreground/background averaging that
// the dual-contribution rule (see Area) implements: a face shared between
// two requested objects would otherwise be counted twice.
var areaPerType = [10]float64{
	0: 0.80,
	1: 0.65,
	2: 0.55,
	3: 0.45,
	4: 0.40,
	5: 0.30,
	6: 0.25,
	7: 0.15,
	8: 0.10,
	9: 0.00,
}

// classify maps a 6-bit same-label neighbour mask (bit order +x,-x,+y,-y,+z,-z)
// to one of 10 surface types, keyed by the neighbour count n and the number
// of axes p where both the positive and negative neighbour are present (a
// "through" pair along that axis looks more interior than two neighbours on
// different axes, for equal n).
func classify(mask uint8) int {
	n := bits.OnesCount8(mask)
	p := 0
	for axis := 0; axis < 3; axis++ {
		pos := mask&(1<<uint(2*axis)) != 0
		neg := mask&(1<<uint(2*axis+1)) != 0
		if pos && neg {
			p++
		}
	}
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 1
	case n == 2 && p == 0:
		return 2
	case n == 2 && p == 1:
		return 3
	case n == 3 && p == 0:
		return 4
	case n == 3 && p == 1:
		return 5
	case n == 4 && p == 1:
		return 6
	case n == 4 && p == 2:
		return 7
	case n == 5:
		return 8
	default:
		return 9
	}
}

// configTable is the fixed 64-entry mask-to-type classification table,
// precomputed once at init.
var configTable [64]int

func init() {
	for m := 0; m < 64; m++ {
		configTable[m] = classify(uint8(m))
	}
}
