package rimage

// LineFunctor processes one scan line: coords gives the starting coordinate
// of the line (the innermost axis varies across the line), lines gives one
// []float64 slice per input/output image in the order they were registered,
// and nElems is the line length.
type LineFunctor func(coords []int, lines [][]float64, nElems int)

// Scan drives a single-threaded, coordinate-carrying raster traversal over
// the common shape of inputs and outputs, invoking fn once per scan line
// along the innermost axis. It is the engine's line-scanner driver (§5):
// deliberately sequential, since line-based features hold mutable per-object
// scratch state that a concurrent scan would race on.
//
// All inputs and outputs must share the same Sizes(). Output images are
// forged on demand if not already.
func Scan(inputs []Image, outputs []*Dense, fn LineFunctor) error {
	if len(inputs) == 0 {
		return nil
	}
	sizes := inputs[0].Sizes()
	for _, out := range outputs {
		if !out.IsForged() {
			out.Forge()
		}
	}

	nDims := len(sizes)
	lineLen := sizes[nDims-1]
	coords := make([]int, nDims)

	var walk func(axis int) error
	walk = func(axis int) error {
		if axis == nDims-1 {
			lines := make([][]float64, 0, len(inputs)+len(outputs))
			for _, img := range inputs {
				line := make([]float64, lineLen)
				c := append([]int(nil), coords...)
				for x := 0; x < lineLen; x++ {
					c[nDims-1] = x
					v, err := img.At(c)
					if err != nil {
						return err
					}
					line[x] = v[0]
				}
				lines = append(lines, line)
			}
			outLines := make([][]float64, len(outputs))
			for i := range outputs {
				outLines[i] = make([]float64, lineLen)
			}
			lines = append(lines, outLines...)

			fn(coords, lines, lineLen)

			for i, out := range outputs {
				c := append([]int(nil), coords...)
				for x := 0; x < lineLen; x++ {
					c[nDims-1] = x
					if err := out.Set(c, []float64{outLines[i][x]}); err != nil {
						return err
					}
				}
			}
			return nil
		}
		for c := 0; c < sizes[axis]; c++ {
			coords[axis] = c
			if err := walk(axis + 1); err != nil {
				return err
			}
		}
		return nil
	}

	return walk(0)
}
