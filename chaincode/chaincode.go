package chaincode

import (
	"fmt"

	"github.com/katalvlaran/rmeasure/rimage"
)

// Code is one step of a chain code: a direction in the owning chain's
// connectivity alphabet, flagged when the pixel it steps into touches the
// image boundary.
type Code struct {
	Dir    int
	Border bool
}

// ChainCode is the boundary representation of one connected 2-D labelled
// object: a starting lattice vertex (x, y) plus the sequence of directional
// steps that retraces its boundary.
type ChainCode struct {
	label int
	conn  Connectivity
	start [2]int
	codes []Code
	img   rimage.Image
}

// Label reports the object label this chain code was extracted for.
func (c *ChainCode) Label() int { return c.label }

// ConnectivityUsed reports the connectivity the chain was extracted with.
func (c *ChainCode) ConnectivityUsed() Connectivity { return c.conn }

// Start returns the (x, y) lattice vertex the walk began at.
func (c *ChainCode) Start() (int, int) { return c.start[0], c.start[1] }

// Codes returns the directional step sequence, in walk order.
func (c *ChainCode) Codes() []Code { return append([]Code(nil), c.codes...) }

// Len reports the number of directional steps.
func (c *ChainCode) Len() int { return len(c.codes) }

// Image returns the source image this chain was extracted from, enabling the
// round-trip property ChainCode.Image().ChainCode(start, conn) == ChainCode.
func (c *ChainCode) Image() rimage.Image { return c.img }

func scalarAt(img rimage.Image, x, y int) (float64, bool) {
	sizes := img.Sizes()
	if x < 0 || y < 0 || y >= sizes[0] || x >= sizes[1] {
		return 0, false
	}
	v, err := img.At([]int{y, x})
	if err != nil {
		return 0, false
	}
	return v[0], true
}

func touchesEdge(x, y int, sizes []int) bool {
	return x == 0 || y == 0 || x == sizes[1]-1 || y == sizes[0]-1
}

// stepRotation returns the rotation applied to the walk direction after a
// successful step: +2 for 8-connected, +1 for 4-connected.
func stepRotation(conn Connectivity) int {
	if conn == Conn8 {
		return 2
	}
	return 1
}

// maxWalkSteps bounds the boundary walk to guard against a malformed label
// image whose "boundary" never closes; a true boundary of an W x H image
// visits each of its O(W+H) perimeter pixels at most a constant number of
// times per direction tried.
func maxWalkSteps(sizes []int) int {
	return 8 * (sizes[0] + sizes[1] + 1) * 8
}

// GetSingleChainCode walks the boundary of the object containing (start.x,
// start.y) in label, using a left-wall-following rule: starting from
// direction 0, at each step try the neighbour at the current direction; if
// it belongs to the same label, emit the code and rotate the direction
// forward (by 2 for 8-connected, 1 for 4-connected); otherwise rotate
// backward by 1 and retry. The walk stops when the start pixel is revisited
// with the same outgoing direction it started with.
func GetSingleChainCode(label rimage.Image, start [2]int, conn Connectivity) (*ChainCode, error) {
	x0, y0 := start[0], start[1]
	labelVal, ok := scalarAt(label, x0, y0)
	if !ok || labelVal == 0 {
		return nil, ErrStartNotOnBoundary
	}

	sizes := label.Sizes()
	x, y := x0, y0
	d := 0
	var codes []Code

	limit := maxWalkSteps(sizes)
	for step := 0; step < limit; step++ {
		found := false
		for tries := 0; tries < conn.NumCodes(); tries++ {
			dx, dy := conn.Delta(d)
			nx, ny := x+dx, y+dy
			val, ok := scalarAt(label, nx, ny)
			if ok && val == labelVal {
				if x == x0 && y == y0 && len(codes) > 0 && d == codes[0].Dir {
					return &ChainCode{label: int(labelVal), conn: conn, start: [2]int{x0, y0}, codes: codes, img: label}, nil
				}
				codes = append(codes, Code{Dir: d, Border: touchesEdge(nx, ny, sizes)})
				x, y = nx, ny
				d = conn.rotate(d, stepRotation(conn))
				found = true
				break
			}
			d = conn.rotate(d, -1)
		}
		if !found {
			// Isolated single-pixel object: no neighbour shares the label.
			break
		}
	}
	if len(codes) == 0 {
		return &ChainCode{label: int(labelVal), conn: conn, start: [2]int{x0, y0}, codes: nil, img: label}, nil
	}
	return nil, fmt.Errorf("chaincode: boundary walk from (%d,%d) did not close within %d steps: %w", x0, y0, limit, ErrNoObjectPixels)
}

// GetImageChainCodes produces one chain code per requested object id, in the
// order given, by scanning the image in raster order to find each object's
// upper-left boundary pixel and walking it.
func GetImageChainCodes(label rimage.Image, objectIDs []int, conn Connectivity) ([]*ChainCode, error) {
	sizes := label.Sizes()
	starts := make(map[int][2]int, len(objectIDs))
	want := make(map[int]bool, len(objectIDs))
	for _, id := range objectIDs {
		want[id] = true
	}
	for y := 0; y < sizes[0]; y++ {
		for x := 0; x < sizes[1]; x++ {
			v, ok := scalarAt(label, x, y)
			if !ok {
				continue
			}
			id := int(v)
			if !want[id] {
				continue
			}
			if _, found := starts[id]; !found {
				starts[id] = [2]int{x, y}
			}
		}
	}

	out := make([]*ChainCode, 0, len(objectIDs))
	for _, id := range objectIDs {
		start, found := starts[id]
		if !found {
			return nil, fmt.Errorf("chaincode: label %d: %w", id, ErrNoObjectPixels)
		}
		cc, err := GetSingleChainCode(label, start, conn)
		if err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, nil
}
