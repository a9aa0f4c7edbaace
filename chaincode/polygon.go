package chaincode

import "github.com/katalvlaran/rmeasure/geom"

// cornerOffset holds the four pixel-edge-midpoint vertex offsets the spec
// fixes: north, west, south, east, indexed by direction bucket d/2.
var cornerOffset = [4]geom.Point{
	{X: 0, Y: -0.5},
	{X: -0.5, Y: 0},
	{X: 0, Y: 0.5},
	{X: 0.5, Y: 0},
}

// Polygon converts the chain code into a pixel-edge-midpoint polygon: one
// vertex per boundary pixel, offset from the pixel centre by the cornerOffset
// entry matching the direction bucket of the outgoing code at that pixel. A
// 4-connected chain is first converted to 8-connected. A single-pixel object
// (no codes) yields a unit-square polygon; a one-code chain is malformed.
func (c *ChainCode) Polygon() (*geom.Polygon, error) {
	cc := c
	if c.conn == Conn4 {
		cc = c.ConvertTo8Connected()
	}
	n := len(cc.codes)
	if n == 0 {
		x, y := float64(cc.start[0]), float64(cc.start[1])
		return geom.NewPolygon([]geom.Point{
			{X: x - 0.5, Y: y - 0.5},
			{X: x + 0.5, Y: y - 0.5},
			{X: x + 0.5, Y: y + 0.5},
			{X: x - 0.5, Y: y + 0.5},
		}), nil
	}
	if n == 1 {
		return nil, ErrMalformedChainCode
	}

	verts := make([]geom.Point, 0, n)
	x, y := cc.start[0], cc.start[1]
	for _, code := range cc.codes {
		bucket := code.Dir / 2
		off := cornerOffset[bucket]
		verts = append(verts, geom.Point{X: float64(x) + off.X, Y: float64(y) + off.Y})
		step := delta8[code.Dir]
		x += step[0]
		y += step[1]
	}
	return geom.NewPolygon(verts), nil
}
