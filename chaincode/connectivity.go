package chaincode

// Connectivity selects the neighbour alphabet a boundary walk uses: 4
// orthogonal directions or 8 directions including diagonals. Generalizes the
// teacher's gridgraph.Connectivity enum from undirected grid adjacency to a
// directed boundary-following walk.
type Connectivity int

const (
	// Conn4 restricts the walk to the four orthogonal directions.
	Conn4 Connectivity = iota
	// Conn8 allows all eight directions, including diagonals.
	Conn8
)

// delta8 holds the fixed (Δx,Δy) deltas for the 8-connected code alphabet
// {0..7}; even indices are axial (orthogonal), odd indices diagonal.
var delta8 = [8][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// NumCodes returns the size of the direction alphabet: 4 or 8.
func (c Connectivity) NumCodes() int {
	if c == Conn4 {
		return 4
	}
	return 8
}

// Delta returns the (Δx,Δy) lattice step for direction code d in this
// connectivity's alphabet. For Conn4, code d addresses delta8[2*d].
func (c Connectivity) Delta(d int) (int, int) {
	if c == Conn4 {
		d = 2 * d
	}
	step := delta8[((d%8)+8)%8]
	return step[0], step[1]
}

// rotate advances direction d by n steps within this connectivity's
// alphabet, wrapping modulo NumCodes().
func (c Connectivity) rotate(d, n int) int {
	m := c.NumCodes()
	return ((d+n)%m + m) % m
}

// isOdd reports whether code d is a diagonal (odd) 8-connected code. Only
// meaningful for Conn8 chains; always false for Conn4 codes viewed in their
// own 4-ary alphabet.
func (c Connectivity) isOdd(d int) bool {
	if c == Conn4 {
		return false
	}
	return d%2 == 1
}
