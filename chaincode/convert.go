package chaincode

// ConvertTo8Connected rewrites a 4-connected chain code into the equivalent
// 8-connected sequence: scanning left to right (with wraparound for the
// closing pair), a 4-connected pair (k, (k+1) mod 4) collapses into a single
// diagonal code 2k+1; any code that cannot be paired maps to the axial code
// 2k. Already-8-connected chains are returned unchanged.
func (c *ChainCode) ConvertTo8Connected() *ChainCode {
	if c.conn == Conn8 {
		return &ChainCode{label: c.label, conn: c.conn, start: c.start, codes: c.Codes(), img: c.img}
	}
	n := len(c.codes)
	out := make([]Code, 0, n)
	if n == 0 {
		return &ChainCode{label: c.label, conn: Conn8, start: c.start, codes: out, img: c.img}
	}

	used := make([]bool, n)
	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		k := c.codes[i].Dir
		j := (i + 1) % n
		if j != i && !used[j] && c.codes[j].Dir == (k+1)%4 {
			border := c.codes[i].Border || c.codes[j].Border
			out = append(out, Code{Dir: 2*k + 1, Border: border})
			used[i] = true
			used[j] = true
			continue
		}
		out = append(out, Code{Dir: 2 * k, Border: c.codes[i].Border})
		used[i] = true
	}
	return &ChainCode{label: c.label, conn: Conn8, start: c.start, codes: out, img: c.img}
}
