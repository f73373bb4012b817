package cubie

// Coordinate cardinalities. Each coordinate is a bijection between a
// slice of the cubie state and the range [0, count).
const (
	TwistCount   = 2187      // 3^7 corner orientations
	FlipCount    = 2048      // 2^11 edge orientations
	UDSliceCount = 495       // C(12,4) slice-edge position sets
	Edge4Count   = 24        // 4! slice-edge permutations
	Edge8Count   = 40320     // 8! non-slice edge permutations
	CornerCount  = 40320     // 8! corner permutations
	EdgeCount    = 479001600 // 12! full edge permutations
	MoveCount    = 18        // six faces, three powers
)

// choose returns the binomial coefficient C(n, k), 0 when out of range.
func choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 0; i < k; i++ {
		c = c * (n - i) / (i + 1)
	}
	return c
}

// rankPerm returns the factorial-base (Lehmer) rank of p, processed from
// the high index down.
func rankPerm(p []int) int {
	ret := 0
	for j := len(p) - 1; j > 0; j-- {
		s := 0
		for i := 0; i < j; i++ {
			if p[i] > p[j] {
				s++
			}
		}
		ret = j * (ret + s)
	}
	return ret
}

// unrankPerm writes the permutation of elems with the given rank into
// out. elems must be sorted ascending; it is not modified.
func unrankPerm(rank int, elems []int, out []int) {
	n := len(elems)
	pool := append([]int(nil), elems...)
	coeffs := make([]int, n)
	for i := 1; i < n; i++ {
		coeffs[i] = rank % (i + 1)
		rank /= i + 1
	}
	for j := n - 1; j >= 1; j-- {
		k := j - coeffs[j]
		out[j] = pool[k]
		pool = append(pool[:k], pool[k+1:]...)
	}
	out[0] = pool[0]
}

// Twist encodes the orientations of the first seven corners in base 3;
// the eighth is forced by the orientation-sum invariant.
func (c *Cube) Twist() int {
	t := 0
	for i := 0; i < 7; i++ {
		t = 3*t + int(c.CO[i])
	}
	return t
}

// SetTwist sets the corner orientations from a twist coordinate.
func (c *Cube) SetTwist(twist int) {
	total := 0
	for i := 6; i >= 0; i-- {
		c.CO[i] = int8(twist % 3)
		total += twist % 3
		twist /= 3
	}
	c.CO[7] = int8((3 - total%3) % 3)
}

// Flip encodes the orientations of the first eleven edges in base 2; the
// twelfth is forced by the orientation-sum invariant.
func (c *Cube) Flip() int {
	f := 0
	for i := 0; i < 11; i++ {
		f = 2*f + int(c.EO[i])
	}
	return f
}

// SetFlip sets the edge orientations from a flip coordinate.
func (c *Cube) SetFlip(flip int) {
	total := 0
	for i := 10; i >= 0; i-- {
		c.EO[i] = int8(flip % 2)
		total += flip % 2
		flip /= 2
	}
	c.EO[11] = int8(total % 2)
}

// UDSlice is the combinatorial rank of the set of positions occupied by
// the four slice edges FR, FL, BL, BR, ignoring their order.
func (c *Cube) UDSlice() int {
	udslice, seen := 0, 0
	for j := 0; j < 12; j++ {
		if c.EP[j] >= FR {
			seen++
		} else if seen > 0 {
			udslice += choose(j, seen-1)
		}
	}
	return udslice
}

// SetUDSlice places the four slice edges into the positions encoded by
// the coordinate and fills the remaining slots with the other edges in
// ascending order.
func (c *Cube) SetUDSlice(udslice int) {
	sliceEdge := [4]Edge{FR, FL, BL, BR}
	otherEdge := [8]Edge{UR, UF, UL, UB, DR, DF, DL, DB}
	for i := range c.EP {
		c.EP[i] = -1
	}
	seen := 3
	for j := 11; j >= 0; j-- {
		if udslice-choose(j, seen) < 0 {
			c.EP[j] = sliceEdge[seen]
			seen--
		} else {
			udslice -= choose(j, seen)
		}
	}
	x := 0
	for j := 0; j < 12; j++ {
		if c.EP[j] == -1 {
			c.EP[j] = otherEdge[x]
			x++
		}
	}
}

// Edge4 is the Lehmer rank of the permutation of the four slice edges
// among the slice positions 8..11. It is meaningful inside G1, where the
// slice edges occupy those positions.
func (c *Cube) Edge4() int {
	p := [4]int{int(c.EP[8]), int(c.EP[9]), int(c.EP[10]), int(c.EP[11])}
	return rankPerm(p[:])
}

// SetEdge4 writes the slice-edge permutation with the given rank into
// positions 8..11.
func (c *Cube) SetEdge4(edge4 int) {
	elems := [4]int{int(FR), int(FL), int(BL), int(BR)}
	var out [4]int
	unrankPerm(edge4, elems[:], out[:])
	for i := 0; i < 4; i++ {
		c.EP[8+i] = Edge(out[i])
	}
}

// Edge8 is the Lehmer rank of the permutation of the eight non-slice
// edges over positions 0..7. Meaningful inside G1.
func (c *Cube) Edge8() int {
	var p [8]int
	for i := range p {
		p[i] = int(c.EP[i])
	}
	return rankPerm(p[:])
}

// SetEdge8 writes the non-slice edge permutation with the given rank
// into positions 0..7.
func (c *Cube) SetEdge8(edge8 int) {
	elems := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	var out [8]int
	unrankPerm(edge8, elems[:], out[:])
	for i := 0; i < 8; i++ {
		c.EP[i] = Edge(out[i])
	}
}

// CornerPerm is the Lehmer rank of the corner permutation.
func (c *Cube) CornerPerm() int {
	var p [8]int
	for i := range p {
		p[i] = int(c.CP[i])
	}
	return rankPerm(p[:])
}

// SetCornerPerm sets the corner permutation from its rank.
func (c *Cube) SetCornerPerm(corner int) {
	elems := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	var out [8]int
	unrankPerm(corner, elems[:], out[:])
	for i := 0; i < 8; i++ {
		c.CP[i] = Corner(out[i])
	}
}

// EdgePerm is the Lehmer rank of the full twelve-edge permutation. Only
// random-cube generation uses it; the search never does.
func (c *Cube) EdgePerm() int {
	var p [12]int
	for i := range p {
		p[i] = int(c.EP[i])
	}
	return rankPerm(p[:])
}

// SetEdgePerm sets the full edge permutation from its rank.
func (c *Cube) SetEdgePerm(edge int) {
	elems := [12]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	var out [12]int
	unrankPerm(edge, elems[:], out[:])
	for i := 0; i < 12; i++ {
		c.EP[i] = Edge(out[i])
	}
}
