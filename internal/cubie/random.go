package cubie

import "math/rand"

// Random returns a uniformly random legal cube state drawn from rng.
// Orientations are picked directly; permutations are rejection-sampled
// until edge parity matches corner parity, which keeps the 1/12 of the
// raw coordinate space that is actually reachable.
func Random(rng *rand.Rand) Cube {
	c := Solved()
	c.SetFlip(rng.Intn(FlipCount))
	c.SetTwist(rng.Intn(TwistCount))
	for {
		c.SetCornerPerm(rng.Intn(CornerCount))
		c.SetEdgePerm(rng.Intn(EdgeCount))
		if c.EdgeParity() == c.CornerParity() {
			return c
		}
	}
}
