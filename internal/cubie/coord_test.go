package cubie

import (
	"math/rand"
	"testing"
)

func TestTwistRoundTrip(t *testing.T) {
	for v := 0; v < TwistCount; v++ {
		c := Solved()
		c.SetTwist(v)
		if got := c.Twist(); got != v {
			t.Fatalf("Twist round-trip failed: set %d, got %d", v, got)
		}
		sum := 0
		for _, o := range c.CO {
			sum += int(o)
		}
		if sum%3 != 0 {
			t.Fatalf("SetTwist(%d) should keep the orientation sum valid", v)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for v := 0; v < FlipCount; v++ {
		c := Solved()
		c.SetFlip(v)
		if got := c.Flip(); got != v {
			t.Fatalf("Flip round-trip failed: set %d, got %d", v, got)
		}
		sum := 0
		for _, o := range c.EO {
			sum += int(o)
		}
		if sum%2 != 0 {
			t.Fatalf("SetFlip(%d) should keep the orientation sum valid", v)
		}
	}
}

func TestUDSliceRoundTrip(t *testing.T) {
	for v := 0; v < UDSliceCount; v++ {
		c := Solved()
		c.SetUDSlice(v)
		if got := c.UDSlice(); got != v {
			t.Fatalf("UDSlice round-trip failed: set %d, got %d", v, got)
		}
	}
}

func TestEdge4RoundTrip(t *testing.T) {
	for v := 0; v < Edge4Count; v++ {
		c := Solved()
		c.SetEdge4(v)
		if got := c.Edge4(); got != v {
			t.Fatalf("Edge4 round-trip failed: set %d, got %d", v, got)
		}
	}
}

func TestEdge8RoundTrip(t *testing.T) {
	for v := 0; v < Edge8Count; v++ {
		c := Solved()
		c.SetEdge8(v)
		if got := c.Edge8(); got != v {
			t.Fatalf("Edge8 round-trip failed: set %d, got %d", v, got)
		}
	}
}

func TestCornerPermRoundTrip(t *testing.T) {
	for v := 0; v < CornerCount; v++ {
		c := Solved()
		c.SetCornerPerm(v)
		if got := c.CornerPerm(); got != v {
			t.Fatalf("CornerPerm round-trip failed: set %d, got %d", v, got)
		}
	}
}

func TestEdgePermRoundTrip(t *testing.T) {
	// 12! is too large to sweep; sample it.
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10000; i++ {
		v := rng.Intn(EdgeCount)
		c := Solved()
		c.SetEdgePerm(v)
		if got := c.EdgePerm(); got != v {
			t.Fatalf("EdgePerm round-trip failed: set %d, got %d", v, got)
		}
	}
}

func TestCoordinatesOfRandomCubes(t *testing.T) {
	// Writing a cube's own coordinates back into a copy must reproduce
	// the relevant part of the state.
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		c := Random(rng)

		d := Solved()
		d.SetTwist(c.Twist())
		if d.CO != c.CO {
			t.Fatal("Twist should determine the corner orientations")
		}

		d = Solved()
		d.SetFlip(c.Flip())
		if d.EO != c.EO {
			t.Fatal("Flip should determine the edge orientations")
		}

		d = Solved()
		d.SetCornerPerm(c.CornerPerm())
		if d.CP != c.CP {
			t.Fatal("CornerPerm should determine the corner permutation")
		}

		d = Solved()
		d.SetEdgePerm(c.EdgePerm())
		if d.EP != c.EP {
			t.Fatal("EdgePerm should determine the edge permutation")
		}
	}
}

func TestUDSliceOfMoves(t *testing.T) {
	// U keeps the slice edges home; R moves two of them.
	c := Solved()
	c.Move(NewMove(U, 1))
	if c.UDSlice() != 0 {
		t.Error("U should not disturb the slice edges")
	}

	c = Solved()
	c.Move(NewMove(R, 1))
	if c.UDSlice() == 0 {
		t.Error("R should disturb the slice edges")
	}
	c.Move(NewMove(R, 1))
	if c.UDSlice() != 0 {
		t.Error("R2 should keep the slice edges in the slice")
	}
}
