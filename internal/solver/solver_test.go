package solver

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/SeamusWaldron/kociemba/internal/cubie"
	"github.com/SeamusWaldron/kociemba/internal/facelet"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

var (
	tabOnce sync.Once
	tab     *tables.Tables
)

func testTab() *tables.Tables {
	tabOnce.Do(func() {
		tab = tables.Build()
	})
	return tab
}

func solveFacelets(t *testing.T, facelets string) []cubie.Move {
	t.Helper()
	fc, err := facelet.Parse(facelets)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cc := fc.ToCubie()
	if err := cc.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	moves, found, err := New(testTab(), cc).Search(MaxLength, 30*time.Second)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !found {
		t.Fatalf("No solution found for %s", facelets)
	}

	check := cc
	check.Apply(moves...)
	if !check.IsSolved() {
		t.Fatalf("Solution %q does not solve %s", cubie.FormatMoves(moves), facelets)
	}
	return moves
}

func TestSolvedCubeYieldsEmptySolution(t *testing.T) {
	moves, found, err := New(testTab(), cubie.Solved()).Search(MaxLength, time.Minute)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !found {
		t.Fatal("Solved cube should be found")
	}
	if len(moves) != 0 {
		t.Errorf("Solved cube should yield an empty solution, got %q", cubie.FormatMoves(moves))
	}
}

func TestSolveSingleMove(t *testing.T) {
	c := cubie.Solved()
	c.Move(cubie.NewMove(cubie.R, 1))
	moves, found, err := New(testTab(), c).Search(MaxLength, time.Minute)
	if err != nil || !found {
		t.Fatalf("Search: found=%v err=%v", found, err)
	}
	c.Apply(moves...)
	if !c.IsSolved() {
		t.Error("Solution should undo a single R move")
	}
	if len(moves) == 0 || len(moves) > MaxLength {
		t.Errorf("Unexpected solution length %d", len(moves))
	}
}

func TestSolveKnownScramble(t *testing.T) {
	const scramble = "DFLRUBRDFRLDURRLRRUFDFFLBDFULUUDULBURBBBLRBFLFLBDBDFUD"
	moves := solveFacelets(t, scramble)
	if len(moves) > MaxLength {
		t.Errorf("Solution of %d moves exceeds the bound", len(moves))
	}
}

func TestKnownScrambleReferenceSolution(t *testing.T) {
	// The documented 23-move solution must bring the scramble to the
	// solved state at cubie level; this pins down move semantics
	// independently of search order.
	const scramble = "DFLRUBRDFRLDURRLRRUFDFFLBDFULUUDULBURBBBLRBFLFLBDBDFUD"
	const reference = "U2 B' U F L' U2 L' B' U L U R2 U' F2 B2 U' B2 R2 U' R2 F2 U L2 U"

	fc, err := facelet.Parse(scramble)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cc := fc.ToCubie()
	seq, err := cubie.ParseMoves(reference)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	cc.Apply(seq...)
	if !cc.IsSolved() {
		t.Error("Reference solution should solve the documented scramble")
	}
}

func TestSolveSuperflip(t *testing.T) {
	const superflip = "UBULURUFURURFRBRDRFUFLFRFDFDFDLDRDBDLULBLFLDLBUBRBLBDB"

	fc, err := facelet.Parse(superflip)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cc := fc.ToCubie()
	if cc.Flip() != cubie.FlipCount-1 {
		t.Errorf("Superflip should have every edge flipped, flip=%d", cc.Flip())
	}
	if cc.Twist() != 0 {
		t.Errorf("Superflip should have no corner twist, twist=%d", cc.Twist())
	}

	solveFacelets(t, superflip)
}

func TestSolveRandomCubes(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 5; i++ {
		c := cubie.Random(rng)
		moves := solveFacelets(t, facelet.FromCubie(c).String())
		if len(moves) > MaxLength {
			t.Errorf("Solution of %d moves exceeds the bound", len(moves))
		}
	}
}

func TestCanonicalSequences(t *testing.T) {
	// Consecutive moves never repeat a face, and opposite faces only
	// appear in the fixed low-face-first order (U D, never D U).
	rng := rand.New(rand.NewSource(32))
	for i := 0; i < 5; i++ {
		c := cubie.Random(rng)
		moves, found, err := New(testTab(), c).Search(MaxLength, time.Minute)
		if err != nil || !found {
			t.Fatalf("Search: found=%v err=%v", found, err)
		}
		for j := 1; j < len(moves); j++ {
			prev, cur := int(moves[j-1].Face()), int(moves[j].Face())
			if prev == cur || prev == cur+3 {
				t.Errorf("Moves %v and %v are not canonical in %q", moves[j-1], moves[j], cubie.FormatMoves(moves))
			}
		}
	}
}

func TestSearchTimesOut(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	c := cubie.Random(rng)
	_, _, err := New(testTab(), c).Search(MaxLength, 0)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Zero timeout should fail with ErrTimeout, got %v", err)
	}
}

func TestSearchBest(t *testing.T) {
	rng := rand.New(rand.NewSource(34))
	c := cubie.Random(rng)

	moves, found, err := New(testTab(), c).SearchBest(3 * time.Second)
	if err != nil {
		t.Fatalf("SearchBest: %v", err)
	}
	if !found {
		t.Fatal("SearchBest should find at least one solution in 3s")
	}
	c.Apply(moves...)
	if !c.IsSolved() {
		t.Error("Best solution should solve the cube")
	}
}

func TestSearchBestSwallowsTimeout(t *testing.T) {
	rng := rand.New(rand.NewSource(35))
	c := cubie.Random(rng)

	moves, found, err := New(testTab(), c).SearchBest(time.Nanosecond)
	if err != nil {
		t.Errorf("SearchBest should swallow inner timeouts, got %v", err)
	}
	if found || moves != nil {
		t.Error("SearchBest with no time should return nothing")
	}
}

func TestExhaustionIsNotAnError(t *testing.T) {
	// One quarter turn needs at least one move to undo; a zero-move
	// bound exhausts without error.
	c := cubie.Solved()
	c.Move(cubie.NewMove(cubie.F, 1))
	moves, found, err := New(testTab(), c).Search(0, time.Minute)
	if err != nil {
		t.Errorf("Exhaustion should not be an error, got %v", err)
	}
	if found || moves != nil {
		t.Error("Exhausted search should report found == false")
	}
}
