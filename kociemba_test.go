package kociemba

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestSolveSolvedCube(t *testing.T) {
	solution, found, err := Solve(SolvedFacelets)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !found {
		t.Fatal("Solved cube should be found")
	}
	if solution != "" {
		t.Errorf("Solved cube should yield an empty solution, got %q", solution)
	}
}

func TestSolveScramble(t *testing.T) {
	const scramble = "DFLRUBRDFRLDURRLRRUFDFFLBDFULUUDULBURBBBLRBFLFLBDBDFUD"

	solution, found, err := Solve(scramble, WithTimeout(30*time.Second))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !found {
		t.Fatal("Scramble should be solvable within 25 moves")
	}

	result, err := Apply(scramble, solution)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result != SolvedFacelets {
		t.Errorf("Applying %q should solve the cube, got %s", solution, result)
	}
	if n := len(strings.Fields(solution)); n > 25 {
		t.Errorf("Solution of %d moves exceeds the bound", n)
	}
}

func TestSolveBestScramble(t *testing.T) {
	const scramble = "DFLRUBRDFRLDURRLRRUFDFFLBDFULUUDULBURBBBLRBFLFLBDBDFUD"

	solution, found, err := SolveBest(scramble, WithTimeout(3*time.Second))
	if err != nil {
		t.Fatalf("SolveBest: %v", err)
	}
	if !found {
		t.Fatal("SolveBest should find a solution in 3s")
	}

	result, err := Apply(scramble, solution)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result != SolvedFacelets {
		t.Errorf("Best solution %q should solve the cube", solution)
	}
}

func TestSolveRejectsBadInput(t *testing.T) {
	_, _, err := Solve(SolvedFacelets[:53])
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Short string should fail with ErrInvalidLength, got %v", err)
	}

	bad := []byte(SolvedFacelets)
	bad[51] = 'X'
	_, _, err = Solve(string(bad))
	if !errors.Is(err, ErrInvalidFacelet) {
		t.Errorf("Bad character should fail with ErrInvalidFacelet, got %v", err)
	}
}

func TestSolveRejectsUnsolvableCube(t *testing.T) {
	// Flip a single edge: swap the two stickers of the UR edge
	// (facelets U6 and R2).
	bad := []byte(SolvedFacelets)
	bad[5], bad[10] = bad[10], bad[5]

	_, _, err := Solve(string(bad))
	if !errors.Is(err, ErrVerification) {
		t.Errorf("Flipped edge should fail verification, got %v", err)
	}
	if !errors.Is(err, ErrEdgeOrientation) {
		t.Errorf("Flipped edge should report ErrEdgeOrientation, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	if err := Verify(SolvedFacelets); err != nil {
		t.Errorf("Solved cube should verify: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		if err := Verify(RandomFacelets(rng)); err != nil {
			t.Errorf("Random cube should verify: %v", err)
		}
	}
}

func TestApplySequences(t *testing.T) {
	// (R U R' U') x 6 = identity
	state := SolvedFacelets
	var err error
	for i := 0; i < 6; i++ {
		state, err = Apply(state, "R U R' U'")
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	if state != SolvedFacelets {
		t.Error("Sexy move x 6 should return to solved")
	}

	if _, err := Apply(SolvedFacelets, "R q"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("Bad notation should fail with ErrInvalidNotation, got %v", err)
	}
}

func TestPredefinedMoves(t *testing.T) {
	seq := []Move{R, U, RPrime, UPrime}
	if FormatMoves(seq) != "R U R' U'" {
		t.Errorf("Predefined moves should render canonically, got %q", FormatMoves(seq))
	}

	parsed, err := ParseMoves("U2 B' L2")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []Move{U2, BPrime, L2}
	for i := range want {
		if parsed[i] != want[i] {
			t.Errorf("ParseMoves mismatch at %d: got %v, want %v", i, parsed[i], want[i])
		}
	}
}

func TestSuperflipEndToEnd(t *testing.T) {
	const superflip = "UBULURUFURURFRBRDRFUFLFRFDFDFDLDRDBDLULBLFLDLBUBRBLBDB"

	solution, found, err := Solve(superflip, WithTimeout(30*time.Second))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !found {
		t.Fatal("Superflip should be solvable within 25 moves")
	}

	result, err := Apply(superflip, solution)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result != SolvedFacelets {
		t.Errorf("Solution %q should solve the superflip", solution)
	}
}

func TestDocumentedSuperflipSolution(t *testing.T) {
	// The documented non-optimal 23-move solution must solve the
	// superflip; this checks move semantics end to end.
	const superflip = "UBULURUFURURFRBRDRFUFLFRFDFDFDLDRDBDLULBLFLDLBUBRBLBDB"
	const reference = "R L F U D' R2 F2 R F B D B2 U R2 U L2 B2 D F2 B2 L2 F2 U2"

	result, err := Apply(superflip, reference)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result != SolvedFacelets {
		t.Errorf("Documented superflip solution should solve it, got %s", result)
	}
}
