// Package kociemba solves 3x3 Rubik's cubes with Herbert Kociemba's
// two-phase algorithm.
//
// A cube state is a 54-character facelet string over the alphabet
// U, R, F, D, L, B, listing the stickers of the six faces in reading
// order (U1..U9, R1..R9, F1..F9, D1..D9, L1..L9, B1..B9). Solutions are
// space-separated move sequences in Singmaster notation, composing left
// to right.
//
// # Quick Start
//
//	solution, found, err := kociemba.Solve(facelets)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if found {
//	    fmt.Println(solution)
//	}
//
// The first Solve call initializes the shared move and pruning tables,
// which takes a few seconds (or loads a cached table file when one is
// present). Subsequent calls reuse them; solving itself is typically
// well under the default timeout.
//
// # Best-effort mode
//
// SolveBest keeps searching with a tighter move bound until the time
// budget runs out and returns the shortest solution found:
//
//	solution, found, err := kociemba.SolveBest(facelets, kociemba.WithTimeout(5*time.Second))
//
// # Scrambles
//
// RandomFacelets returns a uniformly random legal cube state, useful
// for generating scrambles:
//
//	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
//	facelets := kociemba.RandomFacelets(rng)
package kociemba

import (
	"math/rand"

	"github.com/SeamusWaldron/kociemba/internal/cubie"
	"github.com/SeamusWaldron/kociemba/internal/facelet"
	"github.com/SeamusWaldron/kociemba/internal/solver"
)

// SolvedFacelets is the facelet string of the solved cube.
const SolvedFacelets = facelet.SolvedString

// Solve finds a move sequence of at most the configured length (default
// 25) that brings the cube described by facelets to the solved state.
//
// found is false when no solution exists within the move bound, which
// is a normal result, not an error. A solved input yields an empty
// solution with found true. Errors cover malformed facelet strings,
// unsolvable cube states, and timeouts.
func Solve(facelets string, opts ...Option) (string, bool, error) {
	cfg := newConfig(opts)
	s, err := newSolver(facelets, cfg)
	if err != nil {
		return "", false, err
	}
	moves, found, err := s.Search(cfg.maxLength, cfg.timeout)
	if err != nil {
		return "", false, err
	}
	return cubie.FormatMoves(moves), found, nil
}

// SolveBest iteratively tightens the move bound within the configured
// time budget and returns the shortest solution found. Inner timeouts
// are swallowed; found is false only when no solution was found before
// the deadline.
func SolveBest(facelets string, opts ...Option) (string, bool, error) {
	cfg := newConfig(opts)
	s, err := newSolver(facelets, cfg)
	if err != nil {
		return "", false, err
	}
	moves, found, err := s.SearchBest(cfg.timeout)
	if err != nil {
		return "", false, err
	}
	return cubie.FormatMoves(moves), found, nil
}

func newSolver(facelets string, cfg *config) (*solver.Solver, error) {
	fc, err := facelet.Parse(facelets)
	if err != nil {
		return nil, err
	}
	cc := fc.ToCubie()
	if err := cc.Verify(); err != nil {
		return nil, err
	}
	tab, err := cfg.resolveTables()
	if err != nil {
		return nil, err
	}
	return solver.New(tab, cc), nil
}

// Verify checks that facelets describes a well-formed, solvable cube
// state.
func Verify(facelets string) error {
	fc, err := facelet.Parse(facelets)
	if err != nil {
		return err
	}
	cc := fc.ToCubie()
	return cc.Verify()
}

// Apply applies a move sequence to a cube state and returns the
// resulting facelet string. It is the left-to-right composition used by
// solutions, so Apply(s, solution) of a successful Solve yields
// SolvedFacelets.
func Apply(facelets, moves string) (string, error) {
	fc, err := facelet.Parse(facelets)
	if err != nil {
		return "", err
	}
	seq, err := cubie.ParseMoves(moves)
	if err != nil {
		return "", err
	}
	cc := fc.ToCubie()
	cc.Apply(seq...)
	return facelet.FromCubie(cc).String(), nil
}

// RandomFacelets returns the facelet string of a uniformly random legal
// cube state drawn from rng.
func RandomFacelets(rng *rand.Rand) string {
	c := cubie.Random(rng)
	return facelet.FromCubie(c).String()
}
