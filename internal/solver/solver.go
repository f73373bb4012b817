// Package solver implements the two-phase IDA* search. Phase 1 drives
// the cube into the subgroup G1 = <U, D, R2, L2, F2, B2>; phase 2
// solves it within G1. Both phases are iterative-deepening searches
// guided by the pruning tables.
package solver

import (
	"errors"
	"time"

	"github.com/SeamusWaldron/kociemba/internal/cubie"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

// ErrTimeout is returned when the deadline expires during a search.
var ErrTimeout = errors.New("kociemba: solve timed out")

// MaxLength is the default move bound; every legal cube has a two-phase
// solution within it.
const MaxLength = 25

// Solver searches for a solution to one cube state. A Solver owns its
// scratch arrays and is not safe for concurrent Search calls; separate
// instances sharing the same tables may run in parallel.
type Solver struct {
	tab  *tables.Tables
	cube cubie.Cube

	// Per-node scratch, indexed by search depth.
	axis     []int
	power    []int
	twist    []int
	flip     []int
	udslice  []int
	edge4    []int
	edge8    []int
	corner   []int
	minDist1 []int
	minDist2 []int

	maxLength int
	deadline  time.Time
}

// New creates a solver for the given cube state. The cube must already
// be verified.
func New(tab *tables.Tables, c cubie.Cube) *Solver {
	return &Solver{tab: tab, cube: c}
}

// Search looks for a solution of at most maxLength moves within
// timeout. found is false when the bound is exhausted without finding a
// solution, which is a normal result distinct from a timeout error.
func (s *Solver) Search(maxLength int, timeout time.Duration) ([]cubie.Move, bool, error) {
	s.prepare(maxLength, timeout)
	for depth := 0; depth < maxLength; depth++ {
		n, err := s.phase1(0, depth)
		if err != nil {
			return nil, false, err
		}
		if n >= 0 {
			return s.solution(n), true, nil
		}
	}
	// The depth loop never runs phase 2 for an already-solved cube with
	// maxLength 0; handle the trivial case directly.
	if s.minDist1[0] == 0 && s.cube.IsSolved() {
		return nil, true, nil
	}
	return nil, false, nil
}

// SearchBest repeatedly tightens the move bound within the time budget,
// starting at MaxLength, and returns the shortest solution found.
// Timeouts of inner searches are swallowed; found is false only when no
// search completed before the deadline.
func (s *Solver) SearchBest(timeout time.Duration) ([]cubie.Move, bool, error) {
	deadline := time.Now().Add(timeout)
	var best []cubie.Move
	found := false
	for allowed := MaxLength; allowed > 0; {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		moves, ok, err := s.Search(allowed, remaining)
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				break
			}
			return nil, false, err
		}
		if !ok {
			break
		}
		best, found = moves, true
		allowed = len(moves) - 1
	}
	return best, found, nil
}

func (s *Solver) prepare(maxLength int, timeout time.Duration) {
	n := maxLength + 1
	s.axis = make([]int, n)
	s.power = make([]int, n)
	s.twist = make([]int, n)
	s.flip = make([]int, n)
	s.udslice = make([]int, n)
	s.edge4 = make([]int, n)
	s.edge8 = make([]int, n)
	s.corner = make([]int, n)
	s.minDist1 = make([]int, n)
	s.minDist2 = make([]int, n)

	s.maxLength = maxLength
	s.deadline = time.Now().Add(timeout)

	s.twist[0] = s.cube.Twist()
	s.flip[0] = s.cube.Flip()
	s.udslice[0] = s.cube.UDSlice()
	s.minDist1[0] = s.cost1(0)
}

// cost1 is the phase-1 heuristic: the larger of the two pruning-table
// distances, bumped by one when orientation is solved but the slice
// edges are not home (fixing them needs at least one more side-face
// quarter turn).
func (s *Solver) cost1(n int) int {
	ud := s.udslice[n]
	h := int(s.tab.UDSliceTwistPrune[ud*cubie.TwistCount+s.twist[n]])
	if h2 := int(s.tab.UDSliceFlipPrune[ud*cubie.FlipCount+s.flip[n]]); h2 > h {
		h = h2
	}
	if s.twist[n] == 0 && s.flip[n] == 0 && ud != 0 {
		h++
	}
	return h
}

// cost2 is the phase-2 heuristic.
func (s *Solver) cost2(n int) int {
	e4 := s.edge4[n]
	h := int(s.tab.Edge4CornerPrune[e4*cubie.CornerCount+s.corner[n]])
	if h2 := int(s.tab.Edge4Edge8Prune[e4*cubie.Edge8Count+s.edge8[n]]); h2 > h {
		h = h2
	}
	return h
}

// phase1 searches for a path of exactly at most depth moves from node n
// to the phase-1 goal. It returns the total solution length on success,
// -1 when the subtree is exhausted.
func (s *Solver) phase1(n, depth int) (int, error) {
	if !time.Now().Before(s.deadline) {
		return -1, ErrTimeout
	}
	if s.minDist1[n] == 0 {
		return s.initPhase2(n)
	}
	if s.minDist1[n] > depth {
		return -1, nil
	}
	for f := 0; f < 6; f++ {
		// Two consecutive moves on the same axis never appear in a
		// canonical sequence.
		if n > 0 && (s.axis[n-1] == f || s.axis[n-1] == f+3) {
			continue
		}
		for p := 1; p <= 3; p++ {
			s.axis[n] = f
			s.power[n] = p
			mv := 3*f + p - 1
			s.twist[n+1] = int(s.tab.TwistMove[s.twist[n]*cubie.MoveCount+mv])
			s.flip[n+1] = int(s.tab.FlipMove[s.flip[n]*cubie.MoveCount+mv])
			s.udslice[n+1] = int(s.tab.UDSliceMove[s.udslice[n]*cubie.MoveCount+mv])
			s.minDist1[n+1] = s.cost1(n + 1)
			m, err := s.phase1(n+1, depth-1)
			if err != nil {
				return -1, err
			}
			if m >= 0 {
				return m, nil
			}
		}
	}
	return -1, nil
}

// initPhase2 replays the phase-1 moves on the cubie cube to obtain the
// phase-2 coordinates, then runs the phase-2 deepening loop.
func (s *Solver) initPhase2(n int) (int, error) {
	if !time.Now().Before(s.deadline) {
		return -1, ErrTimeout
	}
	cc := s.cube
	for i := 0; i < n; i++ {
		cc.Move(cubie.NewMove(cubie.Face(s.axis[i]), s.power[i]))
	}
	s.edge4[n] = cc.Edge4()
	s.edge8[n] = cc.Edge8()
	s.corner[n] = cc.CornerPerm()
	s.minDist2[n] = s.cost2(n)
	for depth := 0; depth < s.maxLength-n; depth++ {
		if m := s.phase2(n, depth); m >= 0 {
			return m, nil
		}
	}
	return -1, nil
}

// phase2 is the G1 search: U and D at any power, side faces only as
// half turns. Deadlines are not polled here; a phase-2 iteration is
// sub-millisecond.
func (s *Solver) phase2(n, depth int) int {
	if s.minDist2[n] == 0 {
		return n
	}
	if s.minDist2[n] > depth {
		return -1
	}
	for f := 0; f < 6; f++ {
		if n > 0 && (s.axis[n-1] == f || s.axis[n-1] == f+3) {
			continue
		}
		for p := 1; p <= 3; p++ {
			if f != int(cubie.U) && f != int(cubie.D) && p != 2 {
				continue
			}
			s.axis[n] = f
			s.power[n] = p
			mv := 3*f + p - 1
			s.edge4[n+1] = int(s.tab.Edge4Move[s.edge4[n]*cubie.MoveCount+mv])
			s.edge8[n+1] = int(s.tab.Edge8Move[s.edge8[n]*cubie.MoveCount+mv])
			s.corner[n+1] = int(s.tab.CornerMove[s.corner[n]*cubie.MoveCount+mv])
			s.minDist2[n+1] = s.cost2(n + 1)
			if m := s.phase2(n+1, depth-1); m >= 0 {
				return m
			}
		}
	}
	return -1
}

func (s *Solver) solution(n int) []cubie.Move {
	moves := make([]cubie.Move, n)
	for i := 0; i < n; i++ {
		moves[i] = cubie.NewMove(cubie.Face(s.axis[i]), s.power[i])
	}
	return moves
}
