// Package tables builds, persists, and shares the move tables and
// pruning tables that drive the coordinate-level two-phase search.
//
// Move tables map (coordinate, move) to the resulting coordinate in
// O(1). The three phase-2 permutation tables mark moves illegal in G1
// with -1; such entries are never read by the phase-2 search and are
// treated as non-edges by the pruning sweep. Pruning tables hold the
// breadth-first distance from each composite coordinate to its goal and
// serve as admissible heuristics.
//
// All tables are flat buffers with explicit stride; 2-D access is
// table[row*stride + col].
package tables

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/SeamusWaldron/kociemba/internal/cubie"
)

// Tables holds the six move tables and four pruning tables. Once built
// the tables are read-only and safe to share across solver instances
// without synchronization.
type Tables struct {
	TwistMove   []int16 // TwistCount x 18
	FlipMove    []int16 // FlipCount x 18
	UDSliceMove []int16 // UDSliceCount x 18
	Edge4Move   []int16 // Edge4Count x 18, -1 outside G1
	Edge8Move   []int16 // Edge8Count x 18, -1 outside G1
	CornerMove  []int16 // CornerCount x 18, -1 outside G1

	UDSliceTwistPrune []int8 // UDSliceCount x TwistCount
	UDSliceFlipPrune  []int8 // UDSliceCount x FlipCount
	Edge4Edge8Prune   []int8 // Edge4Count x Edge8Count
	Edge4CornerPrune  []int8 // Edge4Count x CornerCount
}

// Build computes all ten tables in memory. It is pure computation and
// cannot fail; it takes a few seconds.
func Build() *Tables {
	t := &Tables{
		TwistMove:   make([]int16, cubie.TwistCount*cubie.MoveCount),
		FlipMove:    make([]int16, cubie.FlipCount*cubie.MoveCount),
		UDSliceMove: make([]int16, cubie.UDSliceCount*cubie.MoveCount),
		Edge4Move:   make([]int16, cubie.Edge4Count*cubie.MoveCount),
		Edge8Move:   make([]int16, cubie.Edge8Count*cubie.MoveCount),
		CornerMove:  make([]int16, cubie.CornerCount*cubie.MoveCount),

		UDSliceTwistPrune: make([]int8, cubie.UDSliceCount*cubie.TwistCount),
		UDSliceFlipPrune:  make([]int8, cubie.UDSliceCount*cubie.FlipCount),
		Edge4Edge8Prune:   make([]int8, cubie.Edge4Count*cubie.Edge8Count),
		Edge4CornerPrune:  make([]int8, cubie.Edge4Count*cubie.CornerCount),
	}

	fillMoveTable(t.TwistMove, cubie.TwistCount, false,
		func(c *cubie.Cube, x int) { c.SetTwist(x) },
		func(c *cubie.Cube) int { return c.Twist() },
		(*cubie.Cube).CornerMultiply)
	fillMoveTable(t.FlipMove, cubie.FlipCount, false,
		func(c *cubie.Cube, x int) { c.SetFlip(x) },
		func(c *cubie.Cube) int { return c.Flip() },
		(*cubie.Cube).EdgeMultiply)
	fillMoveTable(t.UDSliceMove, cubie.UDSliceCount, false,
		func(c *cubie.Cube, x int) { c.SetUDSlice(x) },
		func(c *cubie.Cube) int { return c.UDSlice() },
		(*cubie.Cube).EdgeMultiply)
	fillMoveTable(t.Edge4Move, cubie.Edge4Count, true,
		func(c *cubie.Cube, x int) { c.SetEdge4(x) },
		func(c *cubie.Cube) int { return c.Edge4() },
		(*cubie.Cube).EdgeMultiply)
	fillMoveTable(t.Edge8Move, cubie.Edge8Count, true,
		func(c *cubie.Cube, x int) { c.SetEdge8(x) },
		func(c *cubie.Cube) int { return c.Edge8() },
		(*cubie.Cube).EdgeMultiply)
	fillMoveTable(t.CornerMove, cubie.CornerCount, true,
		func(c *cubie.Cube, x int) { c.SetCornerPerm(x) },
		func(c *cubie.Cube) int { return c.CornerPerm() },
		(*cubie.Cube).CornerMultiply)

	fillPrune(t.UDSliceTwistPrune, t.UDSliceMove, t.TwistMove, cubie.TwistCount)
	fillPrune(t.UDSliceFlipPrune, t.UDSliceMove, t.FlipMove, cubie.FlipCount)
	fillPrune(t.Edge4Edge8Prune, t.Edge4Move, t.Edge8Move, cubie.Edge8Count)
	fillPrune(t.Edge4CornerPrune, t.Edge4Move, t.CornerMove, cubie.CornerCount)

	return t
}

// fillMoveTable walks the coordinate graph: for each coordinate value it
// composes the cube three times with each face's move cube, recording
// the coordinate after each composition. A fourth composition restores
// the state. When phase2Only is set, entries for moves illegal in G1
// (side faces at quarter-turn powers) are marked -1.
func fillMoveTable(
	table []int16,
	count int,
	phase2Only bool,
	set func(*cubie.Cube, int),
	get func(*cubie.Cube) int,
	multiply func(*cubie.Cube, *cubie.Cube),
) {
	for x := 0; x < count; x++ {
		c := cubie.Solved()
		set(&c, x)
		for f := cubie.Face(0); f < 6; f++ {
			mc := cubie.MoveCube(f)
			for p := 0; p < 3; p++ {
				multiply(&c, mc)
				i := x*cubie.MoveCount + int(f)*3 + p
				if phase2Only && f != cubie.U && f != cubie.D && p != 1 {
					table[i] = -1
				} else {
					table[i] = int16(get(&c))
				}
			}
			multiply(&c, mc)
		}
	}
}

// fillPrune runs a breadth-first sweep over the composite coordinate
// (a, b) starting from the goal (0, 0). A transition whose move-table
// factor is -1 is not an edge and is skipped.
func fillPrune(prune []int8, aMove, bMove []int16, bCount int) {
	for i := range prune {
		prune[i] = -1
	}
	prune[0] = 0
	for depth := int8(0); ; depth++ {
		filled := false
		for idx, d := range prune {
			if d != depth {
				continue
			}
			a, b := idx/bCount, idx%bCount
			for m := 0; m < cubie.MoveCount; m++ {
				na := aMove[a*cubie.MoveCount+m]
				nb := bMove[b*cubie.MoveCount+m]
				if na < 0 || nb < 0 {
					continue
				}
				next := int(na)*bCount + int(nb)
				if prune[next] < 0 {
					prune[next] = depth + 1
					filled = true
				}
			}
		}
		if !filled {
			return
		}
	}
}

// Equal reports whether two table sets are identical field by field.
func (t *Tables) Equal(o *Tables) bool {
	return equal16(t.TwistMove, o.TwistMove) &&
		equal16(t.FlipMove, o.FlipMove) &&
		equal16(t.UDSliceMove, o.UDSliceMove) &&
		equal16(t.Edge4Move, o.Edge4Move) &&
		equal16(t.Edge8Move, o.Edge8Move) &&
		equal16(t.CornerMove, o.CornerMove) &&
		equal8(t.UDSliceTwistPrune, o.UDSliceTwistPrune) &&
		equal8(t.UDSliceFlipPrune, o.UDSliceFlipPrune) &&
		equal8(t.Edge4Edge8Prune, o.Edge4Edge8Prune) &&
		equal8(t.Edge4CornerPrune, o.Edge4CornerPrune)
}

func equal16(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equal8(a, b []int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DefaultPath returns the default cached table file path in the user's
// data directory, creating the directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".kociemba")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return filepath.Join(dir, "tables.bin"), nil
}

var (
	sharedOnce sync.Once
	shared     *Tables
)

// Get returns the process-wide shared tables, initializing them on
// first access. A cached binary at DefaultPath is used when it loads
// cleanly; otherwise the tables are built in memory. The result is
// read-only shared state.
func Get() *Tables {
	sharedOnce.Do(func() {
		if path, err := DefaultPath(); err == nil {
			if t, err := LoadBinary(path); err == nil {
				shared = t
				return
			}
		}
		shared = Build()
	})
	return shared
}
