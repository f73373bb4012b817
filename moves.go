package kociemba

import "github.com/SeamusWaldron/kociemba/internal/cubie"

// Move is a single face turn. Its String method renders Singmaster
// notation (U, U2, U').
type Move = cubie.Move

// Predefined moves for composing sequences by hand.
//
// Example:
//
//	seq := []kociemba.Move{kociemba.R, kociemba.U, kociemba.RPrime, kociemba.UPrime}
const (
	U Move = iota // Up clockwise
	U2            // Up 180
	UPrime        // Up counter-clockwise
	R             // Right clockwise
	R2            // Right 180
	RPrime        // Right counter-clockwise
	F             // Front clockwise
	F2            // Front 180
	FPrime        // Front counter-clockwise
	D             // Down clockwise
	D2            // Down 180
	DPrime        // Down counter-clockwise
	L             // Left clockwise
	L2            // Left 180
	LPrime        // Left counter-clockwise
	B             // Back clockwise
	B2            // Back 180
	BPrime        // Back counter-clockwise
)

// ParseMoves parses a space-separated move sequence in Singmaster
// notation.
func ParseMoves(s string) ([]Move, error) {
	return cubie.ParseMoves(s)
}

// FormatMoves renders a move sequence as a space-separated string.
func FormatMoves(moves []Move) string {
	return cubie.FormatMoves(moves)
}
