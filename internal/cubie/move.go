package cubie

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNotation is returned when a move string cannot be parsed.
var ErrInvalidNotation = errors.New("kociemba: invalid move notation")

// Move encodes a face turn as 3*face + power - 1, where power counts
// clockwise quarter turns: 1 = clockwise, 2 = half turn, 3 = counter-
// clockwise. Moves 0..17 enumerate U, U2, U', R, R2, R', and so on in
// face order.
type Move int

// NewMove builds the move code for a face and power in 1..3.
func NewMove(f Face, power int) Move {
	return Move(3*int(f) + power - 1)
}

// Face returns the face the move turns.
func (m Move) Face() Face {
	return Face(m / 3)
}

// Power returns the number of clockwise quarter turns, 1..3.
func (m Move) Power() int {
	return int(m)%3 + 1
}

// String renders the move in Singmaster notation: X, X2 or X'.
func (m Move) String() string {
	switch m.Power() {
	case 2:
		return m.Face().String() + "2"
	case 3:
		return m.Face().String() + "'"
	default:
		return m.Face().String()
	}
}

// Move applies the m-th move to the cube by composing with the face's
// basic move cube power times.
func (c *Cube) Move(m Move) {
	mc := MoveCube(m.Face())
	for p := 0; p < m.Power(); p++ {
		c.Multiply(mc)
	}
}

// Apply applies a sequence of moves left to right.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.Move(m)
	}
}

// FormatMoves renders a move sequence as a space-separated string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// ParseMoves parses a space-separated move sequence in Singmaster
// notation. The empty string parses to an empty sequence.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := parseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func parseMove(tok string) (Move, error) {
	if len(tok) == 0 || len(tok) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}
	var f Face
	switch tok[0] {
	case 'U':
		f = U
	case 'R':
		f = R
	case 'F':
		f = F
	case 'D':
		f = D
	case 'L':
		f = L
	case 'B':
		f = B
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}
	power := 1
	if len(tok) == 2 {
		switch tok[1] {
		case '2':
			power = 2
		case '\'':
			power = 3
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
		}
	}
	return NewMove(f, power), nil
}
