// Package facelet implements the 54-sticker surface model of the cube
// and its bijection with the cubie model. Facelet strings use the
// alphabet U, R, F, D, L, B in the reading order U1..U9, R1..R9,
// F1..F9, D1..D9, L1..L9, B1..B9.
package facelet

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/kociemba/internal/cubie"
)

// Parsing errors.
var (
	ErrInvalidLength  = errors.New("kociemba: facelet string must be 54 characters")
	ErrInvalidFacelet = errors.New("kociemba: invalid facelet character")
)

// SolvedString is the facelet string of the solved cube.
const SolvedString = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// Color is a sticker color, identified with the face it belongs to on a
// solved cube. The numbering matches cubie.Face.
type Color int8

const (
	U Color = iota
	R
	F
	D
	L
	B
)

func (c Color) String() string {
	switch c {
	case U:
		return "U"
	case R:
		return "R"
	case F:
		return "F"
	case D:
		return "D"
	case L:
		return "L"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Cube holds one color per facelet position, 0..53 in reading order.
type Cube struct {
	Facelets [54]Color
}

// Solved returns the solved facelet cube.
func Solved() *Cube {
	var fc Cube
	for i := range fc.Facelets {
		fc.Facelets[i] = Color(i / 9)
	}
	return &fc
}

// Parse builds a facelet cube from a 54-character string.
func Parse(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("%w: got %d in %q", ErrInvalidLength, len(s), s)
	}
	var fc Cube
	for i := 0; i < 54; i++ {
		switch s[i] {
		case 'U':
			fc.Facelets[i] = U
		case 'R':
			fc.Facelets[i] = R
		case 'F':
			fc.Facelets[i] = F
		case 'D':
			fc.Facelets[i] = D
		case 'L':
			fc.Facelets[i] = L
		case 'B':
			fc.Facelets[i] = B
		default:
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidFacelet, string(s[i]), i)
		}
	}
	return &fc, nil
}

// String renders the cube back to its 54-character facelet string.
func (fc *Cube) String() string {
	buf := make([]byte, 54)
	for i, c := range fc.Facelets {
		buf[i] = "URFDLB"[c]
	}
	return string(buf)
}

// cornerFacelet lists the facelet positions of each corner slot's three
// stickers in canonical cyclic order, starting from the U or D sticker.
var cornerFacelet = [8][3]int{
	{8, 9, 20},   // URF: U9 R1 F3
	{6, 18, 38},  // UFL: U7 F1 L3
	{0, 36, 47},  // ULB: U1 L1 B3
	{2, 45, 11},  // UBR: U3 B1 R3
	{29, 26, 15}, // DFR: D3 F9 R7
	{27, 44, 24}, // DLF: D1 L9 F7
	{33, 53, 42}, // DBL: D7 B9 L7
	{35, 17, 51}, // DRB: D9 R9 B7
}

// edgeFacelet lists the facelet positions of each edge slot's two
// stickers.
var edgeFacelet = [12][2]int{
	{5, 10},  // UR: U6 R2
	{7, 19},  // UF: U8 F2
	{3, 37},  // UL: U4 L2
	{1, 46},  // UB: U2 B2
	{32, 16}, // DR: D6 R8
	{28, 25}, // DF: D2 F8
	{30, 41}, // DL: D4 L8
	{34, 52}, // DB: D8 B8
	{23, 12}, // FR: F6 R4
	{21, 39}, // FL: F4 L6
	{50, 40}, // BL: B6 L4
	{48, 14}, // BR: B4 R6
}

// cornerColor gives the sticker colors of each corner piece in the same
// cyclic order as cornerFacelet.
var cornerColor = [8][3]Color{
	{U, R, F}, {U, F, L}, {U, L, B}, {U, B, R},
	{D, F, R}, {D, L, F}, {D, B, L}, {D, R, B},
}

// edgeColor gives the sticker colors of each edge piece.
var edgeColor = [12][2]Color{
	{U, R}, {U, F}, {U, L}, {U, B},
	{D, R}, {D, F}, {D, L}, {D, B},
	{F, R}, {F, L}, {B, L}, {B, R},
}

// ToCubie projects the facelet cube onto the cubie model. The result is
// not verified; callers that accept untrusted input should call Verify
// on it.
func (fc *Cube) ToCubie() cubie.Cube {
	var c cubie.Cube

	for i := 0; i < 8; i++ {
		// The U/D sticker's position within the cyclic triple is the
		// corner's orientation.
		var ori int
		for ori = 0; ori < 3; ori++ {
			col := fc.Facelets[cornerFacelet[i][ori]]
			if col == U || col == D {
				break
			}
		}
		c1 := fc.Facelets[cornerFacelet[i][(ori+1)%3]]
		c2 := fc.Facelets[cornerFacelet[i][(ori+2)%3]]
		for j := 0; j < 8; j++ {
			if c1 == cornerColor[j][1] && c2 == cornerColor[j][2] {
				c.CP[i] = cubie.Corner(j)
				c.CO[i] = int8(ori % 3)
				break
			}
		}
	}

	for i := 0; i < 12; i++ {
		a := fc.Facelets[edgeFacelet[i][0]]
		b := fc.Facelets[edgeFacelet[i][1]]
		for j := 0; j < 12; j++ {
			if a == edgeColor[j][0] && b == edgeColor[j][1] {
				c.EP[i] = cubie.Edge(j)
				c.EO[i] = 0
				break
			}
			if a == edgeColor[j][1] && b == edgeColor[j][0] {
				c.EP[i] = cubie.Edge(j)
				c.EO[i] = 1
				break
			}
		}
	}

	return c
}

// FromCubie paints a facelet cube from a cubie state.
func FromCubie(c cubie.Cube) *Cube {
	var fc Cube
	for i := 0; i < 6; i++ {
		fc.Facelets[9*i+4] = Color(i)
	}
	for i := 0; i < 8; i++ {
		for k := 0; k < 3; k++ {
			fc.Facelets[cornerFacelet[i][(k+int(c.CO[i]))%3]] = cornerColor[c.CP[i]][k]
		}
	}
	for i := 0; i < 12; i++ {
		for k := 0; k < 2; k++ {
			fc.Facelets[edgeFacelet[i][(k+int(c.EO[i]))%2]] = edgeColor[c.EP[i]][k]
		}
	}
	return &fc
}
