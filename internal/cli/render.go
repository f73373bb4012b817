package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/kociemba/internal/facelet"
)

// One style per sticker color, keyed by facelet.Color.
var stickerStyles = [6]lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")), // U white
	lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")), // R red
	lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("232")),  // F green
	lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")), // D yellow
	lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")), // L orange
	lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),  // B blue
}

// renderFacelets draws the cube net for a facelet string: U on top,
// L F R B in the middle band, D below.
func renderFacelets(facelets string) (string, error) {
	fc, err := facelet.Parse(facelets)
	if err != nil {
		return "", err
	}
	return renderCube(fc), nil
}

func renderCube(fc *facelet.Cube) string {
	var b strings.Builder

	sticker := func(face, i int) string {
		c := fc.Facelets[9*face+i]
		return stickerStyles[c].Render(" " + c.String() + " ")
	}

	// U face, indented past the L block
	for row := 0; row < 3; row++ {
		b.WriteString(strings.Repeat(" ", 9))
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(0, row*3+col))
		}
		b.WriteString("\n")
	}

	// L, F, R, B band
	for row := 0; row < 3; row++ {
		for _, face := range []int{4, 2, 1, 5} {
			for col := 0; col < 3; col++ {
				b.WriteString(sticker(face, row*3+col))
			}
		}
		b.WriteString("\n")
	}

	// D face
	for row := 0; row < 3; row++ {
		b.WriteString(strings.Repeat(" ", 9))
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(3, row*3+col))
		}
		b.WriteString("\n")
	}

	return b.String()
}
