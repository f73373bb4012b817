package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba"
	"github.com/SeamusWaldron/kociemba/internal/facelet"
)

var playTimeout time.Duration

var playCmd = &cobra.Command{
	Use:   "play [facelets]",
	Short: "Step through a solution interactively",
	Long: `Solve a cube state and step through the solution move by move on a
rendered cube.

Keyboard shortcuts:
  right/space  - next move
  left         - previous move
  r            - back to the start
  q/Esc        - quit`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().DurationVar(&playTimeout, "timeout", 10*time.Second, "Time budget for the search")
}

// Styles
var (
	playTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	playMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	playCurrentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("82"))

	playHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type playModel struct {
	moves  []string
	states []*facelet.Cube // states[i] is the cube after i moves
	pos    int
}

func newPlayModel(facelets, solution string) (playModel, error) {
	fc, err := facelet.Parse(facelets)
	if err != nil {
		return playModel{}, err
	}

	moves := strings.Fields(solution)
	states := make([]*facelet.Cube, 0, len(moves)+1)
	states = append(states, fc)

	state := facelets
	for _, mv := range moves {
		state, err = kociemba.Apply(state, mv)
		if err != nil {
			return playModel{}, err
		}
		next, err := facelet.Parse(state)
		if err != nil {
			return playModel{}, err
		}
		states = append(states, next)
	}

	return playModel{moves: moves, states: states}, nil
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", " ":
			if m.pos < len(m.moves) {
				m.pos++
			}
		case "left":
			if m.pos > 0 {
				m.pos--
			}
		case "r":
			m.pos = 0
		}
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(playTitleStyle.Render("kociemba playback"))
	b.WriteString("\n\n")
	b.WriteString(renderCube(m.states[m.pos]))
	b.WriteString("\n")

	if len(m.moves) == 0 {
		b.WriteString(playMoveStyle.Render("Already solved"))
	} else {
		b.WriteString(fmt.Sprintf("Move %d/%d: ", m.pos, len(m.moves)))
		for i, mv := range m.moves {
			if i == m.pos-1 {
				b.WriteString(playCurrentStyle.Render(mv))
			} else {
				b.WriteString(playMoveStyle.Render(mv))
			}
			b.WriteString(" ")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(playHelpStyle.Render("right/space: next  left: back  r: reset  q: quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	facelets := args[0]

	opts := []kociemba.Option{kociemba.WithTimeout(playTimeout)}
	if tablesPath != "" {
		opts = append(opts, kociemba.WithTableFile(tablesPath))
	}

	solution, found, err := kociemba.Solve(facelets, opts...)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no solution found")
	}

	model, err := newPlayModel(facelets, solution)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playback error: %w", err)
	}

	return nil
}
