// Package cli implements the command-line interface for the kociemba
// solver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	tablesPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "kociemba",
	Short: "Two-phase Rubik's cube solver",
	Long: `kociemba - A Rubik's cube solver implementing Herbert Kociemba's
two-phase algorithm.

Cube states are 54-character facelet strings over U, R, F, D, L, B in
reading order (U1..U9, R1..R9, F1..F9, D1..D9, L1..L9, B1..B9).
Solutions are printed in Singmaster notation.

The solver needs about 42 MiB of move and pruning tables. They are
built on first use (a few seconds) or loaded from a cached table file;
generate one with 'kociemba tables build' to skip the wait.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database path (default: ~/.kociemba/kociemba.db)")
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "Binary table file to load instead of the built-in tables")
}
