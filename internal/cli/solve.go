package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba"
	"github.com/SeamusWaldron/kociemba/internal/storage"
)

var (
	solveMaxLength int
	solveTimeout   time.Duration
	solveBest      bool
	solveRecord    bool
	solvePretty    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelets]",
	Short: "Solve a cube state",
	Long: `Solve the cube described by a 54-character facelet string.

The solution is a space-separated move sequence that brings the cube to
the solved state. An already-solved cube yields an empty solution.

With --best the solver keeps tightening the move bound until the time
budget runs out and prints the shortest solution found.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveMaxLength, "max-length", 25, "Maximum solution length")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 10*time.Second, "Time budget for the search")
	solveCmd.Flags().BoolVar(&solveBest, "best", false, "Search for the shortest solution within the time budget")
	solveCmd.Flags().BoolVar(&solveRecord, "record", false, "Record the solve in the history database")
	solveCmd.Flags().BoolVar(&solvePretty, "pretty", false, "Render the cube before solving")
}

func runSolve(cmd *cobra.Command, args []string) error {
	facelets := args[0]

	if solvePretty {
		out, err := renderFacelets(facelets)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}

	opts := []kociemba.Option{
		kociemba.WithMaxLength(solveMaxLength),
		kociemba.WithTimeout(solveTimeout),
	}
	if tablesPath != "" {
		opts = append(opts, kociemba.WithTableFile(tablesPath))
	}

	start := time.Now()
	var (
		solution string
		found    bool
		err      error
		mode     = "search"
	)
	if solveBest {
		mode = "best"
		solution, found, err = kociemba.SolveBest(facelets, opts...)
	} else {
		solution, found, err = kociemba.Solve(facelets, opts...)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if !found {
		fmt.Printf("No solution within %d moves\n", solveMaxLength)
		return nil
	}

	moveCount := len(strings.Fields(solution))
	if moveCount == 0 {
		fmt.Println("Already solved")
	} else {
		fmt.Println(solution)
		fmt.Printf("%d moves in %s\n", moveCount, formatDuration(elapsed))
	}

	if solveRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSolveRepository(db)
		id, err := repo.Create(facelets, solution, moveCount, elapsed, mode)
		if err != nil {
			return fmt.Errorf("failed to record solve: %w", err)
		}
		fmt.Printf("Recorded as %s\n", id)
	}

	return nil
}

func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if dbPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(dbPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
