package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded solves",
	Long:  `Commands for listing and inspecting solves recorded with 'solve --record'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a recorded solve",
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent solve")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet")
		fmt.Println("Record one with: kociemba solve --record <facelets>")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-6s  %-8s  %s\n", "ID", "Solved at", "Moves", "Time", "Mode")
	fmt.Println("------------------------------------  --------------------  ------  --------  ------")
	for _, s := range solves {
		fmt.Printf("%-36s  %-20s  %-6d  %-8s  %s\n",
			s.SolveID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.MoveCount,
			fmt.Sprintf("%dms", s.DurationMs),
			s.Mode,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	var solve *storage.Solve
	if historyLast {
		solve, err = repo.GetLast()
	} else if len(args) > 0 {
		solve, err = repo.Get(args[0])
	} else {
		return fmt.Errorf("please provide a solve ID or use --last")
	}
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve not found")
	}

	fmt.Printf("ID:       %s\n", solve.SolveID)
	fmt.Printf("Solved:   %s\n", solve.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Mode:     %s\n", solve.Mode)
	fmt.Printf("Moves:    %d\n", solve.MoveCount)
	fmt.Printf("Time:     %dms\n", solve.DurationMs)
	fmt.Println()
	fmt.Printf("Facelets: %s\n", solve.Facelets)
	if solve.Solution != "" {
		fmt.Printf("Solution: %s\n", solve.Solution)
	}

	out, err := renderFacelets(solve.Facelets)
	if err == nil {
		fmt.Println()
		fmt.Println(out)
	}

	return nil
}
