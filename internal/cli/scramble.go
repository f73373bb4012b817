package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba"
)

var (
	scrambleSeed   int64
	scrambleSolve  bool
	scramblePretty bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random cube state",
	Long: `Generate a uniformly random legal cube state and print its facelet
string. With --solve, also print a solution for it.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 uses the current time)")
	scrambleCmd.Flags().BoolVar(&scrambleSolve, "solve", false, "Also solve the generated state")
	scrambleCmd.Flags().BoolVar(&scramblePretty, "pretty", false, "Render the generated cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	facelets := kociemba.RandomFacelets(rng)
	fmt.Println(facelets)

	if scramblePretty {
		out, err := renderFacelets(facelets)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}

	if scrambleSolve {
		opts := []kociemba.Option{}
		if tablesPath != "" {
			opts = append(opts, kociemba.WithTableFile(tablesPath))
		}
		solution, found, err := kociemba.Solve(facelets, opts...)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("No solution found")
			return nil
		}
		fmt.Println(solution)
	}

	return nil
}
