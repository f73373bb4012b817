package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/cubie"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

var (
	tablesOut    string
	tablesFormat string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the move and pruning tables",
	Long: `Commands for building, verifying, and inspecting the precomputed
move and pruning tables.

The tables are pure computation over the cube group and are identical
on every machine; the binary file is a portable cache.`,
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the tables and write them to a file",
	RunE:  runTablesBuild,
}

var tablesVerifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Verify a table file against a fresh build",
	Args:  cobra.ExactArgs(1),
	RunE:  runTablesVerify,
}

var tablesInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show table dimensions and sizes",
	RunE:  runTablesInfo,
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.AddCommand(tablesBuildCmd)
	tablesBuildCmd.Flags().StringVar(&tablesOut, "out", "", "Output path (default: ~/.kociemba/tables.bin)")
	tablesBuildCmd.Flags().StringVar(&tablesFormat, "format", "binary", "Output format: binary or json")

	tablesCmd.AddCommand(tablesVerifyCmd)
	tablesVerifyCmd.Flags().StringVar(&tablesFormat, "format", "binary", "File format: binary or json")

	tablesCmd.AddCommand(tablesInfoCmd)
}

func runTablesBuild(cmd *cobra.Command, args []string) error {
	out := tablesOut
	if out == "" {
		path, err := tables.DefaultPath()
		if err != nil {
			return err
		}
		out = path
	}

	fmt.Println("Building tables...")
	start := time.Now()
	t := tables.Build()
	fmt.Printf("Built in %s\n", formatDuration(time.Since(start)))

	switch tablesFormat {
	case "binary":
		if err := t.SaveBinary(out); err != nil {
			return err
		}
	case "json":
		if err := t.SaveJSON(out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (use binary or json)", tablesFormat)
	}

	fmt.Printf("Saved to %s\n", out)
	return nil
}

func runTablesVerify(cmd *cobra.Command, args []string) error {
	var (
		loaded *tables.Tables
		err    error
	)
	switch tablesFormat {
	case "binary":
		loaded, err = tables.LoadBinary(args[0])
	case "json":
		loaded, err = tables.LoadJSON(args[0])
	default:
		return fmt.Errorf("unknown format %q (use binary or json)", tablesFormat)
	}
	if err != nil {
		return err
	}

	fmt.Println("Building reference tables...")
	fresh := tables.Build()

	if !loaded.Equal(fresh) {
		return fmt.Errorf("table file %s does not match a fresh build", args[0])
	}

	fmt.Println("OK")
	return nil
}

func runTablesInfo(cmd *cobra.Command, args []string) error {
	rows := []struct {
		name    string
		entries int
	}{
		{"twist_move", cubie.TwistCount * cubie.MoveCount},
		{"flip_move", cubie.FlipCount * cubie.MoveCount},
		{"udslice_move", cubie.UDSliceCount * cubie.MoveCount},
		{"edge4_move", cubie.Edge4Count * cubie.MoveCount},
		{"edge8_move", cubie.Edge8Count * cubie.MoveCount},
		{"corner_move", cubie.CornerCount * cubie.MoveCount},
		{"udslice_twist_prune", cubie.UDSliceCount * cubie.TwistCount},
		{"udslice_flip_prune", cubie.UDSliceCount * cubie.FlipCount},
		{"edge4_edge8_prune", cubie.Edge4Count * cubie.Edge8Count},
		{"edge4_corner_prune", cubie.Edge4Count * cubie.CornerCount},
	}

	total := 0
	fmt.Printf("%-22s  %10s\n", "Table", "Entries")
	fmt.Println("----------------------  ----------")
	for _, r := range rows {
		fmt.Printf("%-22s  %10d\n", r.name, r.entries)
		total += r.entries
	}
	fmt.Println()
	fmt.Printf("Total: %d entries, %d MiB on disk as int32\n", total, total*4/(1<<20))
	return nil
}
