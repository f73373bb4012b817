// Command kociemba is the command-line front end for the two-phase
// solver.
package main

import "github.com/SeamusWaldron/kociemba/internal/cli"

func main() {
	cli.Execute()
}
