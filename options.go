package kociemba

import (
	"time"

	"github.com/SeamusWaldron/kociemba/internal/solver"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

// Option configures a solve call.
type Option func(*config)

type config struct {
	maxLength int
	timeout   time.Duration
	tablePath string
}

func newConfig(opts []Option) *config {
	c := &config{
		maxLength: solver.MaxLength,
		timeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) resolveTables() (*tables.Tables, error) {
	if c.tablePath != "" {
		return tables.LoadBinary(c.tablePath)
	}
	return tables.Get(), nil
}

// WithMaxLength bounds the solution length. The default of 25 is enough
// for every legal cube; lower bounds make Solve report found == false
// more often. SolveBest ignores it and always starts at 25.
func WithMaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// WithTimeout sets the time budget for the solve call. Solve fails with
// ErrTimeout when it expires; SolveBest returns the best solution found
// so far instead.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithTableFile loads the move and pruning tables from the given binary
// table file instead of the process-wide shared tables.
func WithTableFile(path string) Option {
	return func(c *config) {
		c.tablePath = path
	}
}
