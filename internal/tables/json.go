package tables

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SeamusWaldron/kociemba/internal/cubie"
)

// tablesJSON is the JSON wire format: move tables as 2-D arrays with 18
// columns, pruning tables as flat row-major arrays.
type tablesJSON struct {
	TwistMove   [][]int16 `json:"twist_move"`
	FlipMove    [][]int16 `json:"flip_move"`
	UDSliceMove [][]int16 `json:"udslice_move"`
	Edge4Move   [][]int16 `json:"edge4_move"`
	Edge8Move   [][]int16 `json:"edge8_move"`
	CornerMove  [][]int16 `json:"corner_move"`

	UDSliceTwistPrune []int8 `json:"udslice_twist_prune"`
	UDSliceFlipPrune  []int8 `json:"udslice_flip_prune"`
	Edge4Edge8Prune   []int8 `json:"edge4_edge8_prune"`
	Edge4CornerPrune  []int8 `json:"edge4_corner_prune"`
}

func toRows(flat []int16) [][]int16 {
	rows := make([][]int16, len(flat)/cubie.MoveCount)
	for i := range rows {
		rows[i] = flat[i*cubie.MoveCount : (i+1)*cubie.MoveCount]
	}
	return rows
}

func fromRows(rows [][]int16, count int) ([]int16, error) {
	if len(rows) != count {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidData, count, len(rows))
	}
	flat := make([]int16, count*cubie.MoveCount)
	for i, row := range rows {
		if len(row) != cubie.MoveCount {
			return nil, fmt.Errorf("%w: row %d has %d entries", ErrInvalidData, i, len(row))
		}
		copy(flat[i*cubie.MoveCount:], row)
	}
	return flat, nil
}

func checkPrune(p []int8, count int) ([]int8, error) {
	if len(p) != count {
		return nil, fmt.Errorf("%w: expected %d prune entries, got %d", ErrInvalidData, count, len(p))
	}
	return p, nil
}

// WriteJSON writes the tables to w in the JSON wire format.
func (t *Tables) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(tablesJSON{
		TwistMove:   toRows(t.TwistMove),
		FlipMove:    toRows(t.FlipMove),
		UDSliceMove: toRows(t.UDSliceMove),
		Edge4Move:   toRows(t.Edge4Move),
		Edge8Move:   toRows(t.Edge8Move),
		CornerMove:  toRows(t.CornerMove),

		UDSliceTwistPrune: t.UDSliceTwistPrune,
		UDSliceFlipPrune:  t.UDSliceFlipPrune,
		Edge4Edge8Prune:   t.Edge4Edge8Prune,
		Edge4CornerPrune:  t.Edge4CornerPrune,
	})
}

// ReadJSON reads tables in the JSON wire format, validating every
// field's dimensions.
func ReadJSON(r io.Reader) (*Tables, error) {
	var raw tablesJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	var t Tables
	var err error
	if t.TwistMove, err = fromRows(raw.TwistMove, cubie.TwistCount); err != nil {
		return nil, err
	}
	if t.FlipMove, err = fromRows(raw.FlipMove, cubie.FlipCount); err != nil {
		return nil, err
	}
	if t.UDSliceMove, err = fromRows(raw.UDSliceMove, cubie.UDSliceCount); err != nil {
		return nil, err
	}
	if t.Edge4Move, err = fromRows(raw.Edge4Move, cubie.Edge4Count); err != nil {
		return nil, err
	}
	if t.Edge8Move, err = fromRows(raw.Edge8Move, cubie.Edge8Count); err != nil {
		return nil, err
	}
	if t.CornerMove, err = fromRows(raw.CornerMove, cubie.CornerCount); err != nil {
		return nil, err
	}
	if t.UDSliceTwistPrune, err = checkPrune(raw.UDSliceTwistPrune, cubie.UDSliceCount*cubie.TwistCount); err != nil {
		return nil, err
	}
	if t.UDSliceFlipPrune, err = checkPrune(raw.UDSliceFlipPrune, cubie.UDSliceCount*cubie.FlipCount); err != nil {
		return nil, err
	}
	if t.Edge4Edge8Prune, err = checkPrune(raw.Edge4Edge8Prune, cubie.Edge4Count*cubie.Edge8Count); err != nil {
		return nil, err
	}
	if t.Edge4CornerPrune, err = checkPrune(raw.Edge4CornerPrune, cubie.Edge4Count*cubie.CornerCount); err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveJSON writes the tables to a JSON file.
func (t *Tables) SaveJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if err := t.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

// LoadJSON reads a table file written by SaveJSON.
func LoadJSON(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
