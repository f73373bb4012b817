package tables

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SeamusWaldron/kociemba/internal/cubie"
)

// Persistence errors.
var (
	ErrInvalidData = errors.New("kociemba: table file contains invalid data")
	ErrLoadFailed  = errors.New("kociemba: failed to load tables")
	ErrSaveFailed  = errors.New("kociemba: failed to save tables")
)

// The binary format is the ten tables concatenated as little-endian
// signed 32-bit integers, in this fixed order. Move-table rows are laid
// out row-major (coordinate x 18).
func (t *Tables) sections() []struct {
	move  []int16
	prune []int8
	count int
} {
	return []struct {
		move  []int16
		prune []int8
		count int
	}{
		{move: t.TwistMove, count: cubie.TwistCount * cubie.MoveCount},
		{move: t.FlipMove, count: cubie.FlipCount * cubie.MoveCount},
		{move: t.UDSliceMove, count: cubie.UDSliceCount * cubie.MoveCount},
		{move: t.Edge4Move, count: cubie.Edge4Count * cubie.MoveCount},
		{move: t.Edge8Move, count: cubie.Edge8Count * cubie.MoveCount},
		{move: t.CornerMove, count: cubie.CornerCount * cubie.MoveCount},
		{prune: t.UDSliceTwistPrune, count: cubie.UDSliceCount * cubie.TwistCount},
		{prune: t.UDSliceFlipPrune, count: cubie.UDSliceCount * cubie.FlipCount},
		{prune: t.Edge4Edge8Prune, count: cubie.Edge4Count * cubie.Edge8Count},
		{prune: t.Edge4CornerPrune, count: cubie.Edge4Count * cubie.CornerCount},
	}
}

// WriteBinary writes the tables to w in the binary wire format.
func (t *Tables) WriteBinary(w io.Writer) error {
	for _, sec := range t.sections() {
		buf := make([]int32, sec.count)
		if sec.move != nil {
			for i, v := range sec.move {
				buf[i] = int32(v)
			}
		} else {
			for i, v := range sec.prune {
				buf[i] = int32(v)
			}
		}
		if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
			return err
		}
	}
	return nil
}

// ReadBinary reads tables in the binary wire format. A short or
// oversized stream fails with ErrInvalidData.
func ReadBinary(r io.Reader) (*Tables, error) {
	t := newEmpty()
	for _, sec := range t.sections() {
		buf := make([]int32, sec.count)
		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		if sec.move != nil {
			for i, v := range buf {
				sec.move[i] = int16(v)
			}
		} else {
			for i, v := range buf {
				sec.prune[i] = int8(v)
			}
		}
	}
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidData)
	}
	return t, nil
}

func newEmpty() *Tables {
	return &Tables{
		TwistMove:   make([]int16, cubie.TwistCount*cubie.MoveCount),
		FlipMove:    make([]int16, cubie.FlipCount*cubie.MoveCount),
		UDSliceMove: make([]int16, cubie.UDSliceCount*cubie.MoveCount),
		Edge4Move:   make([]int16, cubie.Edge4Count*cubie.MoveCount),
		Edge8Move:   make([]int16, cubie.Edge8Count*cubie.MoveCount),
		CornerMove:  make([]int16, cubie.CornerCount*cubie.MoveCount),

		UDSliceTwistPrune: make([]int8, cubie.UDSliceCount*cubie.TwistCount),
		UDSliceFlipPrune:  make([]int8, cubie.UDSliceCount*cubie.FlipCount),
		Edge4Edge8Prune:   make([]int8, cubie.Edge4Count*cubie.Edge8Count),
		Edge4CornerPrune:  make([]int8, cubie.Edge4Count*cubie.CornerCount),
	}
}

// SaveBinary writes the tables to a file, creating parent directories.
func (t *Tables) SaveBinary(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	w := bufio.NewWriterSize(f, 1<<20)
	if err := t.WriteBinary(w); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

// LoadBinary reads a table file written by SaveBinary.
func LoadBinary(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer f.Close()

	t, err := ReadBinary(bufio.NewReaderSize(f, 1<<20))
	if err != nil {
		return nil, err
	}
	return t, nil
}
