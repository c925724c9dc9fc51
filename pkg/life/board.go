package life

import (
	"errors"
	"fmt"

	"golboard/pkg/core"
)

// Cell states. No other values are ever stored on a board.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Default board dimensions used when a caller does not specify any.
const (
	DefaultWidth  = 16
	DefaultHeight = 16
)

// MaxCells caps width*height so a single board cannot exhaust memory.
const MaxCells = 1 << 24

var (
	// ErrInvalidDimensions is returned when a board is created with a
	// non-positive width or height, more than MaxCells cells, or uploaded
	// rows are ragged.
	ErrInvalidDimensions = errors.New("life: width and height must be positive")
	// ErrInvalidCell is returned when uploaded cells are neither 0 nor 1.
	ErrInvalidCell = errors.New("life: cell value must be 0 or 1")
	// ErrInvalidGenerationCount is returned by callers that parse a
	// generation count they cannot interpret.
	ErrInvalidGenerationCount = errors.New("life: invalid generation count")
)

// Board holds the current generation and a same-shaped scratch buffer for the
// generation being computed. The scratch buffer is stale outside of Step.
type Board struct {
	ID int64

	cur *core.Grid
	nxt *core.Grid
	gen int
}

// NewBoard returns an all-dead board with the given dimensions.
func NewBoard(id int64, w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, w, h)
	}
	if w > MaxCells/h {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, w, h, MaxCells)
	}
	return &Board{ID: id, cur: core.NewGrid(w, h), nxt: core.NewGrid(w, h)}, nil
}

// NewDefaultBoard returns an all-dead 16x16 board.
func NewDefaultBoard(id int64) *Board {
	b, _ := NewBoard(id, DefaultWidth, DefaultHeight)
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.cur.W }

// Height returns the number of rows.
func (b *Board) Height() int { return b.cur.H }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Generation returns how many generations were committed since the board was
// last seeded or loaded.
func (b *Board) Generation() int { return b.gen }

// Cells exposes the current generation in row-major order. The slice is owned
// by the board and changes on the next Step.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// Alive reports whether the cell at (x, y) is alive. Cells outside the board
// are reported dead.
func (b *Board) Alive(x, y int) bool { return b.cur.At(x, y) == Alive }

// Set marks the cell at (x, y) alive or dead.
func (b *Board) Set(x, y int, alive bool) {
	v := Dead
	if alive {
		v = Alive
	}
	b.cur.Set(x, y, v)
}

// Population returns the number of live cells.
func (b *Board) Population() int { return b.cur.Count() }

// Load replaces the current generation with rows[y][x]. The rows must match the
// board shape exactly. The generation counter restarts at zero.
func (b *Board) Load(rows [][]uint8) error {
	w, h, err := rowsShape(rows)
	if err != nil {
		return err
	}
	if w != b.Width() || h != b.Height() {
		return fmt.Errorf("%w: rows are %dx%d, board is %dx%d", ErrInvalidDimensions, w, h, b.Width(), b.Height())
	}
	for y, row := range rows {
		for x, v := range row {
			if v != Dead && v != Alive {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, x, y)
			}
		}
	}
	for y, row := range rows {
		copy(b.cur.Cells()[y*w:(y+1)*w], row)
	}
	b.nxt.Clear()
	b.gen = 0
	return nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{ID: b.ID, cur: b.cur.Clone(), nxt: b.nxt.Clone(), gen: b.gen}
}

// Snapshot captures the current generation in storage independent of the board.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		ID:         b.ID,
		Width:      b.Width(),
		Height:     b.Height(),
		Generation: b.gen,
		Cells:      append([]uint8(nil), b.cur.Cells()...),
	}
}

// Snapshot is an immutable record of one generation of a board.
type Snapshot struct {
	ID         int64
	Width      int
	Height     int
	Generation int
	Cells      []uint8
}

// Alive reports whether the cell at (x, y) was alive in this snapshot.
func (s Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return false
	}
	return s.Cells[y*s.Width+x] == Alive
}

// Rows returns the snapshot as rows[y][x].
func (s Snapshot) Rows() [][]uint8 { return toRows(s.Cells, s.Width, s.Height) }

func toRows(cells []uint8, w, h int) [][]uint8 {
	rows := make([][]uint8, h)
	for y := range rows {
		rows[y] = append([]uint8(nil), cells[y*w:(y+1)*w]...)
	}
	return rows
}

func rowsShape(rows [][]uint8) (int, int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: empty rows", ErrInvalidDimensions)
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), w)
		}
	}
	return w, len(rows), nil
}
