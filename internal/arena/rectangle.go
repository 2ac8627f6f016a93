package arena

import "math"

// RectangleArena is a rows x columns table of square cells.
// It is fully populated at construction and never changes afterward,
// so concurrent readers are safe as long as the RandSource is.
type RectangleArena struct {
	rows    uint
	columns uint
	cells   [][]SquareCell
	rng     RandSource
}

var _ Arena[SquareCell, SquareDirection] = (*RectangleArena)(nil)

// NewRectangleArena builds an arena with the given extents. A nil rng
// selects DefaultSource. A zero extent yields an empty arena.
//
// It panics with ErrArenaTooLarge if rows*columns overflows an int.
func NewRectangleArena(rows, columns uint, rng RandSource) *RectangleArena {
	if rng == nil {
		rng = DefaultSource()
	}
	if columns != 0 && rows > uint(math.MaxInt)/columns {
		panic(ErrArenaTooLarge)
	}

	// An empty arena stores no rows, whatever the other extent is.
	tableRows := rows
	if columns == 0 {
		tableRows = 0
	}
	cells := make([][]SquareCell, tableRows)
	for i := range cells {
		cells[i] = make([]SquareCell, columns)
		for j := range cells[i] {
			cells[i][j] = NewSquareCell(uint(i), uint(j))
		}
	}

	return &RectangleArena{
		rows:    rows,
		columns: columns,
		cells:   cells,
		rng:     rng,
	}
}

// Rows returns the number of rows.
func (a *RectangleArena) Rows() uint {
	return a.rows
}

// Columns returns the number of columns.
func (a *RectangleArena) Columns() uint {
	return a.columns
}

// Len returns the number of cells. NewRectangleArena guarantees the
// product fits in an int.
func (a *RectangleArena) Len() int {
	return int(a.rows * a.columns)
}

// RandomCell returns a uniformly chosen cell.
func (a *RectangleArena) RandomCell() SquareCell {
	n := a.Len()
	if n == 0 {
		panic(ErrEmptyArena)
	}
	i := a.rng.Intn(n)
	return a.cells[uint(i)/a.columns][uint(i)%a.columns]
}

// Neighbor returns the in-bounds cell one step from cell in direction d.
func (a *RectangleArena) Neighbor(cell SquareCell, d SquareDirection) (SquareCell, bool) {
	if !d.IsValid() {
		return SquareCell{}, false
	}
	row, rowOK := shift(cell.Row(), d.rowDelta())
	column, columnOK := shift(cell.Column(), d.columnDelta())
	if !rowOK || !columnOK {
		return SquareCell{}, false
	}
	return a.Cell(row, column)
}

// Directions returns the four square directions.
func (a *RectangleArena) Directions() []SquareDirection {
	return SquareDirections()
}

// Cell returns the cell stored at row, column.
func (a *RectangleArena) Cell(row, column uint) (SquareCell, bool) {
	if row >= a.rows || column >= a.columns {
		return SquareCell{}, false
	}
	return a.cells[row][column], true
}

// Contains returns true if cell lies inside the arena's bounds.
func (a *RectangleArena) Contains(cell SquareCell) bool {
	_, ok := a.Cell(cell.Row(), cell.Column())
	return ok
}

// Cells returns every cell in row-major order.
func (a *RectangleArena) Cells() []SquareCell {
	out := make([]SquareCell, 0, a.Len())
	for _, row := range a.cells {
		out = append(out, row...)
	}
	return out
}

// shift applies a -1, 0 or +1 delta to v, failing instead of wrapping
// at either end of the uint range.
func shift(v uint, delta int) (uint, bool) {
	switch {
	case delta < 0:
		if v == 0 {
			return 0, false
		}
		return v - 1, true
	case delta > 0:
		if v == math.MaxUint {
			return 0, false
		}
		return v + 1, true
	default:
		return v, true
	}
}
