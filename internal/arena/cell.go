package arena

import "fmt"

// SquareCell is a coordinate in a RectangleArena.
// It holds no reference to the arena it came from.
type SquareCell struct {
	row    uint
	column uint
}

// NewSquareCell returns the cell at the given row and column.
func NewSquareCell(row, column uint) SquareCell {
	return SquareCell{row: row, column: column}
}

// Row returns the row index of the cell.
func (c SquareCell) Row() uint {
	return c.row
}

// Column returns the column index of the cell.
func (c SquareCell) Column() uint {
	return c.column
}

// String returns the cell as "(row,column)".
func (c SquareCell) String() string {
	return fmt.Sprintf("(%d,%d)", c.row, c.column)
}

// NeighborCoordinates returns the coordinates one step from c in direction d.
// No bounds checking is done, so either value may be negative.
//
// East decreases the column and West increases it. Coordinates above
// math.MaxInt do not fit the result; RectangleArena.Neighbor resolves
// steps in uint arithmetic and is exact for every cell.
func NeighborCoordinates(c SquareCell, d SquareDirection) (row, column int) {
	return int(c.row) + d.rowDelta(), int(c.column) + d.columnDelta()
}
