package tables

import "github.com/tsawler/tablexl/model"

// SlotState classifies one grid position.
type SlotState int

const (
	// SlotUnset marks a position no cell reaches.
	SlotUnset SlotState = iota
	// SlotPlaceholder marks a position covered by another cell's span.
	SlotPlaceholder
	// SlotValue marks a position holding an authored cell.
	SlotValue
)

// Slot is one position of the dense grid. Placeholders carry the style and
// header flag of the cell spanning them so fills and borders render
// uniformly across the merged rectangle.
type Slot struct {
	State    SlotState
	Text     string
	Style    *model.Style
	IsHeader bool
}

// Occupied reports whether the slot is claimed by an authored cell or a
// span placeholder.
func (s Slot) Occupied() bool {
	return s.State != SlotUnset
}

// MergeRegion is an inclusive rectangle of grid positions rendered as one
// visually joined cell. Coordinates are 0-indexed.
type MergeRegion struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Grid is the dense rectangular normalization of a table: RowCount() rows,
// each ColCount() slots wide, plus the merge regions spanning cells produced.
type Grid struct {
	Slots  [][]Slot
	Merges []MergeRegion
}

// RowCount returns the number of grid rows.
func (g *Grid) RowCount() int {
	return len(g.Slots)
}

// ColCount returns the grid width.
func (g *Grid) ColCount() int {
	if len(g.Slots) == 0 {
		return 0
	}
	return len(g.Slots[0])
}

// Strings returns the plain text matrix of the grid, row-major. Placeholder
// and unset slots yield empty strings.
func (g *Grid) Strings() [][]string {
	out := make([][]string, len(g.Slots))
	for i, row := range g.Slots {
		out[i] = make([]string, len(row))
		for j, slot := range row {
			out[i][j] = slot.Text
		}
	}
	return out
}

// Layout places the authored cells of data onto a dense grid, resolving
// colspan/rowspan occupancy and emitting one MergeRegion per spanning cell.
//
// The grid width is fixed up front from data.MaxCols. Cells that cannot be
// placed before the cursor reaches the grid width are dropped without
// error; spans that overrun the table's row or column count are clipped to
// the grid bounds.
func Layout(data *model.TableData) *Grid {
	rows := data.RowCount()
	cols := data.MaxCols

	g := &Grid{Slots: make([][]Slot, rows)}
	for i := range g.Slots {
		g.Slots[i] = make([]Slot, cols)
	}

	for r, row := range data.Rows {
		cursor := 0
		for _, cell := range row.Cells {
			for cursor < cols && g.Slots[r][cursor].Occupied() {
				cursor++
			}
			if cursor >= cols {
				// Over-wide row; remaining cells have nowhere to go.
				break
			}

			g.place(r, cursor, cell, rows, cols)
			cursor += cell.ColSpan
		}
	}

	return g
}

// place writes cell at (row, col) and claims its span rectangle.
func (g *Grid) place(row, col int, cell model.Cell, rows, cols int) {
	g.Slots[row][col] = Slot{
		State:    SlotValue,
		Text:     cell.Text,
		Style:    cell.Style,
		IsHeader: cell.IsHeader,
	}

	if cell.ColSpan <= 1 && cell.RowSpan <= 1 {
		return
	}

	endRow := min(row+cell.RowSpan-1, rows-1)
	endCol := min(col+cell.ColSpan-1, cols-1)
	g.Merges = append(g.Merges, MergeRegion{
		StartRow: row,
		StartCol: col,
		EndRow:   endRow,
		EndCol:   endCol,
	})

	for r := row; r <= endRow; r++ {
		for c := col; c <= endCol; c++ {
			if r == row && c == col {
				continue
			}
			g.Slots[r][c] = Slot{
				State:    SlotPlaceholder,
				Style:    cell.Style,
				IsHeader: cell.IsHeader,
			}
		}
	}
}
