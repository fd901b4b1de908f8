package model

// Cell represents a single authored table cell.
//
// ColSpan and RowSpan are always at least 1. Text is trimmed of surrounding
// whitespace. Style is nil when no recognized styling was present on the
// source element.
type Cell struct {
	Text     string
	ColSpan  int
	RowSpan  int
	IsHeader bool
	Style    *Style
}

// Row is an ordered sequence of authored cells, in source order.
//
// A row may hold fewer cells than the table is wide: slots covered by spans
// from earlier rows do not appear here.
type Row struct {
	Cells []Cell
}

// TableData is the transcription of one HTML table.
//
// MaxCols is the effective width of the table: the maximum over all rows of
// the sum of the row's colspans. A single cell with colspan 5 widens the
// table to five columns even when every other row authors fewer cells.
type TableData struct {
	Rows    []Row
	MaxCols int
}

// RowCount returns the number of authored rows.
func (t *TableData) RowCount() int {
	return len(t.Rows)
}

// TitleConfig describes banner rows prepended above the table in the
// produced workbook. Each title occupies one row merged across the full
// sheet width.
type TitleConfig struct {
	NumOfRows int
	Titles    []string
}
