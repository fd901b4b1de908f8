// Package model provides the intermediate representation (IR) for parsed
// HTML tables.
//
// This package defines the data structures that sit between the HTML parsing
// stage and the spreadsheet assembly stage. Parsing produces these types,
// and every downstream stage consumes them.
//
// # Table Structure
//
// A [TableData] holds the authored rows of one HTML table:
//
//	data := &model.TableData{
//	    Rows:    []model.Row{{Cells: []model.Cell{{Text: "Name", IsHeader: true}}}},
//	    MaxCols: 1,
//	}
//
// Each [Row] lists only the cells that appear in the markup. Positions
// occupied by a rowspan or colspan from another cell are not represented
// here; span resolution happens later, in the tables package.
//
// # Styling
//
// A [Style] carries the per-cell presentation attributes recognized from
// inline style and class attributes. Zero values mean "use the render-time
// default". Styles are immutable once parsed.
//
// # Title Banners
//
// A [TitleConfig] describes optional banner rows prepended above the table
// in the output workbook, each merged across the full sheet width.
package model
