// Package xlsx assembles normalized table grids into XLSX workbooks.
//
// [Write] takes a [tables.Grid] plus optional banner titles and produces an
// in-memory excelize workbook carrying cell values, merge regions, per-cell
// styles, column width hints, and row height hints. The caller persists the
// workbook to a file or renders it to a buffer.
//
// # Default Styling
//
// Every cell receives center alignment, text wrapping, thin black borders
// on all four sides, a white fill, and black text unless its parsed style
// overrides an attribute. A cell whose border style is "none" receives no
// border at all.
//
// # Title Banners
//
// When a title configuration is present, the banner rows are merged across
// the full sheet width and given an accent fill with bold white text, and
// rows authored as headers (th cells) receive a gray header band.
//
// # Large Tables
//
// Grids above [LargeTableThreshold] rows switch to a reduced-fidelity
// streaming path: styling covers only the leading rows, merge tracking is
// capped, column widths come from a bounded sample, and row heights are
// skipped. The trade-off bounds time and memory for tables with hundreds
// of thousands of rows.
package xlsx
