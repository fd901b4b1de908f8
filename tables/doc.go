// Package tables normalizes parsed HTML tables onto a dense rectangular
// grid and estimates layout metrics for spreadsheet rendering.
//
// # Grid Layout
//
// [Layout] places the authored cells of a [model.TableData] into a
// [Grid] while resolving colspan/rowspan occupancy:
//
//  1. A cursor walks each row left to right, skipping slots already
//     occupied by spans reaching down from earlier rows.
//  2. Each authored cell is written at the cursor; its span rectangle is
//     filled with placeholders and recorded as a [MergeRegion].
//  3. Cells that would start at or beyond the grid width are dropped
//     silently, mirroring how spreadsheet tools treat over-wide markup.
//
// Slots are a tri-state ([SlotUnset], [SlotPlaceholder], [SlotValue]), so
// an authored cell whose text happens to be empty still occupies its slot
// and cannot be overwritten by a later cursor pass.
//
// # Size Estimation
//
// [ColumnWidths] derives column widths from the longest display-width
// content per column, optionally sampling only the leading rows and
// clamping the result for very large tables. [RowHeights] derives row
// heights from the largest font size per row, raised for content long
// enough to wrap.
package tables
