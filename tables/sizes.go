package tables

import (
	"math"

	"golang.org/x/text/width"
)

// Layout metric constants. Widths are in character units, heights in points.
const (
	// WidthSampleRows bounds the rows scanned for column widths on the
	// large-table path.
	WidthSampleRows = 1000

	minColumnWidth = 10
	maxColumnWidth = 50
	widthPadding   = 2

	// DefaultFontSize is assumed for cells without an explicit font size.
	DefaultFontSize = 12

	minRowHeight     = 15.0
	lineHeightFactor = 1.2
	wrapCharsPerLine = 30
)

// ColumnWidths derives a width hint per column from the longest cell
// content in that column, plus padding.
//
// When sampleRows > 0 only the leading sampleRows rows are scanned. When
// clamp is true the result is clamped to [10, 50]; the unclamped form is
// used for the full-fidelity path.
func ColumnWidths(g *Grid, sampleRows int, clamp bool) []float64 {
	rows := g.RowCount()
	if sampleRows > 0 && sampleRows < rows {
		rows = sampleRows
	}

	widths := make([]float64, g.ColCount())
	for c := range widths {
		maxLen := 0
		for r := 0; r < rows; r++ {
			if l := displayWidth(g.Slots[r][c].Text); l > maxLen {
				maxLen = l
			}
		}

		w := float64(maxLen + widthPadding)
		if clamp {
			w = math.Min(math.Max(w, minColumnWidth), maxColumnWidth)
		}
		widths[c] = w
	}
	return widths
}

// RowHeights derives a height hint per row from the largest font size among
// the row's cells, raised for content long enough to wrap. The floor is 15
// points.
func RowHeights(g *Grid) []float64 {
	heights := make([]float64, g.RowCount())
	for r, row := range g.Slots {
		fontSize := DefaultFontSize
		maxLen := 0
		for _, slot := range row {
			if slot.Style != nil && slot.Style.FontSize > fontSize {
				fontSize = slot.Style.FontSize
			}
			if l := displayWidth(slot.Text); l > maxLen {
				maxLen = l
			}
		}

		fontHeight := float64(fontSize) * lineHeightFactor
		h := math.Max(minRowHeight, fontHeight)
		if maxLen > wrapCharsPerLine {
			lines := math.Ceil(float64(maxLen) / wrapCharsPerLine)
			h = math.Max(h, lines*fontHeight)
		}
		heights[r] = h
	}
	return heights
}

// displayWidth counts character cells, treating East Asian wide and
// fullwidth runes as two.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
