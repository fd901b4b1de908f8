package xlsx

import (
	"fmt"
	"testing"

	"github.com/tsawler/tablexl/tables"
)

// largeGrid builds a grid just over the streaming threshold, with one merge
// inside the tracked window and one beyond it.
func largeGrid(rowCount int) *tables.Grid {
	g := &tables.Grid{Slots: make([][]tables.Slot, rowCount)}
	for r := range g.Slots {
		g.Slots[r] = []tables.Slot{
			{State: tables.SlotValue, Text: fmt.Sprintf("r%d", r)},
			{State: tables.SlotValue, Text: "v"},
		}
	}
	g.Merges = []tables.MergeRegion{
		{StartRow: 5, StartCol: 0, EndRow: 6, EndCol: 0},
		{StartRow: MergedRowLimit + 50, StartCol: 0, EndRow: MergedRowLimit + 51, EndCol: 0},
	}
	return g
}

func TestWrite_LargeTablePath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-table assembly in short mode")
	}

	rowCount := LargeTableThreshold + 5
	f, err := Write(largeGrid(rowCount), nil, "")
	if err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	out := readBack(t, f)

	first, _ := out.GetCellValue(DefaultSheetName, "A1")
	if first != "r0" {
		t.Errorf("A1 = %q, want 'r0'", first)
	}
	last, _ := out.GetCellValue(DefaultSheetName, fmt.Sprintf("A%d", rowCount))
	if last != fmt.Sprintf("r%d", rowCount-1) {
		t.Errorf("last row = %q, want %q", last, fmt.Sprintf("r%d", rowCount-1))
	}

	// Merge tracking stops at MergedRowLimit rows.
	merges, err := out.GetMergeCells(DefaultSheetName)
	if err != nil {
		t.Fatalf("GetMergeCells() failed: %v", err)
	}
	if len(merges) != 1 {
		t.Fatalf("merges = %d, want 1 (region beyond row limit dropped)", len(merges))
	}
	if start := merges[0].GetStartAxis(); start != "A6" {
		t.Errorf("merge start = %s, want A6", start)
	}

	// Widths come from the clamped sample.
	w, err := out.GetColWidth(DefaultSheetName, "A")
	if err != nil {
		t.Fatalf("GetColWidth() failed: %v", err)
	}
	if w < 10 || w > 50 {
		t.Errorf("column width = %v, want within [10, 50]", w)
	}
}

func TestWrite_LargeTableSkipsRowHeights(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-table assembly in short mode")
	}

	f, err := Write(largeGrid(LargeTableThreshold+1), nil, "")
	if err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	out := readBack(t, f)

	// No explicit height hints: every row reports the sheet default.
	def, err := out.GetRowHeight(DefaultSheetName, 1)
	if err != nil {
		t.Fatalf("GetRowHeight() failed: %v", err)
	}
	h, err := out.GetRowHeight(DefaultSheetName, 500)
	if err != nil {
		t.Fatalf("GetRowHeight() failed: %v", err)
	}
	if def != h {
		t.Errorf("row heights differ (%v vs %v); large path should set none", def, h)
	}
}

func TestWrite_SmallGridStaysOnFullPath(t *testing.T) {
	g := &tables.Grid{Slots: [][]tables.Slot{
		{{State: tables.SlotValue, Text: "x"}},
	}}

	f, err := Write(g, nil, "")
	if err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	out := readBack(t, f)

	// Full path computes heights, so row 1 carries an explicit 15pt hint.
	h, err := out.GetRowHeight(DefaultSheetName, 1)
	if err != nil {
		t.Fatalf("GetRowHeight() failed: %v", err)
	}
	if h != 15 {
		t.Errorf("row height = %v, want 15", h)
	}
}
