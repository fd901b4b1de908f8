package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/tablexl/model"
	"github.com/tsawler/tablexl/tables"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "Sheet1"

// LargeTableThreshold is the row count above which assembly switches to
// the reduced-fidelity streaming path.
const LargeTableThreshold = 10000

const titleRowHeight = 24.0

// Write assembles a grid (plus optional banner titles) into a workbook.
// Grids above LargeTableThreshold rows are assembled through the
// bounded-memory streaming path. The returned file is still open; the
// caller owns saving and closing it.
func Write(g *tables.Grid, title *model.TitleConfig, sheetName string) (*excelize.File, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("naming sheet: %w", err)
		}
	}

	var err error
	if g.RowCount() > LargeTableThreshold {
		err = writeLarge(f, sheetName, g, title)
	} else {
		err = writeFull(f, sheetName, g, title)
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// writeFull is the full-fidelity path: every cell styled, every merge
// recorded, widths unclamped, heights computed.
func writeFull(f *excelize.File, sheet string, g *tables.Grid, title *model.TitleConfig) error {
	styles := newStyleSet(f)

	offset, banded, err := writeTitleRows(f, sheet, styles, g.ColCount(), title)
	if err != nil {
		return err
	}

	for r, row := range g.Slots {
		for c, slot := range row {
			ref, err := excelize.CoordinatesToCellName(c+1, r+offset+1)
			if err != nil {
				return fmt.Errorf("cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, ref, slot.Text); err != nil {
				return fmt.Errorf("setting cell %s: %w", ref, err)
			}
			id, err := styles.slotStyle(slot, banded)
			if err != nil {
				return fmt.Errorf("building cell style: %w", err)
			}
			if err := f.SetCellStyle(sheet, ref, ref, id); err != nil {
				return fmt.Errorf("styling cell %s: %w", ref, err)
			}
		}
	}

	for _, m := range g.Merges {
		start, end, err := mergeRefs(m, offset)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheet, start, end); err != nil {
			return fmt.Errorf("merging %s:%s: %w", start, end, err)
		}
	}

	for c, w := range tables.ColumnWidths(g, 0, false) {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("setting width of column %s: %w", col, err)
		}
	}

	for r, h := range tables.RowHeights(g) {
		if err := f.SetRowHeight(sheet, r+offset+1, h); err != nil {
			return fmt.Errorf("setting height of row %d: %w", r+offset+1, err)
		}
	}

	return nil
}

// writeTitleRows writes the banner rows, each merged across the sheet
// width. It returns the row offset the grid starts at and whether header
// banding applies to the table body.
func writeTitleRows(f *excelize.File, sheet string, styles *styleSet, cols int, title *model.TitleConfig) (int, bool, error) {
	if title == nil || title.NumOfRows <= 0 {
		return 0, false, nil
	}

	id, err := styles.titleStyle()
	if err != nil {
		return 0, false, fmt.Errorf("building title style: %w", err)
	}

	for i := 0; i < title.NumOfRows; i++ {
		text := ""
		if i < len(title.Titles) {
			text = title.Titles[i]
		}

		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return 0, false, fmt.Errorf("title reference: %w", err)
		}
		if err := f.SetCellValue(sheet, ref, text); err != nil {
			return 0, false, fmt.Errorf("setting title row %d: %w", i+1, err)
		}
		if err := f.SetCellStyle(sheet, ref, ref, id); err != nil {
			return 0, false, fmt.Errorf("styling title row %d: %w", i+1, err)
		}
		if cols > 1 {
			end, err := excelize.CoordinatesToCellName(cols, i+1)
			if err != nil {
				return 0, false, fmt.Errorf("title reference: %w", err)
			}
			if err := f.MergeCell(sheet, ref, end); err != nil {
				return 0, false, fmt.Errorf("merging title row %d: %w", i+1, err)
			}
		}
		if err := f.SetRowHeight(sheet, i+1, titleRowHeight); err != nil {
			return 0, false, fmt.Errorf("setting title row height: %w", err)
		}
	}

	return title.NumOfRows, true, nil
}

func mergeRefs(m tables.MergeRegion, offset int) (string, string, error) {
	start, err := excelize.CoordinatesToCellName(m.StartCol+1, m.StartRow+offset+1)
	if err != nil {
		return "", "", fmt.Errorf("merge reference: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(m.EndCol+1, m.EndRow+offset+1)
	if err != nil {
		return "", "", fmt.Errorf("merge reference: %w", err)
	}
	return start, end, nil
}
