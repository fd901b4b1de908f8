package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/tablexl/model"
	"github.com/tsawler/tablexl/tables"
)

// Reduced-fidelity limits for the large-table path.
const (
	// StyledRowLimit bounds how many leading grid rows receive styling.
	StyledRowLimit = 10
	// MergedRowLimit bounds merge tracking: regions starting at or beyond
	// this grid row are discarded.
	MergedRowLimit = 100
)

// writeLarge assembles the grid through excelize's stream writer. Styling
// covers only the first StyledRowLimit rows, merges only regions starting
// before MergedRowLimit, column widths come from a WidthSampleRows sample
// clamped to [10, 50], and row heights are skipped entirely.
func writeLarge(f *excelize.File, sheet string, g *tables.Grid, title *model.TitleConfig) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("creating stream writer: %w", err)
	}

	// Column widths must be registered before any row is streamed.
	for c, w := range tables.ColumnWidths(g, tables.WidthSampleRows, true) {
		if err := sw.SetColWidth(c+1, c+1, w); err != nil {
			return fmt.Errorf("setting width of column %d: %w", c+1, err)
		}
	}

	styles := newStyleSet(f)

	offset, banded, err := streamTitleRows(sw, styles, g.ColCount(), title)
	if err != nil {
		return err
	}

	for r, row := range g.Slots {
		cells := make([]interface{}, len(row))
		if r < StyledRowLimit {
			for c, slot := range row {
				id, err := styles.slotStyle(slot, banded)
				if err != nil {
					return fmt.Errorf("building cell style: %w", err)
				}
				cells[c] = excelize.Cell{StyleID: id, Value: slot.Text}
			}
		} else {
			for c, slot := range row {
				cells[c] = slot.Text
			}
		}

		ref, err := excelize.CoordinatesToCellName(1, r+offset+1)
		if err != nil {
			return fmt.Errorf("row reference: %w", err)
		}
		if err := sw.SetRow(ref, cells); err != nil {
			return fmt.Errorf("streaming row %d: %w", r+offset+1, err)
		}
	}

	for _, m := range g.Merges {
		if m.StartRow >= MergedRowLimit {
			continue
		}
		start, end, err := mergeRefs(m, offset)
		if err != nil {
			return err
		}
		if err := sw.MergeCell(start, end); err != nil {
			return fmt.Errorf("merging %s:%s: %w", start, end, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing stream writer: %w", err)
	}
	return nil
}

// streamTitleRows mirrors writeTitleRows for the streaming path.
func streamTitleRows(sw *excelize.StreamWriter, styles *styleSet, cols int, title *model.TitleConfig) (int, bool, error) {
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
		err = sw.SetRow(ref, []interface{}{excelize.Cell{StyleID: id, Value: text}},
			excelize.RowOpts{Height: titleRowHeight})
		if err != nil {
			return 0, false, fmt.Errorf("streaming title row %d: %w", i+1, err)
		}
		if cols > 1 {
			end, err := excelize.CoordinatesToCellName(cols, i+1)
			if err != nil {
				return 0, false, fmt.Errorf("title reference: %w", err)
			}
			if err := sw.MergeCell(ref, end); err != nil {
				return 0, false, fmt.Errorf("merging title row %d: %w", i+1, err)
			}
		}
	}

	return title.NumOfRows, true, nil
}
