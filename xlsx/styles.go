package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/tsawler/tablexl/model"
	"github.com/tsawler/tablexl/tables"
)

// Render-time style defaults.
const (
	defaultFillColor = "FFFFFF"
	defaultFontColor = "000000"

	titleFillColor = "4472C4"
	titleFontColor = "FFFFFF"
	titleFontSize  = 14

	headerFillColor = "D9D9D9"
)

// borderWeights maps border style names to excelize border style codes.
var borderWeights = map[string]int{
	model.BorderThin:   1,
	model.BorderMedium: 2,
	model.BorderThick:  5,
}

// resolvedStyle is a cell style with every default applied, used as the
// cache key for excelize style IDs.
type resolvedStyle struct {
	fill        string
	fontColor   string
	bold        bool
	size        int
	align       string
	border      string // empty means no border object at all
	borderColor string
}

// styleSet caches excelize style IDs so identical cell styles share one
// entry in the workbook style table.
type styleSet struct {
	f   *excelize.File
	ids map[resolvedStyle]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{f: f, ids: make(map[resolvedStyle]int)}
}

// slotStyle returns the style ID for a grid slot. With banding enabled,
// cells authored as headers receive the gray header band unless their own
// style sets a fill.
func (s *styleSet) slotStyle(slot tables.Slot, banded bool) (int, error) {
	rs := resolve(slot.Style)
	if banded && slot.IsHeader {
		if slot.Style == nil || slot.Style.BackgroundColor == "" {
			rs.fill = headerFillColor
		}
		rs.bold = true
	}
	return s.id(rs)
}

// titleStyle returns the style ID for banner title cells.
func (s *styleSet) titleStyle() (int, error) {
	return s.id(resolvedStyle{
		fill:        titleFillColor,
		fontColor:   titleFontColor,
		bold:        true,
		size:        titleFontSize,
		align:       model.AlignCenter,
		border:      model.BorderThin,
		borderColor: defaultFontColor,
	})
}

func resolve(st *model.Style) resolvedStyle {
	rs := resolvedStyle{
		fill:        defaultFillColor,
		fontColor:   defaultFontColor,
		align:       model.AlignCenter,
		border:      model.BorderThin,
		borderColor: defaultFontColor,
	}
	if st == nil {
		return rs
	}

	if st.BackgroundColor != "" {
		rs.fill = st.BackgroundColor
	}
	if st.Color != "" {
		rs.fontColor = st.Color
	}
	rs.bold = st.Bold()
	rs.size = st.FontSize
	if st.TextAlign != "" {
		rs.align = st.TextAlign
	}
	switch st.BorderStyle {
	case model.BorderNone:
		rs.border = ""
		rs.borderColor = ""
	case model.BorderMedium, model.BorderThick:
		rs.border = st.BorderStyle
	}
	if rs.border != "" && st.BorderColor != "" {
		rs.borderColor = st.BorderColor
	}
	return rs
}

func (s *styleSet) id(rs resolvedStyle) (int, error) {
	if id, ok := s.ids[rs]; ok {
		return id, nil
	}

	style := &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: rs.align,
			Vertical:   "center",
			WrapText:   true,
		},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{rs.fill}},
		Font: &excelize.Font{Bold: rs.bold, Color: rs.fontColor},
	}
	if rs.size > 0 {
		style.Font.Size = float64(rs.size)
	}
	if rs.border != "" {
		weight := borderWeights[rs.border]
		for _, side := range []string{"left", "right", "top", "bottom"} {
			style.Border = append(style.Border, excelize.Border{
				Type:  side,
				Color: rs.borderColor,
				Style: weight,
			})
		}
	}

	id, err := s.f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	s.ids[rs] = id
	return id, nil
}
