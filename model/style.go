package model

// Horizontal alignment values recognized by the style interpreter.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Font weight values.
const (
	FontWeightNormal = "normal"
	FontWeightBold   = "bold"
)

// Border style values. These name spreadsheet border weights, not CSS
// line styles.
const (
	BorderThin   = "thin"
	BorderMedium = "medium"
	BorderThick  = "thick"
	BorderNone   = "none"
)

// Style holds the presentation attributes recognized for one cell.
//
// Colors are six hex digits without a leading '#'. A zero value for any
// field means the attribute was not specified and the render-time default
// applies. FontSize is in points; 0 means unspecified.
type Style struct {
	BackgroundColor string
	TextAlign       string
	FontSize        int
	FontWeight      string
	Color           string
	BorderColor     string
	BorderStyle     string
}

// IsZero reports whether no attribute is set.
func (s *Style) IsZero() bool {
	return s.BackgroundColor == "" && s.TextAlign == "" && s.FontSize == 0 &&
		s.FontWeight == "" && s.Color == "" && s.BorderColor == "" && s.BorderStyle == ""
}

// Bold reports whether the cell's font weight resolves to bold.
func (s *Style) Bold() bool {
	return s != nil && s.FontWeight == FontWeightBold
}
