package htmldoc

import (
	"strconv"
	"strings"

	"github.com/tsawler/tablexl/model"
)

// namedColors maps the CSS color names the interpreter recognizes to hex.
// Anything outside this table resolves to black.
var namedColors = map[string]string{
	"black":   "000000",
	"white":   "FFFFFF",
	"red":     "FF0000",
	"green":   "008000",
	"blue":    "0000FF",
	"yellow":  "FFFF00",
	"orange":  "FFA500",
	"purple":  "800080",
	"pink":    "FFC0CB",
	"gray":    "808080",
	"grey":    "808080",
	"brown":   "A52A2A",
	"cyan":    "00FFFF",
	"magenta": "FF00FF",
}

// ParseStyle interprets a cell's inline style attribute and class attribute
// and returns the normalized style record. Classes are applied after inline
// declarations and may overwrite them. Returns nil when nothing was
// recognized.
func ParseStyle(styleAttr, classAttr string) *model.Style {
	s := &model.Style{}

	for _, decl := range strings.Split(styleAttr, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		applyDeclaration(s, strings.ToLower(strings.TrimSpace(name)), strings.TrimSpace(value))
	}

	for _, class := range strings.Fields(classAttr) {
		applyClass(s, class)
	}

	if s.IsZero() {
		return nil
	}
	return s
}

func applyDeclaration(s *model.Style, name, value string) {
	switch name {
	case "background-color":
		s.BackgroundColor = normalizeColor(value)
	case "text-align":
		switch strings.ToLower(value) {
		case model.AlignLeft, model.AlignCenter, model.AlignRight:
			s.TextAlign = strings.ToLower(value)
		}
	case "font-size":
		if n, ok := leadingInt(value); ok {
			s.FontSize = n
		}
	case "font-weight":
		switch strings.ToLower(value) {
		case "bold", "700":
			s.FontWeight = model.FontWeightBold
		case "normal", "400":
			s.FontWeight = model.FontWeightNormal
		}
	case "color":
		s.Color = normalizeColor(value)
	case "border":
		applyBorderShorthand(s, value)
	case "border-color":
		s.BorderColor = normalizeColor(value)
	case "border-style":
		switch strings.ToLower(value) {
		case model.BorderThin, model.BorderMedium, model.BorderThick, model.BorderNone:
			s.BorderStyle = strings.ToLower(value)
		}
	}
}

// applyBorderShorthand handles the CSS border shorthand. "none" disables the
// border outright; otherwise each space-separated token is inspected for a
// weight keyword, a color, or a pixel width.
func applyBorderShorthand(s *model.Style, value string) {
	if strings.EqualFold(strings.TrimSpace(value), "none") {
		s.BorderStyle = model.BorderNone
		return
	}

	for _, token := range strings.Fields(value) {
		lower := strings.ToLower(token)
		switch {
		case lower == model.BorderThin || lower == model.BorderMedium || lower == model.BorderThick:
			s.BorderStyle = lower
		case strings.HasPrefix(token, "#") || strings.HasPrefix(lower, "rgb"):
			s.BorderColor = normalizeColor(token)
		case strings.HasSuffix(lower, "px"):
			if px, ok := leadingInt(lower); ok {
				s.BorderStyle = borderStyleForWidth(px)
			}
		case isAlpha(lower):
			// Skip CSS line styles; everything else alphabetic is a color name.
			switch lower {
			case "solid", "dashed", "dotted", "double", "groove", "ridge", "inset", "outset", "hidden":
			default:
				s.BorderColor = normalizeColor(lower)
			}
		}
	}
}

func borderStyleForWidth(px int) string {
	switch {
	case px <= 1:
		return model.BorderThin
	case px <= 3:
		return model.BorderMedium
	default:
		return model.BorderThick
	}
}

func applyClass(s *model.Style, class string) {
	switch class {
	case "text-left":
		s.TextAlign = model.AlignLeft
	case "text-center":
		s.TextAlign = model.AlignCenter
	case "text-right":
		s.TextAlign = model.AlignRight
	case "font-bold", "bold":
		s.FontWeight = model.FontWeightBold
	case "font-normal":
		s.FontWeight = model.FontWeightNormal
	case "border-none":
		s.BorderStyle = model.BorderNone
	}
}

// normalizeColor resolves a CSS color value to six hex digits without the
// leading '#'. Unknown names and unparseable values resolve to black.
func normalizeColor(value string) string {
	value = strings.TrimSpace(value)

	if strings.HasPrefix(value, "#") {
		return strings.ToUpper(strings.TrimPrefix(value, "#"))
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		if hex, ok := rgbToHex(lower); ok {
			return hex
		}
		return "000000"
	}

	if hex, ok := namedColors[lower]; ok {
		return hex
	}
	return "000000"
}

// rgbToHex converts rgb(r, g, b) or rgba(r, g, b, a) channel notation to
// RRGGBB. The alpha channel, when present, is discarded.
func rgbToHex(value string) (string, bool) {
	open := strings.IndexByte(value, '(')
	close := strings.IndexByte(value, ')')
	if open < 0 || close < open {
		return "", false
	}

	parts := strings.Split(value[open+1:close], ",")
	if len(parts) < 3 {
		return "", false
	}

	var channels [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return "", false
		}
		channels[i] = n
	}

	const hexDigits = "0123456789ABCDEF"
	out := make([]byte, 6)
	for i, c := range channels {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0x0F]
	}
	return string(out), true
}

// leadingInt parses the leading decimal digits of a value such as "14px",
// matching how numeric CSS values are read permissively.
func leadingInt(value string) (int, bool) {
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
