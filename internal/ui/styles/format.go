package styles

import "github.com/mattn/go-runewidth"

// TruncateString cuts s to at most maxWidth terminal cells, ending with an ellipsis when cut.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads s with spaces to exactly width cells. Wider strings are truncated first.
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
