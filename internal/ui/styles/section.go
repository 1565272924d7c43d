package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderSection draws lines inside a rounded border with the title inline:
//
//	╭─ Title ──────╮
//	│ line         │
//	╰──────────────╯
func RenderSection(lines []string, title string, width int) string {
	borderStyle := lipgloss.NewStyle().Foreground(BorderDefaultColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(BorderHighlightColor)

	innerWidth := max(width-2, 1)

	var top string
	if title == "" {
		top = borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	} else {
		dashes := max(innerWidth-lipgloss.Width(title)-3, 0)
		top = borderStyle.Render(borderTopLeft+borderHorizontal+" ") +
			titleStyle.Render(title) +
			borderStyle.Render(" "+strings.Repeat(borderHorizontal, dashes)+borderTopRight)
	}

	var b strings.Builder
	b.WriteString(top)
	for _, line := range lines {
		pad := max(innerWidth-lipgloss.Width(line), 0)
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(borderStyle.Render(borderVertical))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight))

	return b.String()
}
