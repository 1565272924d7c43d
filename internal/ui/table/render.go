package table

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/ui/styles"
)

const (
	columnSeparator = " │ "
	minFlexWidth    = 3
)

// columnWidths assigns fixed widths first, then grows flex columns toward
// their widest cell in Priority order, then shares what is left of total.
// Flex columns always honour MinWidth and MaxWidth.
func columnWidths(cols []ColumnConfig, rows []any, total int) []int {
	widths := make([]int, len(cols))
	remaining := total - lipgloss.Width(columnSeparator)*max(len(cols)-1, 0)

	var flex []int
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			remaining -= col.Width
			continue
		}
		flex = append(flex, i)
	}

	for _, i := range flex {
		widths[i] = max(cols[i].MinWidth, minFlexWidth)
		remaining -= widths[i]
	}

	byPriority := slices.Clone(flex)
	slices.SortStableFunc(byPriority, func(a, b int) int {
		return cmp.Compare(cols[b].Priority, cols[a].Priority)
	})
	for _, i := range byPriority {
		if remaining <= 0 {
			break
		}
		want := contentWidth(cols[i], rows)
		if cols[i].MaxWidth > 0 {
			want = min(want, cols[i].MaxWidth)
		}
		grow := min(max(want-widths[i], 0), remaining)
		widths[i] += grow
		remaining -= grow
	}

	// Hand out one cell at a time so MaxWidth caps redistribute fairly.
	for remaining > 0 {
		grew := false
		for _, i := range flex {
			if remaining == 0 {
				break
			}
			if cols[i].MaxWidth > 0 && widths[i] >= cols[i].MaxWidth {
				continue
			}
			widths[i]++
			remaining--
			grew = true
		}
		if !grew {
			break
		}
	}

	return widths
}

// contentWidth is the width of the widest header or cell of col.
func contentWidth(col ColumnConfig, rows []any) int {
	w := lipgloss.Width(col.Header)
	for _, row := range rows {
		w = max(w, lipgloss.Width(safeRender(row, col, 0)))
	}
	return w
}

func renderHeader(cols []ColumnConfig, widths []int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = alignText(styles.TruncateString(col.Header, widths[i]), widths[i], col.Align)
	}
	return styles.TableHeaderStyle.Render(strings.Join(parts, columnSeparator))
}

func renderRow(row any, cols []ColumnConfig, widths []int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		cell := styles.TruncateString(safeRender(row, col, widths[i]), widths[i])
		parts[i] = alignText(cell, widths[i], col.Align)
	}
	return styles.TableCellStyle.Render(strings.Join(parts, columnSeparator))
}

func renderRule(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Join(parts, "─┼─"))
}

// safeRender invokes the Render callback, turning a panic into a placeholder cell.
func safeRender(row any, col ColumnConfig, width int) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = styles.TruncateString(fmt.Sprintf("!ERR:%v", r), width)
		}
	}()
	return col.Render(row, col.Key, width)
}

func alignText(text string, width int, align lipgloss.Position) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}

	padding := width - textWidth
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", padding) + text
	case lipgloss.Center:
		left := padding / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
	default:
		return text + strings.Repeat(" ", padding)
	}
}
